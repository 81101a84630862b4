//go:build unit

package usecase_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Use cases talk to storage and transport only through the ports in shared.
func TestUseCasesDoNotImportOuterLayers(t *testing.T) {
	forbidden := []string{
		"fulfillment-engine/internal/infra",
		"fulfillment-engine/internal/handler",
		"fulfillment-engine/cmd",
	}

	fset := token.NewFileSet()
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return err
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, imp := range f.Imports {
			p, _ := strconv.Unquote(imp.Path.Value)
			for _, prefix := range forbidden {
				assert.False(t, p == prefix || strings.HasPrefix(p, prefix+"/"), "%s imports %s", path, p)
			}
		}
		return nil
	})
	require.NoError(t, err)
}
