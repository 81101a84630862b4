//go:build unit || e2e

package testutil

import "strings"

// Field sets or, for a nil value, deletes key. Dotted keys walk nested
// objects ("items.0.quantity" addresses the first element of items).
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		parts := strings.Split(key, ".")
		var cur any = m
		for _, p := range parts[:len(parts)-1] {
			cur = child(cur, p)
			if cur == nil {
				return
			}
		}
		last := parts[len(parts)-1]
		switch node := cur.(type) {
		case map[string]any:
			if value == nil {
				delete(node, last)
			} else {
				node[last] = value
			}
		case []any:
			if i, ok := index(last, len(node)); ok {
				node[i] = value
			}
		}
	}
}

func child(node any, key string) any {
	switch n := node.(type) {
	case map[string]any:
		return n[key]
	case []any:
		if i, ok := index(key, len(n)); ok {
			return n[i]
		}
	}
	return nil
}

func index(key string, length int) (int, bool) {
	i := 0
	for _, r := range key {
		if r < '0' || r > '9' {
			return 0, false
		}
		i = i*10 + int(r-'0')
	}
	return i, key != "" && i < length
}
