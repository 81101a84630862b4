package bootstrap

import (
	"log/slog"

	"fulfillment-engine/internal/pkg/config"
	"fulfillment-engine/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default, which domain-level
// helpers such as the post-commit notifier log through.
func NewLogger(cfg config.Config) *slog.Logger {
	l := logger.New(cfg.Log)
	slog.SetDefault(l)
	return l
}
