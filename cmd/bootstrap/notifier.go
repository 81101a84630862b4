package bootstrap

import (
	"context"
	"log/slog"

	"fulfillment-engine/internal/infra/notify"
	"fulfillment-engine/internal/pkg/clock"
	"fulfillment-engine/internal/pkg/config"
	"fulfillment-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger, clk clock.Clock) shared.Notifier {
	if cfg.Notifier.Driver != config.NotifyDriverKafka {
		return notify.NewLogSender(logger)
	}

	sender := notify.NewKafkaSender(notify.NewKafkaWriter(cfg.Notifier), clk)
	logger.Info("kafka notifier initialized",
		"brokers", cfg.Notifier.KafkaBrokers,
		"topic", cfg.Notifier.KafkaTopic)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return sender.Close()
		},
	})
	return sender
}
