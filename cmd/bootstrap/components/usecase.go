package components

import (
	"fulfillment-engine/internal/infra/payment"
	"fulfillment-engine/internal/pkg/clock"
	"fulfillment-engine/internal/usecase/commands"
	"fulfillment-engine/internal/usecase/queries"
	"fulfillment-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		payment.NewLoggingRefundProcessor,
		fx.As(new(shared.RefundProcessor)),
	),
	commands.NewLedger,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCatalogCommands,
		commands.NewInventoryCommands,
		commands.NewOrderCommands,
		commands.NewPricingCommands,
		commands.NewReturnCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewInventoryQueries,
		queries.NewReturnQueries,
		queries.NewPricingQueries,
		queries.NewAnalyticsQueries,
	),
)
