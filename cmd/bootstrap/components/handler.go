package components

import (
	"fulfillment-engine/internal/handler"
	"fulfillment-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewInventoryHandler,
		api.NewCatalogHandler,
		api.NewReturnHandler,
		api.NewAnalyticsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
