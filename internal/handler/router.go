package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"fulfillment-engine/internal/handler/api"
	"fulfillment-engine/internal/handler/middleware"
	"fulfillment-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Orders    *api.OrderHandler
	Inventory *api.InventoryHandler
	Catalog   *api.CatalogHandler
	Returns   *api.ReturnHandler
	Analytics *api.AnalyticsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogging(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/orders"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Orders.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Orders.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Orders.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Orders.UpdateStatus},
			{Method: http.MethodPost, Path: "/:id/invoices", Handler: h.Orders.GenerateInvoice},
			{Method: http.MethodGet, Path: "/:id/invoices", Handler: h.Orders.ListInvoices},
		})

		addRoutes(apiGroup.Group("/inventory"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Inventory.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Inventory.List},
			{Method: http.MethodGet, Path: "/low-stock", Handler: h.Inventory.LowStock},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Inventory.Get},
			{Method: http.MethodPost, Path: "/:id/adjust", Handler: h.Inventory.Adjust},
		})
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/alerts", Handler: h.Inventory.ListAlerts},
		})

		addRoutes(apiGroup.Group("/products"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateProduct},
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListProducts},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetProduct},
			{Method: http.MethodGet, Path: "/:id/price", Handler: h.Catalog.Price},
			{Method: http.MethodGet, Path: "/:id/promotion", Handler: h.Catalog.ActivePromotion},
		})
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/promotions", Handler: h.Catalog.CreatePromotion},
			{Method: http.MethodPost, Path: "/coupons", Handler: h.Catalog.CreateCoupon},
			{Method: http.MethodPost, Path: "/coupons/apply", Handler: h.Catalog.ApplyCoupon},
		})

		addRoutes(apiGroup.Group("/returns"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Returns.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Returns.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Returns.Get},
			{Method: http.MethodPost, Path: "/:id/process", Handler: h.Returns.Process},
		})

		addRoutes(apiGroup.Group("/analytics"), []route{
			{Method: http.MethodGet, Path: "/turnover", Handler: h.Analytics.Turnover},
			{Method: http.MethodGet, Path: "/popular-products", Handler: h.Analytics.PopularProducts},
			{Method: http.MethodGet, Path: "/demand", Handler: h.Analytics.Demand},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
