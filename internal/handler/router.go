package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"store-offers-api/internal/handler/api"
	"store-offers-api/internal/handler/middleware"
	"store-offers-api/internal/pkg/config"
	"store-offers-api/internal/pkg/tracing"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Offer    *api.OfferHandler
	Purchase *api.PurchaseHandler
	Wallet   *api.WalletHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, tracer *tracing.Tracer, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, tracer)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, tracer *tracing.Tracer) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.TracingMiddleware(tracer))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		offers := apiGroup.Group("/store/offers")
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "/by-ids", Handler: h.Offer.GetByIDs},
				{Method: http.MethodGet, Path: "/by-tags", Handler: h.Offer.GetByTags},
				{Method: http.MethodGet, Path: "/by-app-ids", Handler: h.Offer.GetByAppIDs},
				{Method: http.MethodGet, Path: "/by-timestamp", Handler: h.Offer.GetByTimestamp},
				{Method: http.MethodGet, Path: "/:id/tags", Handler: h.Offer.GetTags},
				{Method: http.MethodGet, Path: "/:id/properties", Handler: h.Offer.GetProperties},
			})

			// admin checks happen in the use cases; a missing token is still a 401 here
			admin := offers.Group("")
			admin.Use(authMiddleware.RequireAuth())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Offer.Add},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Offer.Delete},
				{Method: http.MethodPut, Path: "/:id/name", Handler: h.Offer.SetName},
				{Method: http.MethodPut, Path: "/:id/description", Handler: h.Offer.SetDescription},
				{Method: http.MethodPut, Path: "/:id/image-url", Handler: h.Offer.SetImageURL},
				{Method: http.MethodPut, Path: "/:id/tags", Handler: h.Offer.SetTags},
				{Method: http.MethodPut, Path: "/:id/prices", Handler: h.Offer.SetPrices},
				{Method: http.MethodPut, Path: "/:id/time", Handler: h.Offer.SetTime},
				{Method: http.MethodPut, Path: "/:id/properties", Handler: h.Offer.SetProperties},
			})
		}

		purchases := apiGroup.Group("/store/purchases")
		purchases.Use(authMiddleware.RequireAuth())
		{
			addRoutes(purchases, []route{
				{Method: http.MethodPost, Path: "/items", Handler: h.Purchase.BuyVirtualItems},
				{Method: http.MethodPost, Path: "/offers/:id", Handler: h.Purchase.BuyStoreOffer},
			})
		}

		wallet := apiGroup.Group("/wallet")
		wallet.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wallet, []route{
				{Method: http.MethodGet, Path: "/balances", Handler: h.Wallet.ListBalances},
				{Method: http.MethodGet, Path: "/balances/:currency", Handler: h.Wallet.GetBalance},
			})
		}
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
