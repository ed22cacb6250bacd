package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"multimart/internal/domain/user"
	"multimart/internal/handler/api"
	"multimart/internal/handler/middleware"
	"multimart/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, checkoutHandler *api.CheckoutHandler, discountHandler *api.DiscountHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, checkoutHandler, discountHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, checkoutHandler *api.CheckoutHandler, discountHandler *api.DiscountHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.ComputeCheckout},
				{Method: http.MethodPost, Path: "/confirm", Handler: checkoutHandler.ConfirmCheckout},
			})
		}

		discounts := apiGroup.Group("/discounts")
		{
			addRoutes(discounts, []route{
				{Method: http.MethodGet, Path: "/published", Handler: discountHandler.ListPublishedDiscounts},
			})

			manage := discounts.Group("")
			manage.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleShopOwner))
			addRoutes(manage, []route{
				{Method: http.MethodPost, Path: "", Handler: discountHandler.CreateDiscount},
				{Method: http.MethodGet, Path: "", Handler: discountHandler.ListShopDiscounts},
				{Method: http.MethodGet, Path: "/:id", Handler: discountHandler.GetDiscount},
				{Method: http.MethodPatch, Path: "/:id", Handler: discountHandler.UpdateDiscount},
				{Method: http.MethodDelete, Path: "/:id", Handler: discountHandler.DeleteDiscount},
				{Method: http.MethodPost, Path: "/:id/publish", Handler: discountHandler.PublishDiscount},
				{Method: http.MethodPost, Path: "/:id/unpublish", Handler: discountHandler.UnpublishDiscount},
				{Method: http.MethodPatch, Path: "/:id/availability", Handler: discountHandler.SetAvailability},
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
