package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"beads-store/internal/handler/api"
	"beads-store/internal/handler/middleware"
	"beads-store/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	orderHandler *api.OrderHandler,
	cartHandler *api.CartHandler,
	couponHandler *api.CouponHandler,
	offerHandler *api.OfferHandler,
	addressHandler *api.AddressHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, orderHandler, cartHandler, couponHandler, offerHandler, addressHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	orderHandler *api.OrderHandler,
	cartHandler *api.CartHandler,
	couponHandler *api.CouponHandler,
	offerHandler *api.OfferHandler,
	addressHandler *api.AddressHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.PlaceOrder},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.GetUserOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: orderHandler.CancelOrder},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodDelete, Path: "", Handler: cartHandler.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPatch, Path: "/items/:productId", Handler: cartHandler.UpdateItem},
				{Method: http.MethodDelete, Path: "/items/:productId", Handler: cartHandler.RemoveItem},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: couponHandler.Validate},
			})
		}

		addresses := apiGroup.Group("/addresses")
		addresses.Use(authMiddleware.RequireAuth())
		{
			addRoutes(addresses, []route{
				{Method: http.MethodGet, Path: "", Handler: addressHandler.List},
				{Method: http.MethodPost, Path: "", Handler: addressHandler.Add},
				{Method: http.MethodPut, Path: "/:id", Handler: addressHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: addressHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/default", Handler: addressHandler.SetDefault},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/orders", Handler: orderHandler.ListAllOrders},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: orderHandler.UpdateOrderStatus},
				{Method: http.MethodPatch, Path: "/orders/:id/payment-status", Handler: orderHandler.UpdatePaymentStatus},
				{Method: http.MethodPost, Path: "/coupons", Handler: couponHandler.Create},
				{Method: http.MethodPatch, Path: "/coupons/:id/active", Handler: couponHandler.SetActive},
				{Method: http.MethodPost, Path: "/offers", Handler: offerHandler.Create},
				{Method: http.MethodPatch, Path: "/offers/:id/active", Handler: offerHandler.SetActive},
				{Method: http.MethodDelete, Path: "/offers/:id", Handler: offerHandler.Delete},
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
