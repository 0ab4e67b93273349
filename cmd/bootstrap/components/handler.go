package components

import (
	"beads-store/internal/handler"
	"beads-store/internal/handler/api"
	"beads-store/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewCartHandler,
		api.NewCouponHandler,
		api.NewOfferHandler,
		api.NewAddressHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
