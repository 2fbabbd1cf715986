package components

import (
	"store-offers-api/internal/handler"
	"store-offers-api/internal/handler/api"
	"store-offers-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOfferHandler,
		api.NewPurchaseHandler,
		api.NewWalletHandler,
		middleware.NewAuthMiddleware,
		newRouteHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newRouteHandlers(offer *api.OfferHandler, purchase *api.PurchaseHandler, wallet *api.WalletHandler) handler.Handlers {
	return handler.Handlers{
		Offer:    offer,
		Purchase: purchase,
		Wallet:   wallet,
	}
}
