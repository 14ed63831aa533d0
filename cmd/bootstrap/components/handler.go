package components

import (
	"eventure/internal/handler"
	"eventure/internal/handler/api"
	"eventure/internal/handler/middleware"
	"eventure/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewScooterHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, scooter *api.ScooterHandler, booking *api.BookingHandler, payment *api.PaymentHandler) handler.Handlers {
			return handler.Handlers{
				Auth:    auth,
				Scooter: scooter,
				Booking: booking,
				Payment: payment,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
