package components

import (
	"context"

	"go.uber.org/fx"

	"pousada-api/internal/handler"
	"pousada-api/internal/handler/api"
	"pousada-api/internal/handler/middleware"
	"pousada-api/internal/pkg/config"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewFileHandler,
		api.NewConsumptionHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
	rl := middleware.NewRateLimiter(cfg.RateLimit)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			rl.Close()
			return nil
		},
	})
	return rl
}

func NewHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	file *api.FileHandler,
	consumption *api.ConsumptionHandler,
	reservation *api.ReservationHandler,
	payment *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		User:        user,
		File:        file,
		Consumption: consumption,
		Reservation: reservation,
		Payment:     payment,
	}
}
