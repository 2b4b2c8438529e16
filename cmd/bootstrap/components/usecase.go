package components

import (
	"log/slog"

	"go.uber.org/fx"

	"pousada-api/internal/handler/api"
	"pousada-api/internal/handler/middleware"
	"pousada-api/internal/infra/mongodb"
	gateway "pousada-api/internal/infra/payment"
	"pousada-api/internal/pkg/config"
	"pousada-api/internal/usecase"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(
			usecase.NewAuthUsecase,
			fx.As(new(api.AuthService)),
			fx.As(new(middleware.TokenVerifier)),
		),
		fx.Annotate(
			usecase.NewUserUsecase,
			fx.As(new(api.UserService)),
		),
		fx.Annotate(
			usecase.NewFileUsecase,
			fx.As(new(api.FileService)),
		),
		fx.Annotate(
			usecase.NewConsumptionUsecase,
			fx.As(new(api.ConsumptionService)),
		),
		fx.Annotate(
			usecase.NewReservationUsecase,
			fx.As(new(api.ReservationService)),
		),
		fx.Annotate(
			NewPaymentUsecase,
			fx.As(new(api.PaymentService)),
		),
	),
)

func NewPaymentUsecase(tx mongodb.TxRunner, payments usecase.PaymentRepository, reservations usecase.ReservationRepository, gw gateway.IntentGateway, cfg config.Config, logger *slog.Logger) *usecase.PaymentUsecase {
	return usecase.NewPaymentUsecase(tx, payments, reservations, gw, cfg.Stripe.Currency, logger)
}
