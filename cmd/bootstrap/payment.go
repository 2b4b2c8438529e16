package bootstrap

import (
	"go.uber.org/fx"

	gateway "pousada-api/internal/infra/payment"
	"pousada-api/internal/pkg/config"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewStripeGateway,
			fx.As(new(gateway.IntentGateway)),
		),
	),
)

func NewStripeGateway(cfg config.Config) *gateway.StripeGateway {
	return gateway.NewStripeGateway(cfg.Stripe.BaseURL, cfg.Stripe.SecretKey)
}
