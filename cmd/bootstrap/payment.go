package bootstrap

import (
	"eventure/internal/infra/payment"
	"eventure/internal/pkg/config"
	"eventure/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewStripeGateway,
		fx.Annotate(
			payment.NewRedisSessionStore,
			fx.As(new(commands.CheckoutSessions)),
		),
	),
)

func NewStripeGateway(cfg config.Config) commands.PaymentGateway {
	return payment.NewStripeGateway(cfg.Payment)
}
