package payment

import (
	"context"

	"eventure/internal/pkg/config"
	"eventure/internal/pkg/errs"
	"eventure/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway creates payment intents for the hosted payment widget.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(cfg config.PaymentConfig) *StripeGateway {
	return &StripeGateway{api: client.New(cfg.StripeKey, nil)}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req commands.IntentRequest) (*commands.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(req.AmountPaise),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment intent")
	}

	return &commands.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
