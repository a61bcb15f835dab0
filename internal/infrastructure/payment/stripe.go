package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

// StripeProvider creates payment intents through the Stripe API.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider builds a provider for secretKey. backends may be nil to
// use Stripe's default endpoints.
func NewStripeProvider(secretKey string, backends *stripe.Backends) *StripeProvider {
	return &StripeProvider{api: client.New(secretKey, backends)}
}

func (p *StripeProvider) CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	pi, err := p.api.PaymentIntents.New(intentParams(ctx, req))
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}
	return &domain.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func intentParams(ctx context.Context, req domain.PaymentIntentRequest) *stripe.PaymentIntentParams {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		PaymentMethodTypes: stripe.StringSlice(req.PaymentMethodTypes),
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	return params
}
