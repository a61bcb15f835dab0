package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

type PaymentService struct {
	provider ports.PaymentProvider
	log      zerolog.Logger
}

func NewPaymentService(provider ports.PaymentProvider, log zerolog.Logger) *PaymentService {
	return &PaymentService{provider: provider, log: log}
}

// CreateIntent asks the provider for a USD card intent of price dollars.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64, idempotencyKey string) (string, error) {
	req := domain.PaymentIntentRequest{
		Amount:             domain.AmountFromPrice(price),
		Currency:           domain.PaymentCurrency,
		PaymentMethodTypes: []string{domain.PaymentMethodCard},
		IdempotencyKey:     idempotencyKey,
	}

	intent, err := s.provider.CreatePaymentIntent(ctx, req)
	if err != nil {
		s.log.Warn().Err(err).Int64("amount", req.Amount).Msg("payment intent rejected")
		return "", domain.Fail("Failed to create payment intent", err)
	}

	s.log.Info().Str("intent_id", intent.ID).Int64("amount", req.Amount).Msg("payment intent created")
	return intent.ClientSecret, nil
}
