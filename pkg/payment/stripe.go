package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"
)

// StripeProvider creates payment intents through the Stripe API.
type StripeProvider struct {
	api      *client.API
	currency string
	log      *zap.Logger
}

func NewStripeProvider(secretKey, currency string, log *zap.Logger) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeProvider{
		api:      api,
		currency: currency,
		log:      log.With(zap.String("provider", "stripe")),
	}
}

// CreateIntent authorizes a charge for the given amount in minor units
// and returns the client secret the frontend needs to confirm it. There
// is no webhook follow-up; confirmation stays client-driven.
func (p *StripeProvider) CreateIntent(amount int64, bookingID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(p.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", bookingID)

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		p.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.Int64("amount", amount),
			zap.String("booking_id", bookingID),
		)
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
