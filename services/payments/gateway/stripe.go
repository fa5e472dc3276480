package gateway

import (
	"context"
	"fmt"

	"github.com/pollvault/payments-service/internal/pkg/models"
)

// CreatePaymentIntent requests a Stripe payment intent from the
// create-payment-intent function and returns its client secret
func (g *PaymentGW) CreatePaymentIntent(ctx context.Context, req *models.PaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	var resp models.PaymentIntentResponse
	if err := g.functionsClient.PostJSON(ctx, "/create-payment-intent", req, &resp); err != nil {
		return nil, fmt.Errorf("create payment intent failed: %w", err)
	}

	if resp.ClientSecret == "" {
		return nil, fmt.Errorf("create payment intent returned no client secret")
	}

	return &resp, nil
}
