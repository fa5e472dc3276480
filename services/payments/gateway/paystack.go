package gateway

import (
	"context"
	"fmt"

	"github.com/pollvault/payments-service/internal/pkg/models"
)

// InitiatePaystackTransaction requests a hosted checkout authorization URL
// from the paystack-initiate-payment function
func (g *PaymentGW) InitiatePaystackTransaction(ctx context.Context, req *models.PaystackInitRequest) (*models.PaystackInitResponse, error) {
	var resp models.PaystackInitResponse
	if err := g.functionsClient.PostJSON(ctx, "/paystack-initiate-payment", req, &resp); err != nil {
		return nil, fmt.Errorf("paystack initiation failed: %w", err)
	}

	if resp.AuthorizationURL == "" {
		return nil, fmt.Errorf("paystack initiation returned no authorization URL")
	}

	return &resp, nil
}
