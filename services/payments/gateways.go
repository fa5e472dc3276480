package payments

import (
	"context"

	"github.com/pollvault/payments-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/pollvault/payments-service/services/payments PaymentGW

// PaymentGW defines the interface for external payment gateway operations
type PaymentGW interface {
	// serverless function round trips
	CreatePaymentIntent(ctx context.Context, req *models.PaymentIntentRequest) (*models.PaymentIntentResponse, error)
	InitiatePaystackTransaction(ctx context.Context, req *models.PaystackInitRequest) (*models.PaystackInitResponse, error)

	// transaction lifecycle events
	PublishTransactionEvent(event *models.TransactionEvent) error
}
