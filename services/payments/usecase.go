package payments

import (
	"context"

	"github.com/pollvault/payments-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pollvault/payments-service/services/payments PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// payment method lookup
	GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	GetAvailablePaymentMethods(ctx context.Context, countryCode, currency string) ([]models.PaymentMethod, error)

	// wallet payments
	ProcessWalletPayment(ctx context.Context, req *models.WalletPaymentRequest) (*models.Transaction, error)

	// transaction lifecycle
	CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, transactionID string, status models.TransactionStatus, gatewayTxID string) error

	// gateway initiation
	InitializeStripePayment(ctx context.Context, req *models.GatewayPaymentRequest) (*models.StripeInitResult, error)
	InitializePaystackPayment(ctx context.Context, req *models.GatewayPaymentRequest) (*models.PaystackInitResult, error)

	// currency conversion
	ConvertAmount(ctx context.Context, amount float64, fromCurrency, toCurrency string) (float64, error)

	// retry payment flow
	GetRetryPaymentOptions(ctx context.Context, userID, transactionID, countryCode string) (*models.RetryPaymentOptions, error)
	RetryPromotionPayment(ctx context.Context, req *models.RetryPaymentRequest) (*models.RetryPaymentResult, error)
}
