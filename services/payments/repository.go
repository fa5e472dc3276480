package payments

import (
	"context"

	"github.com/pollvault/payments-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pollvault/payments-service/services/payments PaymentRepo

// PaymentRepo defines the interface for payment repository operations
type PaymentRepo interface {
	// payment_methods
	GetActivePaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)

	// settings
	GetCountryPaymentMethodTypes(ctx context.Context, countryCode string) ([]string, error)
	GetPointsPerUSD(ctx context.Context) (float64, error)

	// profiles
	GetProfileByUserID(ctx context.Context, userID string) (*models.Profile, error)

	// transactions
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransactionByID(ctx context.Context, transactionID string) (*models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, transactionID string, status models.TransactionStatus, gatewayTxID string) (int64, error)
	MarkTransactionFailed(ctx context.Context, transactionID string, gatewayErr string) error

	// wallet debit and transaction insert in a single database transaction
	DebitWalletAndRecord(ctx context.Context, userID string, points int64, txn *models.Transaction) error

	// exchange_rates
	GetExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (float64, error)
	ListExchangeRates(ctx context.Context) ([]models.ExchangeRate, error)
}
