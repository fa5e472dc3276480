package usecase

import (
	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments"
)

// PaymentUC implements the payment usecase interface
type PaymentUC struct {
	cfg         *models.Config
	paymentRepo payments.PaymentRepo
	paymentGW   payments.PaymentGW
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	cfg *models.Config,
	paymentRepo payments.PaymentRepo,
	paymentGW payments.PaymentGW,
) *PaymentUC {
	return &PaymentUC{
		cfg:         cfg,
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
	}
}
