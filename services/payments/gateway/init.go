package gateway

import (
	"time"

	httpclient "github.com/pollvault/payments-service/internal/pkg/http"
	"github.com/pollvault/payments-service/internal/pkg/models"
	nsqpkg "github.com/pollvault/payments-service/internal/pkg/nsq"
)

// PaymentGW implements the payment gateway interface. All gateway initiation
// calls go through serverless functions so gateway secret keys never reach
// this service.
type PaymentGW struct {
	cfg             *models.Config
	functionsClient *httpclient.Client
	producer        *nsqpkg.Producer
}

// NewPaymentGW creates a new payment gateway instance
func NewPaymentGW(cfg *models.Config, producer *nsqpkg.Producer) *PaymentGW {
	timeout := time.Duration(cfg.Functions.Timeout) * time.Second

	return &PaymentGW{
		cfg:             cfg,
		functionsClient: httpclient.NewClientWithAuth(cfg.Functions.BaseURL, cfg.Functions.ServiceKey, timeout),
		producer:        producer,
	}
}
