package gateway

import (
	"fmt"

	"github.com/pollvault/payments-service/internal/pkg/models"
)

// PublishTransactionEvent publishes a transaction lifecycle event to NSQ so
// webhook handlers and downstream services can observe status changes
func (g *PaymentGW) PublishTransactionEvent(event *models.TransactionEvent) error {
	if g.producer == nil {
		return nil
	}

	if err := g.producer.Publish(g.cfg.NSQ.TransactionTopic, event); err != nil {
		return fmt.Errorf("failed to publish transaction event: %w", err)
	}

	return nil
}
