package repository

import (
	"context"
	"fmt"

	"github.com/pollvault/payments-service/internal/pkg/models"
)

// GetActivePaymentMethods retrieves all active payment methods ordered by name
func (r *PaymentRepo) GetActivePaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	query := `
		SELECT id, name, type, is_active, config, created_at, updated_at
		FROM payment_methods
		WHERE is_active = true
		ORDER BY name ASC
	`

	methods := []models.PaymentMethod{}
	err := r.db.SelectContext(ctx, &methods, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment methods: %w", err)
	}

	return methods, nil
}
