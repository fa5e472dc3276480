package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments"
)

// GetProfileByUserID retrieves the wallet profile for a user
func (r *PaymentRepo) GetProfileByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT id, user_id, points, preferred_currency, country_code, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}
