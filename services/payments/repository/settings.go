package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pollvault/payments-service/internal/pkg/logger"
)

// GetCountryPaymentMethodTypes returns the payment method types enabled for
// a country. Falls back to the default settings row when the country has no
// entry of its own.
func (r *PaymentRepo) GetCountryPaymentMethodTypes(ctx context.Context, countryCode string) ([]string, error) {
	key := "payment_methods_default"
	if countryCode != "" {
		key = "payment_methods_" + strings.ToLower(countryCode)
	}

	types, err := r.getMethodTypesSetting(ctx, key)
	if err == nil {
		return types, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get country payment settings: %w", err)
	}

	if key != "payment_methods_default" {
		types, err = r.getMethodTypesSetting(ctx, "payment_methods_default")
		if err == nil {
			return types, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to get default payment settings: %w", err)
		}
	}

	// No settings at all: every method type is enabled
	return nil, nil
}

func (r *PaymentRepo) getMethodTypesSetting(ctx context.Context, key string) ([]string, error) {
	query := `SELECT value FROM settings WHERE key = $1`

	var raw []byte
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&raw); err != nil {
		return nil, err
	}

	var types []string
	if err := json.Unmarshal(raw, &types); err != nil {
		return nil, fmt.Errorf("invalid payment settings value for %s: %w", key, err)
	}
	return types, nil
}

// GetPointsPerUSD returns the configured wallet points per USD rate, falling
// back to the config default when no settings row exists
func (r *PaymentRepo) GetPointsPerUSD(ctx context.Context) (float64, error) {
	query := `SELECT value FROM settings WHERE key = 'points_to_usd_conversion'`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.cfg.Wallet.PointsPerUSD, nil
		}
		return 0, fmt.Errorf("failed to get points conversion setting: %w", err)
	}

	var rate float64
	if err := json.Unmarshal(raw, &rate); err != nil || rate <= 0 {
		logger.Warn("Invalid points conversion setting, using default",
			logger.Float64("default", r.cfg.Wallet.PointsPerUSD))
		return r.cfg.Wallet.PointsPerUSD, nil
	}

	return rate, nil
}
