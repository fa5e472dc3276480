package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/pollvault/payments-service/internal/pkg/logger"
	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments"
)

func rateCacheKey(from, to string) string {
	return fmt.Sprintf("exchange_rate:%s:%s", from, to)
}

// GetExchangeRate returns the multiplicative rate from one currency to
// another. Rates are cached in Redis for the duration of a UI session so a
// modal sees a consistent point-in-time rate across its round trips.
func (r *PaymentRepo) GetExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (float64, error) {
	key := rateCacheKey(fromCurrency, toCurrency)

	if r.redisClient != nil {
		cached, err := r.redisClient.Get(ctx, key)
		if err == nil {
			rate, parseErr := strconv.ParseFloat(cached, 64)
			if parseErr == nil && rate > 0 {
				return rate, nil
			}
		}
	}

	query := `
		SELECT rate FROM exchange_rates
		WHERE from_currency = $1 AND to_currency = $2
	`

	var rate float64
	err := r.db.QueryRowContext(ctx, query, fromCurrency, toCurrency).Scan(&rate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, payments.ErrRateNotFound
		}
		return 0, fmt.Errorf("failed to get exchange rate: %w", err)
	}

	if r.redisClient != nil {
		ttl := time.Duration(r.cfg.Wallet.RateCacheTTL) * time.Second
		if err := r.redisClient.Set(ctx, key, strconv.FormatFloat(rate, 'f', -1, 64), ttl); err != nil {
			logger.Warn("Failed to cache exchange rate",
				logger.String("from", fromCurrency),
				logger.String("to", toCurrency),
				logger.Err(err))
		}
	}

	return rate, nil
}

// ListExchangeRates returns all current exchange rates
func (r *PaymentRepo) ListExchangeRates(ctx context.Context) ([]models.ExchangeRate, error) {
	query := `
		SELECT from_currency, to_currency, rate, updated_at
		FROM exchange_rates
		ORDER BY from_currency, to_currency
	`

	rates := []models.ExchangeRate{}
	if err := r.db.SelectContext(ctx, &rates, query); err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}

	return rates, nil
}
