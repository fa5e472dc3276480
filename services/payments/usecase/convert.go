package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/pollvault/payments-service/services/payments"
)

const usdCurrency = "USD"

// ConvertAmount converts an amount between currencies using the stored
// exchange rates: identity for equal currencies, a direct rate when one
// exists, otherwise a two-hop conversion through USD. There is no silent
// fallback; a missing conversion path is an error.
func (uc *PaymentUC) ConvertAmount(ctx context.Context, amount float64, fromCurrency, toCurrency string) (float64, error) {
	if fromCurrency == toCurrency {
		return amount, nil
	}

	rate, err := uc.paymentRepo.GetExchangeRate(ctx, fromCurrency, toCurrency)
	if err == nil {
		return amount * rate, nil
	}
	if !errors.Is(err, payments.ErrRateNotFound) {
		return 0, err
	}

	// No direct rate; try hopping through USD
	if fromCurrency == usdCurrency || toCurrency == usdCurrency {
		return 0, fmt.Errorf("%w: %s to %s", payments.ErrRateNotFound, fromCurrency, toCurrency)
	}

	toUSD, err := uc.paymentRepo.GetExchangeRate(ctx, fromCurrency, usdCurrency)
	if err != nil {
		if errors.Is(err, payments.ErrRateNotFound) {
			return 0, fmt.Errorf("%w: %s to %s", payments.ErrRateNotFound, fromCurrency, toCurrency)
		}
		return 0, err
	}

	fromUSD, err := uc.paymentRepo.GetExchangeRate(ctx, usdCurrency, toCurrency)
	if err != nil {
		if errors.Is(err, payments.ErrRateNotFound) {
			return 0, fmt.Errorf("%w: %s to %s", payments.ErrRateNotFound, fromCurrency, toCurrency)
		}
		return 0, err
	}

	return amount * toUSD * fromUSD, nil
}
