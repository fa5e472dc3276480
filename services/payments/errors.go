package payments

import "errors"

// Business-rule errors surfaced to callers. Store and gateway failures are
// wrapped with %w instead.
var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrInsufficientPoints  = errors.New("insufficient points")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrRateNotFound        = errors.New("exchange rate not found")
	ErrMethodNotAvailable  = errors.New("payment method not available")
	ErrRetryNotAllowed     = errors.New("transaction is not retryable")
)
