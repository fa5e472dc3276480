package models

import "time"

// ExchangeRate is a point-in-time multiplicative conversion rate between two
// currencies. Rates are sourced externally and refreshed outside this
// service; they are cached only briefly (one UI session) before re-read.
type ExchangeRate struct {
	FromCurrency string    `json:"from_currency" db:"from_currency"`
	ToCurrency   string    `json:"to_currency" db:"to_currency"`
	Rate         float64   `json:"rate" db:"rate"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
