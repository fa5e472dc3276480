package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PaymentMethodType identifies how a payment is collected
type PaymentMethodType string

const (
	PaymentMethodWallet   PaymentMethodType = "wallet"
	PaymentMethodStripe   PaymentMethodType = "stripe"
	PaymentMethodPayPal   PaymentMethodType = "paypal"
	PaymentMethodPaystack PaymentMethodType = "paystack"
)

// PaymentMethodConfig holds optional per-method configuration stored as JSONB.
// A method with no currency configuration is treated as supporting every
// currency.
type PaymentMethodConfig struct {
	SupportedCurrencies []string `json:"supported_currencies,omitempty"`
	DefaultCurrency     string   `json:"default_currency,omitempty"`
}

// Value implements driver.Valuer for JSONB storage
func (c PaymentMethodConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB retrieval
func (c *PaymentMethodConfig) Scan(src interface{}) error {
	if src == nil {
		*c = PaymentMethodConfig{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type for payment method config: %T", src)
	}
	return json.Unmarshal(b, c)
}

// SupportsCurrency reports whether the method can collect the given currency.
// Methods without currency configuration support everything.
func (c PaymentMethodConfig) SupportsCurrency(currency string) bool {
	if len(c.SupportedCurrencies) == 0 && c.DefaultCurrency == "" {
		return true
	}
	if c.DefaultCurrency == currency {
		return true
	}
	for _, cur := range c.SupportedCurrencies {
		if cur == currency {
			return true
		}
	}
	return false
}

// PaymentMethod represents an administrator-managed payment method.
// Reference data; this service only reads it.
type PaymentMethod struct {
	ID        string              `json:"id" db:"id"`
	Name      string              `json:"name" db:"name"`
	Type      PaymentMethodType   `json:"type" db:"type"`
	IsActive  bool                `json:"is_active" db:"is_active"`
	Config    PaymentMethodConfig `json:"config" db:"config"`
	CreatedAt time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" db:"updated_at"`
}
