package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the lifecycle state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// IsTerminal reports whether the status permits no further transitions
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusRefunded:
		return true
	}
	return false
}

// Metadata is a free-form transaction annotation map stored as JSONB
// (points used, conversion rate, gateway error text, ...)
type Metadata map[string]interface{}

// Value implements driver.Valuer for JSONB storage
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(Metadata{})
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type for metadata: %T", src)
	}
	return json.Unmarshal(b, m)
}

// Transaction represents a payment transaction record. Amount/Currency hold
// the normalized value the gateway or wallet actually processed;
// OriginalAmount/OriginalCurrency preserve what the user saw before
// conversion. Rows are never deleted.
type Transaction struct {
	ID                   uuid.UUID         `json:"id" db:"id"`
	UserID               uuid.UUID         `json:"user_id" db:"user_id"`
	PollID               *uuid.UUID        `json:"poll_id,omitempty" db:"poll_id"`
	Amount               float64           `json:"amount" db:"amount"`
	Currency             string            `json:"currency" db:"currency"`
	OriginalAmount       float64           `json:"original_amount" db:"original_amount"`
	OriginalCurrency     string            `json:"original_currency" db:"original_currency"`
	PaymentMethod        string            `json:"payment_method" db:"payment_method"`
	Status               TransactionStatus `json:"status" db:"status"`
	GatewayTransactionID string            `json:"gateway_transaction_id,omitempty" db:"gateway_transaction_id"`
	Metadata             Metadata          `json:"metadata" db:"metadata"`
	CreatedAt            time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at" db:"updated_at"`
}

// TransactionEvent is published to NSQ whenever a transaction is created or
// changes status, so webhook handlers and downstream services can react
type TransactionEvent struct {
	TransactionID        string            `json:"transaction_id"`
	UserID               string            `json:"user_id"`
	PollID               string            `json:"poll_id,omitempty"`
	Status               TransactionStatus `json:"status"`
	PaymentMethod        string            `json:"payment_method"`
	Amount               float64           `json:"amount"`
	Currency             string            `json:"currency"`
	GatewayTransactionID string            `json:"gateway_transaction_id,omitempty"`
	OccurredAt           time.Time         `json:"occurred_at"`
}
