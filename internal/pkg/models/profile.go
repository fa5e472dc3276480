package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents the wallet-bearing slice of a user profile
type Profile struct {
	ID                uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	Points            int64     `json:"points" db:"points"`
	PreferredCurrency string    `json:"preferred_currency" db:"preferred_currency"`
	CountryCode       string    `json:"country_code" db:"country_code"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
