package models

import "time"

// Currency represents a row of the currencies catalog.
type Currency struct {
	CurrencyCode string    `db:"currency_code"` // Primary Key (e.g., "USD")
	Symbol       string    `db:"symbol"`        // e.g., "$"
	Name         string    `db:"name"`          // e.g., "US Dollar"
	CreatedAt    time.Time `db:"created_at"`
}
