package models

import "time"

// User is the users row. Accounts are managed by the identity provider;
// this table only anchors per-user data and preferences.
type User struct {
	UserID              string    `db:"user_id"`
	DefaultCurrencyCode *string   `db:"default_currency_code"`
	CreatedAt           time.Time `db:"created_at"`
}
