package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of exchange_rates. Rate is NUMERIC(18,6) in the database.
type ExchangeRate struct {
	ExchangeRateID   string          `db:"exchange_rate_id"`
	UserID           string          `db:"user_id"`
	FromCurrencyCode string          `db:"from_currency_code"` // FK -> currencies.currency_code
	ToCurrencyCode   string          `db:"to_currency_code"`   // FK -> currencies.currency_code
	Rate             decimal.Decimal `db:"rate"`
	EffectiveDate    time.Time       `db:"effective_date"` // DATE column
	CreatedAt        time.Time       `db:"created_at"`
}
