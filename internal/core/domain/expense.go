package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is the read-only view of an expense consumed by the dashboard.
// Expenses themselves are owned by the expense CRUD collaborator.
type ExpenseRecord struct {
	ExpenseID     string
	Amount        decimal.Decimal // in CurrencyCode
	CurrencyCode  string
	Description   string
	Date          time.Time
	CategoryID    string
	CategoryName  string
	CategoryColor *string
}
