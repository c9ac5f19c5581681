package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an expenses row joined with its category.
type Expense struct {
	ExpenseID     string          `db:"expense_id"`
	UserID        string          `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	CurrencyCode  string          `db:"currency_code"`
	Description   string          `db:"description"`
	ExpenseDate   time.Time       `db:"expense_date"`
	CategoryID    string          `db:"category_id"`
	CategoryName  string          `db:"category_name"`
	CategoryColor *string         `db:"category_color"`
}
