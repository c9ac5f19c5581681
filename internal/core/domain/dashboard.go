package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConvertedExpense is an expense presented in the dashboard's display currency.
type ConvertedExpense struct {
	ExpenseID      string
	Amount         decimal.Decimal // converted amount
	CurrencyCode   string          // display currency
	OriginalAmount decimal.Decimal
	OriginalCode   string
	Description    string
	Date           time.Time
	CategoryID     string
	CategoryName   string
	CategoryColor  *string
}

// CategorySpending is one row of the category breakdown.
type CategorySpending struct {
	CategoryID   string
	CategoryName string
	Color        *string
	Total        decimal.Decimal
	Percentage   decimal.Decimal
}

// DailySpending is one point of the daily series.
type DailySpending struct {
	Date  time.Time
	Total decimal.Decimal
}

// DashboardSnapshot summarises a user's spending for one month, normalised
// into a single display currency. It is derived per request and never stored.
type DashboardSnapshot struct {
	Month             int
	Year              int
	TotalSpent        decimal.Decimal
	TransactionCount  int
	HighestExpense    *ConvertedExpense
	TopCategory       *string
	CategoryBreakdown []CategorySpending
	DailySpending     []DailySpending
	DisplayCurrency   string
	DisplaySymbol     string
}
