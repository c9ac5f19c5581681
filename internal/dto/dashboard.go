package dto

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseResponse is an expense as shown on the dashboard, already converted.
type ExpenseResponse struct {
	ExpenseID            string          `json:"expenseID"`
	Amount               decimal.Decimal `json:"amount"`
	CurrencyCode         string          `json:"currencyCode"`
	OriginalAmount       decimal.Decimal `json:"originalAmount"`
	OriginalCurrencyCode string          `json:"originalCurrencyCode"`
	Description          string          `json:"description"`
	Date                 Date            `json:"date"`
	CategoryID           string          `json:"categoryID"`
	CategoryName         string          `json:"categoryName"`
	CategoryColor        *string         `json:"categoryColor,omitempty"`
}

// CategorySpendingResponse is one row of the category breakdown.
type CategorySpendingResponse struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Color        *string         `json:"color,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// DailySpendingResponse is one point of the daily series.
type DailySpendingResponse struct {
	Date  Date            `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// DashboardResponse is the month summary returned by GET /dashboard.
type DashboardResponse struct {
	Month             int                        `json:"month"`
	Year              int                        `json:"year"`
	TotalSpent        decimal.Decimal            `json:"totalSpent"`
	TransactionCount  int                        `json:"transactionCount"`
	HighestExpense    *ExpenseResponse           `json:"highestExpense"`
	TopCategory       *string                    `json:"topCategory"`
	CategoryBreakdown []CategorySpendingResponse `json:"categoryBreakdown"`
	DailySpending     []DailySpendingResponse    `json:"dailySpending"`
	DisplayCurrency   string                     `json:"displayCurrency"`
	DisplaySymbol     string                     `json:"displaySymbol"`
}

// ToDashboardResponse converts a domain.DashboardSnapshot to its response DTO.
func ToDashboardResponse(s *domain.DashboardSnapshot) DashboardResponse {
	resp := DashboardResponse{
		Month:             s.Month,
		Year:              s.Year,
		TotalSpent:        s.TotalSpent,
		TransactionCount:  s.TransactionCount,
		TopCategory:       s.TopCategory,
		CategoryBreakdown: make([]CategorySpendingResponse, len(s.CategoryBreakdown)),
		DailySpending:     make([]DailySpendingResponse, len(s.DailySpending)),
		DisplayCurrency:   s.DisplayCurrency,
		DisplaySymbol:     s.DisplaySymbol,
	}

	if e := s.HighestExpense; e != nil {
		resp.HighestExpense = &ExpenseResponse{
			ExpenseID:            e.ExpenseID,
			Amount:               e.Amount,
			CurrencyCode:         e.CurrencyCode,
			OriginalAmount:       e.OriginalAmount,
			OriginalCurrencyCode: e.OriginalCode,
			Description:          e.Description,
			Date:                 NewDate(e.Date),
			CategoryID:           e.CategoryID,
			CategoryName:         e.CategoryName,
			CategoryColor:        e.CategoryColor,
		}
	}

	for i, c := range s.CategoryBreakdown {
		resp.CategoryBreakdown[i] = CategorySpendingResponse{
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			Color:        c.Color,
			Total:        c.Total,
			Percentage:   c.Percentage,
		}
	}

	for i, d := range s.DailySpending {
		resp.DailySpending[i] = DailySpendingResponse{Date: NewDate(d.Date), Total: d.Total}
	}

	return resp
}
