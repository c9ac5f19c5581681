package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ExpenseReader is the read-only expense source used for aggregation.
type ExpenseReader interface {
	// ListExpensesForMonth returns every expense of the user whose date falls in
	// the given calendar month and year, with its category resolved.
	ListExpensesForMonth(ctx context.Context, userID string, month, year int) ([]domain.ExpenseRecord, error)
}
