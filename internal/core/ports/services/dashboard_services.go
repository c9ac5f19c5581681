package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// DashboardSvc builds month summaries in a single display currency.
type DashboardSvc interface {
	// ResolvePeriod applies the current UTC month/year to missing values and
	// validates the result.
	ResolvePeriod(month, year *int) (int, int, error)

	// BuildDashboard converts each of the month's expenses as of its own date
	// and aggregates them.
	BuildDashboard(ctx context.Context, userID string, month, year int, display domain.DisplayCurrency) (*domain.DashboardSnapshot, error)
}
