package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// ExpenseRepository is an in-memory expense source. Expense CRUD lives
// elsewhere, so records are loaded with AddExpenses.
type ExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string][]domain.ExpenseRecord
}

// NewExpenseRepository creates an empty expense source.
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{expenses: make(map[string][]domain.ExpenseRecord)}
}

var _ portsrepo.ExpenseReader = (*ExpenseRepository)(nil)

// AddExpenses appends expenses owned by userID.
func (r *ExpenseRepository) AddExpenses(userID string, expenses ...domain.ExpenseRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses[userID] = append(r.expenses[userID], expenses...)
}

func (r *ExpenseRepository) ListExpensesForMonth(ctx context.Context, userID string, month, year int) ([]domain.ExpenseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.ExpenseRecord, 0)
	for _, e := range r.expenses[userID] {
		if e.Date.Year() == year && int(e.Date.Month()) == month {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ExpenseID < result[j].ExpenseID
	})
	return result, nil
}
