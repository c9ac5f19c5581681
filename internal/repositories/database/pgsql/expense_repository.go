package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExpenseRepository reads expenses for the dashboard. Writes belong to the
// expense CRUD collaborator that shares this schema.
type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseReader {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExpenseReader = (*PgxExpenseRepository)(nil)

// ListExpensesForMonth returns the user's expenses dated within the month, with their category.
func (r *PgxExpenseRepository) ListExpensesForMonth(ctx context.Context, userID string, month, year int) ([]domain.ExpenseRecord, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT e.expense_id, e.user_id, e.amount, e.currency_code, e.description, e.expense_date,
			c.category_id, c.name AS category_name, c.color AS category_color
		FROM expenses e
		JOIN categories c ON c.category_id = e.category_id
		WHERE e.user_id = $1 AND e.expense_date >= $2 AND e.expense_date < $3
		ORDER BY e.expense_date, e.expense_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}
	return mapping.ToDomainExpenseRecordSlice(modelExpenses), nil
}
