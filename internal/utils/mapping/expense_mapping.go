package mapping

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
)

// ToDomainExpenseRecord converts a joined expense row to the dashboard's read model.
func ToDomainExpenseRecord(m models.Expense) domain.ExpenseRecord {
	return domain.ExpenseRecord{
		ExpenseID:     m.ExpenseID,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		Description:   m.Description,
		Date:          domain.DateOnly(m.ExpenseDate),
		CategoryID:    m.CategoryID,
		CategoryName:  m.CategoryName,
		CategoryColor: m.CategoryColor,
	}
}

// ToDomainExpenseRecordSlice converts joined expense rows to read models.
func ToDomainExpenseRecordSlice(ms []models.Expense) []domain.ExpenseRecord {
	ds := make([]domain.ExpenseRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpenseRecord(m)
	}
	return ds
}
