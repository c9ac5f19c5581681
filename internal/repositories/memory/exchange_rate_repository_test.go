package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func newRate(id, userID, from, to, rate string, effective time.Time) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   id,
		UserID:           userID,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.RequireFromString(rate),
		EffectiveDate:    effective,
	}
}

func TestFindRateAsOf_PicksLatestOnOrBeforeDate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewExchangeRateRepository()
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("a", "u1", "EUR", "USD", "1.05", date(2025, 1, 1))))
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("b", "u1", "EUR", "USD", "1.20", date(2025, 1, 28))))

	rate, err := repo.FindRateAsOf(ctx, "u1", "EUR", "USD", date(2025, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, "a", rate.ExchangeRateID)

	rate, err = repo.FindRateAsOf(ctx, "u1", "EUR", "USD", date(2025, 1, 28))
	require.NoError(t, err)
	assert.Equal(t, "b", rate.ExchangeRateID, "a rate applies from its own effective date")

	rate, err = repo.FindRateAsOf(ctx, "u1", "EUR", "USD", time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "b", rate.ExchangeRateID)

	_, err = repo.FindRateAsOf(ctx, "u1", "EUR", "USD", date(2024, 12, 31))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindRateAsOf_IsScopedToUserAndDirection(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewExchangeRateRepository()
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("a", "u1", "EUR", "USD", "1.05", date(2025, 1, 1))))

	_, err := repo.FindRateAsOf(ctx, "u2", "EUR", "USD", date(2025, 2, 1))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.FindRateAsOf(ctx, "u1", "USD", "EUR", date(2025, 2, 1))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveExchangeRate_RejectsDuplicateKey(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewExchangeRateRepository()
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("a", "u1", "EUR", "USD", "1.05", date(2025, 1, 1))))

	err := repo.SaveExchangeRate(ctx, newRate("b", "u1", "EUR", "USD", "1.10", date(2025, 1, 1)))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// Another user may hold the same pair and date.
	assert.NoError(t, repo.SaveExchangeRate(ctx, newRate("c", "u2", "EUR", "USD", "1.10", date(2025, 1, 1))))
}

func TestExistsDuplicate_ExcludesSelf(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewExchangeRateRepository()
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("a", "u1", "EUR", "USD", "1.05", date(2025, 1, 1))))

	dup, err := repo.ExistsDuplicate(ctx, "u1", "EUR", "USD", date(2025, 1, 1), nil)
	require.NoError(t, err)
	assert.True(t, dup)

	self := "a"
	dup, err = repo.ExistsDuplicate(ctx, "u1", "EUR", "USD", date(2025, 1, 1), &self)
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestUpdateExchangeRate_CollisionAndOwnership(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewExchangeRateRepository()
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("a", "u1", "EUR", "USD", "1.05", date(2025, 1, 1))))
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("b", "u1", "EUR", "USD", "1.20", date(2025, 1, 28))))

	err := repo.UpdateExchangeRate(ctx, newRate("b", "u1", "EUR", "USD", "1.30", date(2025, 1, 1)))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	err = repo.UpdateExchangeRate(ctx, newRate("b", "u2", "EUR", "USD", "1.30", date(2025, 2, 1)))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Pair fields in the update are ignored.
	require.NoError(t, repo.UpdateExchangeRate(ctx, newRate("b", "u1", "GBP", "JPY", "1.30", date(2025, 2, 1))))
	updated, err := repo.FindExchangeRateByID(ctx, "u1", "b")
	require.NoError(t, err)
	assert.Equal(t, "EUR", updated.FromCurrencyCode)
	assert.Equal(t, "USD", updated.ToCurrencyCode)
	assert.True(t, decimal.RequireFromString("1.30").Equal(updated.Rate))
	assert.Equal(t, date(2025, 2, 1), updated.EffectiveDate)
}

func TestDeleteExchangeRate_OtherUserIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewExchangeRateRepository()
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("a", "u1", "EUR", "USD", "1.05", date(2025, 1, 1))))

	assert.ErrorIs(t, repo.DeleteExchangeRate(ctx, "u2", "a"), apperrors.ErrNotFound)
	assert.NoError(t, repo.DeleteExchangeRate(ctx, "u1", "a"))
	assert.ErrorIs(t, repo.DeleteExchangeRate(ctx, "u1", "a"), apperrors.ErrNotFound)
}

func TestListExchangeRatesByUser_Ordering(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewExchangeRateRepository()
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("1", "u1", "USD", "EUR", "0.9", date(2025, 1, 1))))
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("2", "u1", "EUR", "USD", "1.1", date(2025, 1, 1))))
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("3", "u1", "GBP", "EUR", "1.2", date(2025, 2, 1))))
	require.NoError(t, repo.SaveExchangeRate(ctx, newRate("4", "u2", "GBP", "EUR", "1.2", date(2025, 2, 1))))

	rates, err := repo.ListExchangeRatesByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rates, 3)
	assert.Equal(t, "3", rates[0].ExchangeRateID)
	assert.Equal(t, "2", rates[1].ExchangeRateID)
	assert.Equal(t, "1", rates[2].ExchangeRateID)
}

func TestRepositories_HonorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repos := memory.NewRepositories()

	_, err := repos.ExchangeRates.FindRateAsOf(ctx, "u1", "EUR", "USD", date(2025, 1, 1))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repos.Expenses.ListExpensesForMonth(ctx, "u1", 1, 2025)
	assert.ErrorIs(t, err, context.Canceled)
}
