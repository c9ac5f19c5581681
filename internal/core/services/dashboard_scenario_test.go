package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scenario struct {
	repos     *memory.Repositories
	rates     portssvc.ExchangeRateSvcFacade
	resolver  portssvc.RateResolverSvc
	dashboard portssvc.DashboardSvc
}

func newScenario(t *testing.T) *scenario {
	t.Helper()
	repos := memory.NewRepositories()
	currencySvc := services.NewCurrencyService(repos.Currencies)
	require.NoError(t, currencySvc.InitializeStaticData(context.Background()))
	resolver := services.NewRateResolver(repos.ExchangeRates)
	return &scenario{
		repos:     repos,
		rates:     services.NewExchangeRateService(repos.ExchangeRates, currencySvc),
		resolver:  resolver,
		dashboard: services.NewDashboardService(repos.Expenses, resolver),
	}
}

func (s *scenario) createRate(t *testing.T, userID, from, to, rate string, effective time.Time) *domain.ExchangeRate {
	t.Helper()
	created, err := s.rates.CreateExchangeRate(context.Background(), userID, dto.CreateExchangeRateRequest{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             dec(rate),
		EffectiveDate:    dto.NewDate(effective),
	})
	require.NoError(t, err)
	return created
}

func TestDashboard_UsesRateEffectiveOnEachExpenseDate(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.createRate(t, "u1", "EUR", "USD", "1.05", day(2025, 1, 1))
	s.createRate(t, "u1", "EUR", "USD", "1.20", day(2025, 1, 28))
	s.repos.Expenses.AddExpenses("u1",
		domain.ExpenseRecord{ExpenseID: "e1", Amount: dec("100.00"), CurrencyCode: "EUR", Date: day(2025, 1, 2), CategoryID: "c1", CategoryName: "Food"},
		domain.ExpenseRecord{ExpenseID: "e2", Amount: dec("100.00"), CurrencyCode: "EUR", Date: day(2025, 1, 29), CategoryID: "c1", CategoryName: "Food"},
	)

	snapshot, err := s.dashboard.BuildDashboard(ctx, "u1", 1, 2025, domain.DisplayCurrency{Code: "USD", Symbol: "$"})

	require.NoError(t, err)
	assert.True(t, dec("225.00").Equal(snapshot.TotalSpent), "got %s", snapshot.TotalSpent)
	require.Len(t, snapshot.DailySpending, 2)
	assert.True(t, dec("105.00").Equal(snapshot.DailySpending[0].Total))
	assert.True(t, dec("120.00").Equal(snapshot.DailySpending[1].Total))
	assert.Equal(t, "e2", snapshot.HighestExpense.ExpenseID)
	assert.True(t, dec("100").Equal(snapshot.CategoryBreakdown[0].Percentage))
}

func TestDashboard_IdentityWithoutRates(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.repos.Expenses.AddExpenses("u1",
		domain.ExpenseRecord{ExpenseID: "e1", Amount: dec("50.00"), CurrencyCode: "USD", Date: day(2025, 3, 10), CategoryID: "c1", CategoryName: "Misc"},
	)

	inUSD, err := s.dashboard.BuildDashboard(ctx, "u1", 3, 2025, domain.DisplayCurrency{Code: "USD", Symbol: "$"})
	require.NoError(t, err)
	assert.True(t, dec("50.00").Equal(inUSD.TotalSpent))

	inEUR, err := s.dashboard.BuildDashboard(ctx, "u1", 3, 2025, domain.DisplayCurrency{Code: "EUR", Symbol: "€"})
	require.NoError(t, err)
	assert.True(t, dec("50.00").Equal(inEUR.TotalSpent))
}

func TestDashboard_InvertsReverseRate(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.createRate(t, "u1", "USD", "EUR", "0.8", day(2025, 1, 1))
	s.repos.Expenses.AddExpenses("u1",
		domain.ExpenseRecord{ExpenseID: "e1", Amount: dec("10.00"), CurrencyCode: "EUR", Date: day(2025, 1, 5), CategoryID: "c1", CategoryName: "Misc"},
	)

	snapshot, err := s.dashboard.BuildDashboard(ctx, "u1", 1, 2025, domain.DisplayCurrency{Code: "USD", Symbol: "$"})

	require.NoError(t, err)
	assert.True(t, dec("12.50").Equal(snapshot.TotalSpent), "got %s", snapshot.TotalSpent)
}

func TestDashboard_RatesAreUserScoped(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.createRate(t, "someone-else", "EUR", "USD", "2", day(2025, 1, 1))
	s.repos.Expenses.AddExpenses("u1",
		domain.ExpenseRecord{ExpenseID: "e1", Amount: dec("10.00"), CurrencyCode: "EUR", Date: day(2025, 1, 5), CategoryID: "c1", CategoryName: "Misc"},
	)

	snapshot, err := s.dashboard.BuildDashboard(ctx, "u1", 1, 2025, domain.DisplayCurrency{Code: "USD", Symbol: "$"})

	require.NoError(t, err)
	assert.True(t, dec("10.00").Equal(snapshot.TotalSpent))
}

func TestExchangeRates_RejectInvalidAndDuplicateWrites(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	first := s.createRate(t, "u1", "EUR", "USD", "1.05", day(2025, 1, 1))
	s.createRate(t, "u1", "EUR", "USD", "1.20", day(2025, 1, 28))

	_, err := s.rates.CreateExchangeRate(ctx, "u1", dto.CreateExchangeRateRequest{
		FromCurrencyCode: "EUR", ToCurrencyCode: "USD", Rate: dec("0"), EffectiveDate: dto.NewDate(day(2025, 2, 1)),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "zero rate")

	_, err = s.rates.CreateExchangeRate(ctx, "u1", dto.CreateExchangeRateRequest{
		FromCurrencyCode: "EUR", ToCurrencyCode: "EUR", Rate: dec("1"), EffectiveDate: dto.NewDate(day(2025, 2, 1)),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "same pair")

	_, err = s.rates.CreateExchangeRate(ctx, "u1", dto.CreateExchangeRateRequest{
		FromCurrencyCode: "EUR", ToCurrencyCode: "USD", Rate: dec("1.10"), EffectiveDate: dto.NewDate(day(2025, 1, 1)),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "duplicate create")

	_, err = s.rates.UpdateExchangeRate(ctx, "u1", first.ExchangeRateID, dto.UpdateExchangeRateRequest{
		Rate: dec("1.07"), EffectiveDate: dto.NewDate(day(2025, 1, 28)),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "update colliding with another rate")

	updated, err := s.rates.UpdateExchangeRate(ctx, "u1", first.ExchangeRateID, dto.UpdateExchangeRateRequest{
		Rate: dec("1.07"), EffectiveDate: dto.NewDate(day(2025, 1, 1)),
	})
	require.NoError(t, err, "updating a rate onto its own key")
	assert.True(t, dec("1.07").Equal(updated.Rate))

	factor, err := s.resolver.Resolve(ctx, "u1", "EUR", "USD", day(2025, 1, 15))
	require.NoError(t, err)
	assert.True(t, dec("1.07").Equal(factor))
}
