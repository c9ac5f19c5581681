package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrencies(ctx context.Context, currencies []domain.Currency) error {
	args := m.Called(ctx, currencies)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindRateAsOf(ctx context.Context, userID, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, userID, fromCode, toCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, userID, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, userID, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRatesByUser(ctx context.Context, userID string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ExistsDuplicate(ctx context.Context, userID, fromCode, toCode string, effectiveDate time.Time, excludeID *string) (bool, error) {
	args := m.Called(ctx, userID, fromCode, toCode, effectiveDate, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) DeleteExchangeRate(ctx context.Context, userID, rateID string) error {
	args := m.Called(ctx, userID, rateID)
	return args.Error(0)
}

// --- Mock ExpenseReader ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) ListExpensesForMonth(ctx context.Context, userID string, month, year int) ([]domain.ExpenseRecord, error) {
	args := m.Called(ctx, userID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseRecord), args.Error(1)
}

// --- Mock UserSettingsRepository ---
type MockUserSettingsRepository struct {
	mock.Mock
}

func (m *MockUserSettingsRepository) FindDefaultCurrencyCode(ctx context.Context, userID string) (*string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockUserSettingsRepository) UpdateDefaultCurrencyCode(ctx context.Context, userID string, currencyCode *string) error {
	args := m.Called(ctx, userID, currencyCode)
	return args.Error(0)
}

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CurrencyExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencySymbol(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

// --- Mock RateResolver ---
type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) ResolveRate(ctx context.Context, userID, fromCode, toCode string, asOf time.Time) (domain.RateResolution, error) {
	args := m.Called(ctx, userID, fromCode, toCode, asOf)
	return args.Get(0).(domain.RateResolution), args.Error(1)
}

func (m *MockRateResolver) Resolve(ctx context.Context, userID, fromCode, toCode string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, fromCode, toCode, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateResolver) Convert(ctx context.Context, userID string, amount decimal.Decimal, fromCode, toCode string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, amount, fromCode, toCode, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}
