package services

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code (case-insensitive).
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// CurrencyExists reports whether the code is in the catalog.
	CurrencyExists(ctx context.Context, currencyCode string) (bool, error)

	// GetCurrencySymbol returns the display symbol, falling back to the code itself.
	GetCurrencySymbol(ctx context.Context, currencyCode string) (string, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	StaticDataService
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// ListExchangeRates lists the user's rates, newest effective date first.
	ListExchangeRates(ctx context.Context, userID string) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate validates and persists a new rate owned by userID.
	CreateExchangeRate(ctx context.Context, userID string, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)

	// UpdateExchangeRate changes the rate value and effective date of one of the user's rates.
	UpdateExchangeRate(ctx context.Context, userID, rateID string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error)

	// DeleteExchangeRate removes one of the user's rates.
	DeleteExchangeRate(ctx context.Context, userID, rateID string) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

// RateResolverSvc resolves user-defined rates and converts amounts with them.
// Missing rate data is never an error: it resolves to a 1:1 factor.
type RateResolverSvc interface {
	// ResolveRate returns the typed resolution for the pair as of the given day.
	ResolveRate(ctx context.Context, userID, fromCode, toCode string, asOf time.Time) (domain.RateResolution, error)

	// Resolve returns only the conversion factor.
	Resolve(ctx context.Context, userID, fromCode, toCode string, asOf time.Time) (decimal.Decimal, error)

	// Convert returns round(amount * factor, 2).
	Convert(ctx context.Context, userID string, amount decimal.Decimal, fromCode, toCode string, asOf time.Time) (decimal.Decimal, error)
}
