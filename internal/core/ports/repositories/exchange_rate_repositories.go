package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data.
// Every lookup is scoped to the owning user; a rate owned by someone else is
// reported exactly like a missing one.
type ExchangeRateReader interface {
	// FindRateAsOf returns the rate for the exact (user, from, to) pair with the
	// largest effective date that is on or before asOf. Ties on the date are
	// broken by the lowest ID. Returns apperrors.ErrNotFound if none applies.
	FindRateAsOf(ctx context.Context, userID, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error)

	// FindExchangeRateByID retrieves one of the user's rates by ID.
	FindExchangeRateByID(ctx context.Context, userID, rateID string) (*domain.ExchangeRate, error)

	// ListExchangeRatesByUser lists the user's rates ordered by effective date
	// descending, then from code, then to code.
	ListExchangeRatesByUser(ctx context.Context, userID string) ([]domain.ExchangeRate, error)

	// ExistsDuplicate reports whether the user already has a rate for the pair
	// on effectiveDate, ignoring the record with excludeID when set.
	ExistsDuplicate(ctx context.Context, userID, fromCode, toCode string, effectiveDate time.Time, excludeID *string) (bool, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate.
	// Returns apperrors.ErrDuplicate if the (user, pair, date) key is taken.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// UpdateExchangeRate changes the rate value and effective date of an existing record.
	UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// DeleteExchangeRate removes one of the user's rates.
	DeleteExchangeRate(ctx context.Context, userID, rateID string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
