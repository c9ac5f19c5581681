package repositories

import (
	"context"
)

// UserSettingsReader defines read operations for user settings
type UserSettingsReader interface {
	// FindDefaultCurrencyCode returns the user's default currency, or nil when unset.
	FindDefaultCurrencyCode(ctx context.Context, userID string) (*string, error)
}

// UserSettingsWriter defines write operations for user settings
type UserSettingsWriter interface {
	// UpdateDefaultCurrencyCode sets (or clears, with nil) the user's default currency.
	UpdateDefaultCurrencyCode(ctx context.Context, userID string, currencyCode *string) error
}

// UserSettingsRepositoryFacade combines all user settings repository interfaces
type UserSettingsRepositoryFacade interface {
	UserSettingsReader
	UserSettingsWriter
}
