package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// SettingsSvc manages per-user preferences.
type SettingsSvc interface {
	GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error)

	// UpdateSettings sets or clears the default currency. A non-nil code must exist in the catalog.
	UpdateSettings(ctx context.Context, userID string, defaultCurrencyCode *string) (*domain.UserSettings, error)

	// ResolveDisplayCurrency picks the dashboard currency: the requested code if
	// given, else the user's default, else the configured fallback.
	ResolveDisplayCurrency(ctx context.Context, userID, requested string) (domain.DisplayCurrency, error)
}
