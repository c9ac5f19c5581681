package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

type settingsService struct {
	BaseService
	settingsRepo    portsrepo.UserSettingsRepositoryFacade
	currencySvc     portssvc.CurrencyReaderSvc
	fallbackDisplay string
}

// NewSettingsService creates the user settings service. fallbackDisplay is the
// display currency used when neither the request nor the user names one.
func NewSettingsService(settingsRepo portsrepo.UserSettingsRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc, fallbackDisplay string) portssvc.SettingsSvc {
	if fallbackDisplay = normalizeCurrencyCode(fallbackDisplay); fallbackDisplay == "" {
		fallbackDisplay = domain.FallbackDisplayCurrency
	}
	return &settingsService{
		settingsRepo:    settingsRepo,
		currencySvc:     currencySvc,
		fallbackDisplay: fallbackDisplay,
	}
}

var _ portssvc.SettingsSvc = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	code, err := s.settingsRepo.FindDefaultCurrencyCode(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load user settings")
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &domain.UserSettings{UserID: userID, DefaultCurrencyCode: code}, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID string, defaultCurrencyCode *string) (*domain.UserSettings, error) {
	var code *string
	if defaultCurrencyCode != nil {
		if normalized := normalizeCurrencyCode(*defaultCurrencyCode); normalized != "" {
			code = &normalized
		}
	}

	if code != nil {
		exists, err := s.currencySvc.CurrencyExists(ctx, *code)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewFieldError("defaultCurrencyCode", fmt.Sprintf("Currency '%s' not found.", *code))
		}
	}

	if err := s.settingsRepo.UpdateDefaultCurrencyCode(ctx, userID, code); err != nil {
		s.LogError(ctx, err, "Failed to update user settings")
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.LogInfo(ctx, "User settings updated", slog.Any("default_currency_code", code))
	return &domain.UserSettings{UserID: userID, DefaultCurrencyCode: code}, nil
}

func (s *settingsService) ResolveDisplayCurrency(ctx context.Context, userID, requested string) (domain.DisplayCurrency, error) {
	code := normalizeCurrencyCode(requested)

	if code != "" {
		exists, err := s.currencySvc.CurrencyExists(ctx, code)
		if err != nil {
			return domain.DisplayCurrency{}, err
		}
		if !exists {
			return domain.DisplayCurrency{}, apperrors.NewFieldError("currency", fmt.Sprintf("Currency '%s' not found.", code))
		}
	} else {
		code = s.fallbackDisplay
		userDefault, err := s.settingsRepo.FindDefaultCurrencyCode(ctx, userID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load default currency")
			return domain.DisplayCurrency{}, fmt.Errorf("failed to load default currency: %w", err)
		}
		if userDefault != nil && *userDefault != "" {
			code = normalizeCurrencyCode(*userDefault)
		}
	}

	symbol, err := s.currencySvc.GetCurrencySymbol(ctx, code)
	if err != nil {
		return domain.DisplayCurrency{}, err
	}
	return domain.DisplayCurrency{Code: code, Symbol: symbol}, nil
}
