package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates the currency catalog service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := normalizeCurrencyCode(currencyCode)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find currency by code", slog.String("currency_code", code))
		}
		return nil, err
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) CurrencyExists(ctx context.Context, currencyCode string) (bool, error) {
	code := normalizeCurrencyCode(currencyCode)
	if code == "" {
		return false, nil
	}
	_, err := s.GetCurrencyByCode(ctx, code)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check currency %s: %w", code, err)
}

func (s *currencyService) GetCurrencySymbol(ctx context.Context, currencyCode string) (string, error) {
	code := normalizeCurrencyCode(currencyCode)
	currency, err := s.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return code, nil
		}
		return "", fmt.Errorf("failed to look up symbol for %s: %w", code, err)
	}
	if currency.Symbol == "" {
		return code, nil
	}
	return currency.Symbol, nil
}

// InitializeStaticData seeds the reference currencies. It is idempotent.
func (s *currencyService) InitializeStaticData(ctx context.Context) error {
	if err := s.currencyRepo.SaveCurrencies(ctx, domain.DefaultCurrencies); err != nil {
		s.LogError(ctx, err, "Failed to seed currencies")
		return fmt.Errorf("failed to seed currencies: %w", err)
	}
	s.LogInfo(ctx, "Currency catalog seeded", slog.Int("count", len(domain.DefaultCurrencies)))
	return nil
}
