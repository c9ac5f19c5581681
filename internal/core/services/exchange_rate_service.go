package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const duplicateRateMessage = "A rate for this currency pair and date already exists."

type exchangeRateService struct {
	BaseService
	rateRepo    portsrepo.ExchangeRateRepositoryFacade
	currencySvc portssvc.CurrencyReaderSvc
	now         func() time.Time
}

// NewExchangeRateService creates the service that manages user-defined rates.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:    rateRepo,
		currencySvc: currencySvc,
		now:         time.Now,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) ListExchangeRates(ctx context.Context, userID string) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRatesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, userID string, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	from := normalizeCurrencyCode(req.FromCurrencyCode)
	to := normalizeCurrencyCode(req.ToCurrencyCode)
	rateValue := domain.RoundRate(req.Rate)
	effectiveDate := domain.DateOnly(req.EffectiveDate.Time)

	verrs := apperrors.ValidationErrors{}
	if from == "" {
		verrs.Add("fromCurrencyCode", "From currency is required.")
	}
	if to == "" {
		verrs.Add("toCurrencyCode", "To currency is required.")
	}
	if from != "" && from == to {
		verrs.Add("toCurrencyCode", "From and To currencies must be different.")
	}
	validateRateFields(verrs, rateValue, req.EffectiveDate)
	if verrs.HasErrors() {
		return nil, verrs
	}

	if err := s.requireCurrency(ctx, verrs, "fromCurrencyCode", from); err != nil {
		return nil, err
	}
	if err := s.requireCurrency(ctx, verrs, "toCurrencyCode", to); err != nil {
		return nil, err
	}
	if verrs.HasErrors() {
		return nil, verrs
	}

	if err := s.checkDuplicate(ctx, userID, from, to, effectiveDate, nil); err != nil {
		return nil, err
	}

	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		UserID:           userID,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             rateValue,
		EffectiveDate:    effectiveDate,
		CreatedAt:        s.now().UTC(),
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("effectiveDate", duplicateRateMessage)
		}
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("from", from), slog.String("to", to))
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate created", slog.String("exchange_rate_id", rate.ExchangeRateID))
	return &rate, nil
}

func (s *exchangeRateService) UpdateExchangeRate(ctx context.Context, userID, rateID string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	existing, err := s.rateRepo.FindExchangeRateByID(ctx, userID, rateID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load exchange rate for update", slog.String("exchange_rate_id", rateID))
		}
		return nil, err
	}

	rateValue := domain.RoundRate(req.Rate)
	verrs := apperrors.ValidationErrors{}
	validateRateFields(verrs, rateValue, req.EffectiveDate)
	if verrs.HasErrors() {
		return nil, verrs
	}

	effectiveDate := domain.DateOnly(req.EffectiveDate.Time)
	if err := s.checkDuplicate(ctx, userID, existing.FromCurrencyCode, existing.ToCurrencyCode, effectiveDate, &existing.ExchangeRateID); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Rate = rateValue
	updated.EffectiveDate = effectiveDate

	if err := s.rateRepo.UpdateExchangeRate(ctx, updated); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("effectiveDate", duplicateRateMessage)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update exchange rate", slog.String("exchange_rate_id", rateID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate updated", slog.String("exchange_rate_id", rateID))
	return &updated, nil
}

func (s *exchangeRateService) DeleteExchangeRate(ctx context.Context, userID, rateID string) error {
	if err := s.rateRepo.DeleteExchangeRate(ctx, userID, rateID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete exchange rate", slog.String("exchange_rate_id", rateID))
		}
		return err
	}
	s.LogInfo(ctx, "Exchange rate deleted", slog.String("exchange_rate_id", rateID))
	return nil
}

func validateRateFields(verrs apperrors.ValidationErrors, rate decimal.Decimal, effectiveDate dto.Date) {
	if !rate.IsPositive() {
		verrs.Add("rate", "Rate must be greater than zero.")
	}
	if effectiveDate.IsZero() {
		verrs.Add("effectiveDate", "Effective date is required.")
	}
}

// requireCurrency records a field error when code is not in the catalog.
// Only lookup failures are returned as errors.
func (s *exchangeRateService) requireCurrency(ctx context.Context, verrs apperrors.ValidationErrors, field, code string) error {
	exists, err := s.currencySvc.CurrencyExists(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		verrs.Add(field, fmt.Sprintf("Currency '%s' not found.", code))
	}
	return nil
}

func (s *exchangeRateService) checkDuplicate(ctx context.Context, userID, from, to string, effectiveDate time.Time, excludeID *string) error {
	dup, err := s.rateRepo.ExistsDuplicate(ctx, userID, from, to, effectiveDate, excludeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for duplicate exchange rate")
		return fmt.Errorf("failed to check for duplicate exchange rate: %w", err)
	}
	if dup {
		return apperrors.NewFieldError("effectiveDate", duplicateRateMessage)
	}
	return nil
}
