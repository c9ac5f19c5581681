package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// ExchangeRateRepository keeps user-defined rates in memory. It enforces the
// same (user, from, to, effective date) uniqueness as the database index.
type ExchangeRateRepository struct {
	mu    sync.RWMutex
	rates map[string]domain.ExchangeRate
}

// NewExchangeRateRepository creates an empty rate store.
func NewExchangeRateRepository() *ExchangeRateRepository {
	return &ExchangeRateRepository{rates: make(map[string]domain.ExchangeRate)}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*ExchangeRateRepository)(nil)

func (r *ExchangeRateRepository) FindRateAsOf(ctx context.Context, userID, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	asOf = domain.DateOnly(asOf)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *domain.ExchangeRate
	for id := range r.rates {
		rate := r.rates[id]
		if rate.UserID != userID || rate.FromCurrencyCode != fromCode || rate.ToCurrencyCode != toCode {
			continue
		}
		if rate.EffectiveDate.After(asOf) {
			continue
		}
		if best == nil || rate.EffectiveDate.After(best.EffectiveDate) ||
			(rate.EffectiveDate.Equal(best.EffectiveDate) && rate.ExchangeRateID < best.ExchangeRateID) {
			best = &rate
		}
	}
	if best == nil {
		return nil, apperrors.ErrNotFound
	}
	return best, nil
}

func (r *ExchangeRateRepository) FindExchangeRateByID(ctx context.Context, userID, rateID string) (*domain.ExchangeRate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rate, ok := r.rates[rateID]
	if !ok || rate.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return &rate, nil
}

func (r *ExchangeRateRepository) ListExchangeRatesByUser(ctx context.Context, userID string) ([]domain.ExchangeRate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rates := make([]domain.ExchangeRate, 0)
	for _, rate := range r.rates {
		if rate.UserID == userID {
			rates = append(rates, rate)
		}
	}
	sort.Slice(rates, func(i, j int) bool {
		a, b := rates[i], rates[j]
		if !a.EffectiveDate.Equal(b.EffectiveDate) {
			return a.EffectiveDate.After(b.EffectiveDate)
		}
		if a.FromCurrencyCode != b.FromCurrencyCode {
			return a.FromCurrencyCode < b.FromCurrencyCode
		}
		if a.ToCurrencyCode != b.ToCurrencyCode {
			return a.ToCurrencyCode < b.ToCurrencyCode
		}
		return a.ExchangeRateID < b.ExchangeRateID
	})
	return rates, nil
}

func (r *ExchangeRateRepository) ExistsDuplicate(ctx context.Context, userID, fromCode, toCode string, effectiveDate time.Time, excludeID *string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hasDuplicateLocked(userID, fromCode, toCode, domain.DateOnly(effectiveDate), excludeID), nil
}

func (r *ExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rate.EffectiveDate = domain.DateOnly(rate.EffectiveDate)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rates[rate.ExchangeRateID]; exists {
		return apperrors.ErrDuplicate
	}
	if r.hasDuplicateLocked(rate.UserID, rate.FromCurrencyCode, rate.ToCurrencyCode, rate.EffectiveDate, nil) {
		return apperrors.ErrDuplicate
	}
	r.rates[rate.ExchangeRateID] = rate
	return nil
}

func (r *ExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	effectiveDate := domain.DateOnly(rate.EffectiveDate)

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rates[rate.ExchangeRateID]
	if !ok || existing.UserID != rate.UserID {
		return apperrors.ErrNotFound
	}
	if r.hasDuplicateLocked(existing.UserID, existing.FromCurrencyCode, existing.ToCurrencyCode, effectiveDate, &existing.ExchangeRateID) {
		return apperrors.ErrDuplicate
	}

	// Pair and owner are immutable.
	existing.Rate = rate.Rate
	existing.EffectiveDate = effectiveDate
	r.rates[existing.ExchangeRateID] = existing
	return nil
}

func (r *ExchangeRateRepository) DeleteExchangeRate(ctx context.Context, userID, rateID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rates[rateID]
	if !ok || existing.UserID != userID {
		return apperrors.ErrNotFound
	}
	delete(r.rates, rateID)
	return nil
}

func (r *ExchangeRateRepository) hasDuplicateLocked(userID, fromCode, toCode string, effectiveDate time.Time, excludeID *string) bool {
	for id, rate := range r.rates {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if rate.UserID == userID && rate.FromCurrencyCode == fromCode && rate.ToCurrencyCode == toCode &&
			rate.EffectiveDate.Equal(effectiveDate) {
			return true
		}
	}
	return false
}
