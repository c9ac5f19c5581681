package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// CurrencyRepository is an in-memory currency catalog.
type CurrencyRepository struct {
	mu         sync.RWMutex
	currencies map[string]domain.Currency
}

// NewCurrencyRepository creates an empty catalog.
func NewCurrencyRepository() *CurrencyRepository {
	return &CurrencyRepository{currencies: make(map[string]domain.Currency)}
}

var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

func (r *CurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	currency, ok := r.currencies[currencyCode]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &currency, nil
}

func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	currencies := make([]domain.Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		currencies = append(currencies, c)
	}
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].CurrencyCode < currencies[j].CurrencyCode })
	return currencies, nil
}

func (r *CurrencyRepository) SaveCurrencies(ctx context.Context, currencies []domain.Currency) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range currencies {
		r.currencies[c.CurrencyCode] = c
	}
	return nil
}
