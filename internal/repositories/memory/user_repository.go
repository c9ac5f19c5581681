package memory

import (
	"context"
	"sync"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// UserSettingsRepository keeps per-user default currencies in memory.
type UserSettingsRepository struct {
	mu       sync.RWMutex
	defaults map[string]string
}

// NewUserSettingsRepository creates an empty settings store.
func NewUserSettingsRepository() *UserSettingsRepository {
	return &UserSettingsRepository{defaults: make(map[string]string)}
}

var _ portsrepo.UserSettingsRepositoryFacade = (*UserSettingsRepository)(nil)

func (r *UserSettingsRepository) FindDefaultCurrencyCode(ctx context.Context, userID string) (*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	code, ok := r.defaults[userID]
	if !ok {
		return nil, nil
	}
	return &code, nil
}

func (r *UserSettingsRepository) UpdateDefaultCurrencyCode(ctx context.Context, userID string, currencyCode *string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if currencyCode == nil {
		delete(r.defaults, userID)
		return nil
	}
	r.defaults[userID] = *currencyCode
	return nil
}
