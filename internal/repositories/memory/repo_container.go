package memory

import (
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// Repositories exposes the concrete in-memory stores so callers can seed them.
type Repositories struct {
	Currencies    *CurrencyRepository
	ExchangeRates *ExchangeRateRepository
	Expenses      *ExpenseRepository
	UserSettings  *UserSettingsRepository
}

// NewRepositories creates empty in-memory stores.
func NewRepositories() *Repositories {
	return &Repositories{
		Currencies:    NewCurrencyRepository(),
		ExchangeRates: NewExchangeRateRepository(),
		Expenses:      NewExpenseRepository(),
		UserSettings:  NewUserSettingsRepository(),
	}
}

// Provider returns the stores behind the repository interfaces.
func (r *Repositories) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     r.Currencies,
		ExchangeRateRepo: r.ExchangeRates,
		ExpenseRepo:      r.Expenses,
		UserSettingsRepo: r.UserSettings,
	}
}

// NewRepositoryProvider creates empty in-memory stores behind the repository interfaces.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return NewRepositories().Provider()
}
