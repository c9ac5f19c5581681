package services

import (
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The currency catalog is shared by every service that validates codes.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.RateResolver = NewRateResolver(repos.ExchangeRateRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)
	container.Settings = NewSettingsService(repos.UserSettingsRepo, container.Currency, cfg.DefaultDisplayCurrency)
	container.Dashboard = NewDashboardService(
		repos.ExpenseRepo,
		container.RateResolver,
		WithConversionWorkers(cfg.DashboardConversionWorkers),
	)

	return container
}
