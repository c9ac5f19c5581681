package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	RateResolver RateResolverSvc
	Dashboard    DashboardSvc
	Settings     SettingsSvc
}

// StaticDataService defines the interface for managing static data like currencies.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
