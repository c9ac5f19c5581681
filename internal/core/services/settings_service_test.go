package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockUserSettingsRepository
	mockCurrencySvc  *MockCurrencyService
	service          portssvc.SettingsSvc
	ctx              context.Context
	userID           string
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockUserSettingsRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewSettingsService(suite.mockSettingsRepo, suite.mockCurrencySvc, "")
	suite.ctx = context.Background()
	suite.userID = "user-1"
}

func (suite *SettingsServiceTestSuite) TestResolveDisplayCurrency_RequestedWins() {
	suite.mockCurrencySvc.On("CurrencyExists", suite.ctx, "USD").Return(true, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencySymbol", suite.ctx, "USD").Return("$", nil).Once()

	display, err := suite.service.ResolveDisplayCurrency(suite.ctx, suite.userID, " usd ")

	suite.Require().NoError(err)
	suite.Equal(domain.DisplayCurrency{Code: "USD", Symbol: "$"}, display)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "FindDefaultCurrencyCode", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestResolveDisplayCurrency_UnknownRequested() {
	suite.mockCurrencySvc.On("CurrencyExists", suite.ctx, "XYZ").Return(false, nil).Once()

	_, err := suite.service.ResolveDisplayCurrency(suite.ctx, suite.userID, "XYZ")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	verrs, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Equal([]string{"Currency 'XYZ' not found."}, verrs["currency"])
}

func (suite *SettingsServiceTestSuite) TestResolveDisplayCurrency_UserDefault() {
	suite.mockSettingsRepo.On("FindDefaultCurrencyCode", suite.ctx, suite.userID).Return(strPtr("GBP"), nil).Once()
	suite.mockCurrencySvc.On("GetCurrencySymbol", suite.ctx, "GBP").Return("£", nil).Once()

	display, err := suite.service.ResolveDisplayCurrency(suite.ctx, suite.userID, "")

	suite.Require().NoError(err)
	suite.Equal("GBP", display.Code)
	suite.Equal("£", display.Symbol)
}

func (suite *SettingsServiceTestSuite) TestResolveDisplayCurrency_FallsBackToEUR() {
	suite.mockSettingsRepo.On("FindDefaultCurrencyCode", suite.ctx, suite.userID).Return(nil, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencySymbol", suite.ctx, "EUR").Return("€", nil).Once()

	display, err := suite.service.ResolveDisplayCurrency(suite.ctx, suite.userID, "")

	suite.Require().NoError(err)
	suite.Equal(domain.DisplayCurrency{Code: "EUR", Symbol: "€"}, display)
}

func (suite *SettingsServiceTestSuite) TestResolveDisplayCurrency_SettingsFailure() {
	suite.mockSettingsRepo.On("FindDefaultCurrencyCode", suite.ctx, suite.userID).Return(nil, errors.New("db down")).Once()

	_, err := suite.service.ResolveDisplayCurrency(suite.ctx, suite.userID, "")

	suite.Error(err)
	suite.NotErrorIs(err, apperrors.ErrValidation)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_SetsKnownCurrency() {
	suite.mockCurrencySvc.On("CurrencyExists", suite.ctx, "JPY").Return(true, nil).Once()
	suite.mockSettingsRepo.On("UpdateDefaultCurrencyCode", suite.ctx, suite.userID, strPtr("JPY")).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(suite.ctx, suite.userID, strPtr("jpy"))

	suite.Require().NoError(err)
	suite.Require().NotNil(settings.DefaultCurrencyCode)
	suite.Equal("JPY", *settings.DefaultCurrencyCode)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_EmptyClears() {
	suite.mockSettingsRepo.On("UpdateDefaultCurrencyCode", suite.ctx, suite.userID, (*string)(nil)).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(suite.ctx, suite.userID, strPtr(""))

	suite.Require().NoError(err)
	suite.Nil(settings.DefaultCurrencyCode)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "CurrencyExists", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_UnknownCurrency() {
	suite.mockCurrencySvc.On("CurrencyExists", suite.ctx, "ABC").Return(false, nil).Once()

	_, err := suite.service.UpdateSettings(suite.ctx, suite.userID, strPtr("ABC"))

	verrs, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Contains(verrs, "defaultCurrencyCode")
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "UpdateDefaultCurrencyCode", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestGetSettings() {
	suite.mockSettingsRepo.On("FindDefaultCurrencyCode", suite.ctx, suite.userID).Return(strPtr("USD"), nil).Once()

	settings, err := suite.service.GetSettings(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.userID, settings.UserID)
	suite.Equal("USD", *settings.DefaultCurrencyCode)
}

func TestSettingsService(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
