package dto

import "github.com/SscSPs/expense_tracker/internal/core/domain"

// UserSettingsRequest updates the caller's settings. A null or absent
// defaultCurrencyCode clears the preference.
type UserSettingsRequest struct {
	DefaultCurrencyCode *string `json:"defaultCurrencyCode" binding:"omitempty,currencycode"`
}

// UserSettingsResponse is returned by the settings endpoints.
type UserSettingsResponse struct {
	DefaultCurrencyCode *string `json:"defaultCurrencyCode"`
}

// ToUserSettingsResponse converts domain.UserSettings to its response DTO.
func ToUserSettingsResponse(s *domain.UserSettings) UserSettingsResponse {
	return UserSettingsResponse{DefaultCurrencyCode: s.DefaultCurrencyCode}
}
