package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
// Rate and EffectiveDate are checked by the service so their messages match
// the other field errors.
type CreateExchangeRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,currencycode"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,currencycode"`
	Rate             decimal.Decimal `json:"rate"`
	EffectiveDate    Date            `json:"effectiveDate"`
}

// UpdateExchangeRateRequest carries the mutable fields of an exchange rate.
type UpdateExchangeRateRequest struct {
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate Date            `json:"effectiveDate"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	EffectiveDate    Date            `json:"effectiveDate"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		EffectiveDate:    NewDate(rate.EffectiveDate),
		CreatedAt:        rate.CreatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// RateResolutionResponse describes which rate applies to a pair on a date.
type RateResolutionResponse struct {
	FromCurrencyCode string                `json:"fromCurrencyCode"`
	ToCurrencyCode   string                `json:"toCurrencyCode"`
	AsOf             Date                  `json:"asOf"`
	Kind             domain.ResolutionKind `json:"kind"`
	Factor           decimal.Decimal       `json:"factor"`
	Source           *ExchangeRateResponse `json:"source,omitempty"`
}

// ToRateResolutionResponse converts a domain.RateResolution for the given request.
func ToRateResolutionResponse(from, to string, asOf time.Time, res domain.RateResolution) RateResolutionResponse {
	resp := RateResolutionResponse{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		AsOf:             NewDate(asOf),
		Kind:             res.Kind,
		Factor:           res.Factor,
	}
	if res.Source != nil {
		src := ToExchangeRateResponse(res.Source)
		resp.Source = &src
	}
	return resp
}

// ConversionResponse is the result of converting an amount between currencies.
type ConversionResponse struct {
	Amount           decimal.Decimal       `json:"amount"`
	FromCurrencyCode string                `json:"fromCurrencyCode"`
	ConvertedAmount  decimal.Decimal       `json:"convertedAmount"`
	ToCurrencyCode   string                `json:"toCurrencyCode"`
	AsOf             Date                  `json:"asOf"`
	Kind             domain.ResolutionKind `json:"kind"`
	Factor           decimal.Decimal       `json:"factor"`
}
