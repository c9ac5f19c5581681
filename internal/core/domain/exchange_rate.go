package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a user-defined conversion rate for a currency pair,
// valid from EffectiveDate until a later-dated record for the same pair supersedes it.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	UserID           string          `json:"userID"` // owner, rates are never shared
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	EffectiveDate    time.Time       `json:"effectiveDate"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ResolutionKind tells which strategy produced a conversion factor.
type ResolutionKind string

const (
	// ResolutionIdentity is a 1:1 factor, either for same-currency pairs or
	// because no rate data exists in either direction.
	ResolutionIdentity ResolutionKind = "IDENTITY"
	// ResolutionDirect uses a stored from->to rate as is.
	ResolutionDirect ResolutionKind = "DIRECT"
	// ResolutionInverted uses the reciprocal of a stored to->from rate.
	ResolutionInverted ResolutionKind = "INVERTED"
)

// RateResolution is the outcome of resolving a (from, to, asOf) triple.
type RateResolution struct {
	Kind   ResolutionKind
	Factor decimal.Decimal
	// Source is the stored record the factor came from; nil for identity.
	Source *ExchangeRate
}

// IdentityResolution returns the 1:1 resolution.
func IdentityResolution() RateResolution {
	return RateResolution{Kind: ResolutionIdentity, Factor: decimal.NewFromInt(1)}
}

// DirectResolution wraps a stored rate that matches the requested pair.
func DirectResolution(rate ExchangeRate) RateResolution {
	return RateResolution{Kind: ResolutionDirect, Factor: rate.Rate, Source: &rate}
}

// InvertedResolution wraps a stored reverse-pair rate, using round(1/rate, RateScale).
// The caller guarantees rate.Rate is non-zero.
func InvertedResolution(rate ExchangeRate) RateResolution {
	factor := decimal.NewFromInt(1).DivRound(rate.Rate, RateScale)
	return RateResolution{Kind: ResolutionInverted, Factor: factor, Source: &rate}
}
