package domain

// UserSettings holds the per-user preferences the currency features need.
type UserSettings struct {
	UserID              string  `json:"userID"`
	DefaultCurrencyCode *string `json:"defaultCurrencyCode,omitempty"`
}

// DisplayCurrency is the currency a dashboard is normalised into, with its symbol.
type DisplayCurrency struct {
	Code   string
	Symbol string
}
