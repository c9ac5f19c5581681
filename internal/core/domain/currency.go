package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
}

// FallbackDisplayCurrency is used when neither the request nor the user names a display currency.
const FallbackDisplayCurrency = "EUR"

// DefaultCurrencies is the reference data seeded at startup.
var DefaultCurrencies = []Currency{
	{CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{CurrencyCode: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
	{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound"},
	{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{CurrencyCode: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
}
