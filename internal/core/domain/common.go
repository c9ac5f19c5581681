package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MoneyScale is the number of fractional digits kept for monetary amounts.
	MoneyScale int32 = 2
	// RateScale is the number of fractional digits kept for exchange rates.
	RateScale int32 = 6
)

// RoundMoney rounds an amount to MoneyScale digits, half away from zero.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}

// RoundRate rounds a rate to RateScale digits, half away from zero.
func RoundRate(rate decimal.Decimal) decimal.Decimal {
	return rate.Round(RateScale)
}

// DateOnly drops the time-of-day component, keeping the calendar day as stored.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
