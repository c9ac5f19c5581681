package dto

// ResolveRateQuery is the query string of GET /exchange-rates/resolve.
// Date is optional and defaults to today.
type ResolveRateQuery struct {
	From string `form:"from" json:"from" binding:"required,currencycode"`
	To   string `form:"to" json:"to" binding:"required,currencycode"`
	Date string `form:"date" json:"date"`
}

// ConvertQuery is the query string of GET /exchange-rates/convert.
type ConvertQuery struct {
	Amount string `form:"amount" json:"amount" binding:"required"`
	From   string `form:"from" json:"from" binding:"required,currencycode"`
	To     string `form:"to" json:"to" binding:"required,currencycode"`
	Date   string `form:"date" json:"date"`
}

// DashboardQuery is the query string of GET /dashboard. Month and year
// default to the current month; currency defaults to the user's preference.
type DashboardQuery struct {
	Month    *int   `form:"month" json:"month"`
	Year     *int   `form:"year" json:"year"`
	Currency string `form:"currency" json:"currency" binding:"omitempty,currencycode"`
}
