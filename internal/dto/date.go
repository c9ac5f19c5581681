package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar day on the wire. It accepts "2006-01-02" or a full
// RFC 3339 timestamp, keeps only the day, and always renders as "2006-01-02".
type Date struct {
	time.Time
}

// NewDate wraps t, dropping its time of day.
func NewDate(t time.Time) Date {
	return Date{Time: domain.DateOnly(t)}
}

// ParseDate parses a query or body value in either accepted layout.
func ParseDate(value string) (Date, error) {
	for _, layout := range []string{DateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, value); err == nil {
			return NewDate(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if raw == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}
