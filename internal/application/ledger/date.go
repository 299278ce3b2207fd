package ledger

import (
	"fmt"
	"time"
)

// dateLayout is the wire form for business dates: settlement, shipment and
// document dates travel as plain calendar days, not timestamps.
const dateLayout = "2006-01-02"

// Date is a calendar day. It marshals as "2006-01-02" and accepts either
// that form or a full RFC3339 timestamp on input; timestamps are truncated
// to their calendar day.
type Date struct {
	time.Time
}

// NewDate wraps a time.Time as a Date
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// NewDatePtr wraps an optional time.Time as an optional Date
func NewDatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a %q string", dateLayout)
	}
	s = s[1 : len(s)-1]

	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected %q or RFC3339", s, dateLayout)
	}
	d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}
