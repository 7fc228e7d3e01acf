package model

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Date is a calendar day of a manifest (issue, loading, departure...). Only the day survives:
// the clock time and the zone of the source value are dropped, and the value is kept at UTC
// midnight. The zero Date is "unknown" and encodes as JSON null.
type Date struct {
	day time.Time
}

// NewDate truncates t to its calendar day in t's own location. A zero t gives the zero Date.
func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return Date{day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate reads a YYYY-MM-DD day. An empty string gives the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	day, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("date %q: %w", s, err)
	}
	return Date{day: day}, nil
}

func (d Date) Time() time.Time {
	return d.day
}

func (d Date) IsZero() bool {
	return d.day.IsZero()
}

func (d Date) String() string {
	if d.day.IsZero() {
		return ""
	}
	return d.day.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.day.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
