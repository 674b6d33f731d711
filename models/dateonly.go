package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// DateOnly wraps time.Time for DATE columns so we can control both
// JSON un/marshaling ("2006-01-02") and SQL driver encoding.
type DateOnly time.Time

// UnmarshalJSON parses "2006-01-02" and, for client convenience,
// full RFC3339 timestamps (the date part is kept, time discarded).
func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		*d = DateOnly(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("DateOnly.UnmarshalJSON: cannot parse %q: %w", s, err)
	}
	// keep the calendar day as written, whatever the offset
	*d = DateOnly(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateOnlyLayout))
}

// Value implements driver.Valuer so GORM/pgx can turn DateOnly
// into a SQL DATE parameter.
func (d DateOnly) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// Scan implements sql.Scanner so GORM can read DATE back into DateOnly.
func (d *DateOnly) Scan(src interface{}) error {
	if src == nil {
		*d = DateOnly(time.Time{})
		return nil
	}

	switch v := src.(type) {
	case time.Time:
		*d = DateOnly(v)
		return nil
	case []byte:
		t, err := time.Parse(dateOnlyLayout, string(v))
		if err != nil {
			return fmt.Errorf("DateOnly.Scan: parse %q: %w", string(v), err)
		}
		*d = DateOnly(t)
		return nil
	case string:
		t, err := time.Parse(dateOnlyLayout, v)
		if err != nil {
			return fmt.Errorf("DateOnly.Scan: parse %q: %w", v, err)
		}
		*d = DateOnly(t)
		return nil
	default:
		return fmt.Errorf("DateOnly.Scan: unsupported type %T", src)
	}
}

// Before reports whether d falls strictly before the day containing ref.
// Both sides are truncated to their calendar date, so "expired today"
// is false.
func (d DateOnly) Before(ref time.Time) bool {
	t := time.Time(d)
	y1, m1, d1 := t.Date()
	y2, m2, d2 := ref.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return a.Before(b)
}
