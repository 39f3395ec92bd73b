package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPeriod is returned when a pay period string is not a valid YYYY-MM value.
var ErrInvalidPeriod = errors.New("invalid pay period")

// Period is a calendar month used as a payroll pay period.
// It is stored and serialised as "YYYY-MM".
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod returns the period for year and month, validating both.
func NewPeriod(year int, month time.Month) (Period, error) {
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year must be 0001-9999, got %d", ErrInvalidPeriod, year)
	}
	if month < time.January || month > time.December {
		return Period{}, fmt.Errorf("%w: month must be 01-12, got %02d", ErrInvalidPeriod, int(month))
	}
	return Period{Year: year, Month: month}, nil
}

// ParsePeriod parses s as "YYYY-MM".
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	y, m, ok := strings.Cut(s, "-")
	if !ok || len(y) != 4 || len(m) != 2 {
		return Period{}, fmt.Errorf("%w: %q is not in YYYY-MM format", ErrInvalidPeriod, s)
	}
	year, err := strconv.Atoi(y)
	if err != nil || !allDigits(y) {
		return Period{}, fmt.Errorf("%w: %q has a non-numeric year", ErrInvalidPeriod, s)
	}
	month, err := strconv.Atoi(m)
	if err != nil || !allDigits(m) {
		return Period{}, fmt.Errorf("%w: %q has a non-numeric month", ErrInvalidPeriod, s)
	}
	return NewPeriod(year, time.Month(month))
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// PeriodOf returns the period containing t, in t's location.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// IsZero reports whether p is the zero Period.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Start is midnight UTC on the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is midnight UTC on the first day of the following month (exclusive).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(p.Start()) && t.Before(p.End())
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) MarshalJSON() ([]byte, error) {
	if p.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(p.String())
}

func (p *Period) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Period{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: expected a \"YYYY-MM\" string", ErrInvalidPeriod)
	}
	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer.
func (p Period) Value() (driver.Value, error) {
	if p.IsZero() {
		return nil, nil
	}
	return p.String(), nil
}

// Scan implements sql.Scanner.
func (p *Period) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Period{}
		return nil
	case string:
		parsed, err := ParsePeriod(v)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case []byte:
		return p.Scan(string(v))
	default:
		return fmt.Errorf("models: cannot scan %T into Period", src)
	}
}
