// Package time contains calendar day helpers shared by the parser, the
// tally store and the command line tools
package time

import (
	"fmt"
	"time"
)

// DayLayout is the wire layout of a Day (ISO-8601 calendar date)
const DayLayout = "2006-01-02"

// Day is a civil calendar date with no time of day and no zone
// The zero value is not a valid day; Day is comparable and usable as a map key
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the UTC calendar date of t
func DayOf(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{Year: y, Month: m, Day: d}
}

// NewDay builds a Day, normalizing out of range values the way time.Date does
func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDay parses a YYYY-MM-DD string
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Start returns midnight UTC at the start of d
func (d Day) Start() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days (n may be negative)
func (d Day) AddDays(n int) Day {
	return NewDay(d.Year, d.Month, d.Day+n)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o
func (d Day) Compare(o Day) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Before reports whether d is strictly earlier than o
func (d Day) Before(o Day) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o
func (d Day) After(o Day) bool { return d.Compare(o) > 0 }

// IsZero reports whether d is the zero Day
func (d Day) IsZero() bool { return d == Day{} }

// String renders d as YYYY-MM-DD
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
