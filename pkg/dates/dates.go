// Package dates provides the calendar-date type used across the API.
// Dates carry no time or zone component and marshal as MM/DD/YYYY.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// WireFormat is the JSON representation of a Date.
const WireFormat = "01/02/2006"

// Date is a calendar date (no time-of-day, no zone).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the Date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime truncates t to its calendar date in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	return FromTime(time.Now().UTC())
}

// Parse parses a MM/DD/YYYY string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(WireFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: expected MM/DD/YYYY", s)
	}
	return FromTime(t), nil
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(WireFormat)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// YearsUntil returns the number of whole years from d to ref: the year
// difference, minus one when ref's month/day falls before d's. Matches
// calendar-period semantics, so anniversaries count exactly on the day.
func (d Date) YearsUntil(ref Date) int {
	years := ref.Year - d.Year
	if ref.Month < d.Month || (ref.Month == d.Month && ref.Day < d.Day) {
		years--
	}
	return years
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
