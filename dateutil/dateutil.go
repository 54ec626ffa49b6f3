// Package dateutil provides a calendar date without a time-of-day component,
// plus the parsing, formatting and range checks the ledger needs. Dates are
// plain values and compare by field, so a Date can be used as a map key.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date. The zero value is "no date" and is used as the
// open end of an unbounded range.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Parse parses a "YYYY-MM-DD" string into a Date. A leading zero on the
// month or day is optional, so "2012-3-9" parses the same as "2012-03-09".
func Parse(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("dateutil: parse %q: expected YYYY-MM-DD", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return Date{}, fmt.Errorf("dateutil: parse %q: expected YYYY-MM-DD", s)
		}
		nums[i] = n
	}

	d := Date{Year: nums[0], Month: time.Month(nums[1]), Day: nums[2]}

	// Reject dates that time.Date would silently normalize, e.g. 2012-02-30.
	t := d.Time()
	if t.Year() != d.Year || t.Month() != d.Month || t.Day() != d.Day {
		return Date{}, fmt.Errorf("dateutil: parse %q: no such calendar date", s)
	}
	return d, nil
}

// MustParse is like Parse but panics on error. Use for hardcoded dates.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime truncates a time.Time to its calendar date.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats the date as "YYYY-MM-DD". The zero value formats as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or 1 ordering d against other chronologically.
func (d Date) Compare(other Date) int {
	return d.Time().Compare(other.Time())
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool { return d == other }

// AddDays returns the date n days after d. Negative n goes backwards.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// InRange reports whether d lies in the inclusive range [from, to].
// A zero-valued bound leaves that side of the range unbounded.
func InRange(d, from, to Date) bool {
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}
