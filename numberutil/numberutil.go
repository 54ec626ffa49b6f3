// Package numberutil provides the decimal rounding and comparison rules used
// for monetary amounts throughout the ledger.
package numberutil

import "github.com/shopspring/decimal"

// DefaultPrecision is the number of decimal places amounts are rounded to
// unless a book is configured otherwise.
const DefaultPrecision int32 = 2

// Epsilon is the tolerance used when comparing summed amounts. Sums of
// exact decimals never need it, but the comparison contract keeps it so
// callers mixing converted floating-point input get stable answers.
var Epsilon = decimal.New(1, -6) // 1e-6

// Round rounds d to the given number of decimal places, half away from zero.
func Round(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// Equal reports whether a and b are equal within Epsilon.
func Equal(a, b decimal.Decimal) bool {
	return EqualWithin(a, b, Epsilon)
}

// EqualWithin reports whether |a-b| <= eps.
func EqualWithin(a, b, eps decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(eps)
}

// IsDecimalPercent reports whether d is a rate in the inclusive range 0 to 1.
func IsDecimalPercent(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}
