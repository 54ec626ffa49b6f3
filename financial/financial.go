// Package financial provides VAT calculations on top of the ledger's
// decimal amount conventions.
package financial

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/ledgerbook/numberutil"
)

var one = decimal.NewFromInt(1)

// VATOfPrice calculates the VAT amount for a price at the given rate.
// The rate must be a decimal percent in [0, 1]. If priceIncludesVAT is
// true, the price is treated as already containing the VAT amount.
func VATOfPrice(price, rate decimal.Decimal, priceIncludesVAT bool) (decimal.Decimal, error) {
	if !numberutil.IsDecimalPercent(rate) {
		return decimal.Decimal{}, fmt.Errorf("financial: VAT rate %s not in [0, 1]", rate)
	}

	if priceIncludesVAT {
		// price - price / (1 + rate)
		return price.Sub(price.Div(one.Add(rate))), nil
	}
	return price.Mul(rate), nil
}

// VATRateOfPrice calculates the VAT rate given a price and its VAT amount.
// If priceIncludesVAT is true, the price is treated as already containing
// the VAT amount.
func VATRateOfPrice(price, vat decimal.Decimal, priceIncludesVAT bool) (decimal.Decimal, error) {
	if priceIncludesVAT {
		base := price.Sub(vat)
		if base.IsZero() {
			return decimal.Decimal{}, fmt.Errorf("financial: price %s equals VAT, rate undefined", price)
		}
		return vat.Div(base), nil
	}

	if price.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("financial: zero price, rate undefined")
	}
	return vat.Div(price), nil
}

// PriceOfVAT calculates the price that produces the given VAT amount at the
// given rate. The rate must be a decimal percent in (0, 1]. If
// priceIncludesVAT is true, the returned price contains the VAT amount.
func PriceOfVAT(vat, rate decimal.Decimal, priceIncludesVAT bool) (decimal.Decimal, error) {
	if !numberutil.IsDecimalPercent(rate) || rate.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("financial: VAT rate %s not in (0, 1]", rate)
	}

	if priceIncludesVAT {
		return vat.Div(rate).Add(vat), nil
	}
	return vat.Div(rate), nil
}
