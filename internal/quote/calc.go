package quote

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Totals holds the derived monetary amounts of a quote. Amounts are
// exact decimals; use Money to format them for display.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Calculate derives subtotal, tax, and total from an ordered list of
// lines and the tax settings. It is a pure function of its inputs:
//
//	subtotal = Σ quantity × unit price
//	tax      = subtotal × rate/100 when applied, else 0
//	total    = subtotal + tax
func Calculate(lines []Line, applyTax bool, taxRate float64) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(LineTotal(l))
	}

	tax := decimal.Zero
	if applyTax {
		tax = subtotal.Mul(decimal.NewFromFloat(taxRate)).Div(decimal.NewFromInt(100))
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// LineTotal returns quantity × unit price for a single line.
func LineTotal(l Line) decimal.Decimal {
	return decimal.NewFromFloat(l.Quantity).Mul(decimal.NewFromFloat(l.UnitPrice))
}

// Money formats an amount with two decimals and the euro sign.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}

// ParseAmount converts free-text numeric input to a float. A comma
// decimal separator is accepted; anything unparseable coerces to 0
// rather than failing, matching how the quote form treats its
// quantity and price inputs.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
