package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of minor-unit digits kept for every stored amount.
const Scale int32 = 2

// Limit bounds every stored amount from above: numeric(14,2) holds values
// below 10^12.
var Limit = decimal.New(1, 12)

var hundred = decimal.NewFromInt(100)

// Parse reads a non-negative amount such as "12.50" or "1,200".
func Parse(s string) (decimal.Decimal, bool) {
	clean := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if clean == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(clean)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// Storable reports whether d, once rounded to Scale, is below Limit.
func Storable(d decimal.Decimal) bool {
	return Round(d).LessThan(Limit)
}

func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// ApplyPercentOff returns price × (1 − percent/100) rounded to Scale.
func ApplyPercentOff(price, percent decimal.Decimal) decimal.Decimal {
	return Round(price.Mul(hundred.Sub(percent)).Div(hundred))
}

// ValidPercent reports whether p lies in [0, 100].
func ValidPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}
