package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Zero is decimal zero
var Zero = decimal.Zero

// DefaultScale is used for codes that are not ISO 4217 currencies
const DefaultScale int32 = 2

// QuantityScale is the precision kept for quantities and unit prices
const QuantityScale int32 = 4

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// FromFloatPtr converts an optional float. Nil stays invalid.
func FromFloatPtr(v *float64) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(*v))
}

// ScaleFor returns the number of minor unit digits for a currency, taken
// from the CLDR standard rounding. Empty or unknown codes use DefaultScale.
func ScaleFor(code string) int32 {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return DefaultScale
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

// RoundCurrency rounds an amount to the minor unit of its currency
func RoundCurrency(d decimal.Decimal, code string) decimal.Decimal {
	return d.Round(ScaleFor(code))
}

// RoundQuantity rounds quantities and unit prices
func RoundQuantity(d decimal.Decimal) decimal.Decimal {
	return d.Round(QuantityScale)
}

// RoundPercent rounds a percentage to two places
func RoundPercent(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CalculatePercentage computes: amount * (percentage/100), rounded to the currency
func CalculatePercentage(amount, percentage decimal.Decimal, code string) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return RoundCurrency(amount.Mul(percentage).Div(hundred), code)
}
