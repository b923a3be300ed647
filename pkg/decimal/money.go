package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount. Calculations keep full precision; Money
// only rounds when it is displayed.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// WholeUnits rounds to the nearest whole currency unit
func (m Money) WholeUnits() Money {
	return Money{m.Decimal.Round(0)}
}

// CeilUnits rounds up to the next whole currency unit
func (m Money) CeilUnits() Money {
	return Money{m.Decimal.Ceil()}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// FloorZero returns zero for negative amounts
func (m Money) FloorZero() Money {
	if m.Decimal.IsNegative() {
		return Zero()
	}
	return m
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two decimals and no grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders whole dollars with thousands separators, e.g. $1,234,567
func (m Money) Format() string {
	return formatGrouped(m.Decimal.Round(0).StringFixed(0))
}

// FormatCents renders dollars and cents with thousands separators, e.g. $1,234.56
func (m Money) FormatCents() string {
	return formatGrouped(m.Decimal.StringFixed(2))
}

// Compact renders large amounts in K/M notation for chart labels and tables
func (m Money) Compact() string {
	abs := m.Decimal.Abs()
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		return sign + "$" + abs.Div(decimal.NewFromInt(1_000_000)).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return sign + "$" + abs.Div(decimal.NewFromInt(1_000)).StringFixed(0) + "K"
	default:
		return sign + "$" + abs.StringFixed(0)
	}
}

func formatGrouped(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, frac := fixed, ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, frac = fixed[:i], fixed[i:]
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if sign != "" && strings.Trim(intPart+frac, "0.") == "" {
		sign = ""
	}
	return sign + "$" + b.String() + frac
}
