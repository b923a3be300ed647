package output

import (
	"strconv"

	"github.com/rpgo/retirement-planner/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

var decimalHundred = shop.NewFromInt(100)

// FormatCurrency formats a decimal as whole US dollars with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount shop.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).Format()
}

// FormatCurrencyCents formats a decimal as US dollars and cents.
func FormatCurrencyCents(amount shop.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).FormatCents()
}

// FormatCompact formats large amounts as $1.2M / $450K.
func FormatCompact(amount shop.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).Compact()
}

// FormatPercentage formats a value already in percent units with one decimal.
func FormatPercentage(percent shop.Decimal) string { return percent.StringFixed(1) + "%" }

// FormatRate formats a decimal rate (0.07) as a percentage (7.0%).
func FormatRate(rate shop.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
