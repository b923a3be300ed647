package calculation

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// MonthlyRate converts an annual rate to a monthly one by simple division.
// This is not the compounding-equivalent rate (1+r)^(1/12)-1.
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(twelve)
}

// FutureValueWithContributions grows principal for the given number of years,
// adding annualContribution after each year's growth:
//
//	balance = balance*(1+rate) + contribution
func FutureValueWithContributions(principal, annualRate decimal.Decimal, years int, annualContribution decimal.Decimal) (decimal.Decimal, error) {
	const op = "future_value"
	if years < 0 {
		return decimal.Zero, domain.NewValidationError(op, "years", fmt.Sprintf("must be non-negative, got %d", years))
	}
	if annualRate.IsNegative() {
		return decimal.Zero, domain.NewValidationError(op, "annual_rate", "cannot be negative")
	}
	rates := make([]decimal.Decimal, years)
	for i := range rates {
		rates[i] = annualRate
	}
	return FutureValueWithRates(principal, rates, annualContribution), nil
}

// FutureValueWithRates applies the contribution recurrence with one rate per year
func FutureValueWithRates(principal decimal.Decimal, rates []decimal.Decimal, annualContribution decimal.Decimal) decimal.Decimal {
	balance := principal
	for _, r := range rates {
		balance = balance.Mul(one.Add(r)).Add(annualContribution)
	}
	return balance
}

// CompoundFactor returns (1+rate)^periods
func CompoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods == 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(periods)))
}

// AnnuityDueFutureValue is the future value of a payment made at the start of
// each period: PMT * ((1+r)^n - 1) / r * (1+r). A zero rate reduces to PMT*n.
func AnnuityDueFutureValue(payment, periodRate decimal.Decimal, periods int) decimal.Decimal {
	if periodRate.IsZero() {
		return payment.Mul(decimal.NewFromInt(int64(periods)))
	}
	growth := CompoundFactor(periodRate, periods).Sub(one)
	return payment.Mul(growth).Div(periodRate).Mul(one.Add(periodRate))
}

// OrdinaryAnnuityFutureValue is the future value of a payment made at the end
// of each period: PMT * ((1+r)^n - 1) / r. A zero rate reduces to PMT*n.
func OrdinaryAnnuityFutureValue(payment, periodRate decimal.Decimal, periods int) decimal.Decimal {
	if periodRate.IsZero() {
		return payment.Mul(decimal.NewFromInt(int64(periods)))
	}
	return payment.Mul(CompoundFactor(periodRate, periods).Sub(one)).Div(periodRate)
}

// RequiredAnnuityPayment inverts the ordinary annuity formula:
//
//	PMT = FV * r / ((1+r)^n - 1)
//
// A zero rate has no closed form here and is reported as a *domain.DomainError;
// callers handle that case with simple division.
func RequiredAnnuityPayment(targetFutureValue, periodRate decimal.Decimal, periods int) (decimal.Decimal, error) {
	const op = "required_annuity_payment"
	if periods <= 0 {
		return decimal.Zero, domain.NewValidationError(op, "periods", fmt.Sprintf("must be positive, got %d", periods))
	}
	if periodRate.IsNegative() {
		return decimal.Zero, domain.NewValidationError(op, "rate", "cannot be negative")
	}
	if targetFutureValue.IsNegative() {
		return decimal.Zero, domain.NewValidationError(op, "target", "cannot be negative")
	}
	if periodRate.IsZero() {
		return decimal.Zero, domain.NewDomainError(op, "zero rate: payment is target / periods")
	}
	growth := CompoundFactor(periodRate, periods).Sub(one)
	return targetFutureValue.Mul(periodRate).Div(growth), nil
}

// ClosedFormFutureValue evaluates P(1+r)^n + C((1+r)^n - 1)/r, the closed form
// of FutureValueWithContributions for a constant rate.
func ClosedFormFutureValue(principal, annualRate decimal.Decimal, years int, annualContribution decimal.Decimal) decimal.Decimal {
	return principal.Mul(CompoundFactor(annualRate, years)).
		Add(OrdinaryAnnuityFutureValue(annualContribution, annualRate, years))
}
