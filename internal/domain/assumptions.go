package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Assumptions holds the planning constants shared by every calculator.
// They are named values rather than literals so tests and configuration can
// override them.
type Assumptions struct {
	ContributionRate  decimal.Decimal `yaml:"contribution_rate" json:"contribution_rate"`     // share of income saved each year
	WithdrawalRate    decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate"`         // 4% rule
	RetirementYears   int             `yaml:"retirement_years" json:"retirement_years"`       // assumed retirement horizon
	InflationRate     decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`           // for withdrawal schedules
	FullRetirementAge int             `yaml:"full_retirement_age" json:"full_retirement_age"` // SS claiming pivot
	WageBase          decimal.Decimal `yaml:"wage_base" json:"wage_base"`                     // SS income cap
	MaxMonthlyBenefit decimal.Decimal `yaml:"max_monthly_benefit" json:"max_monthly_benefit"` // SS benefit cap
}

// DefaultAssumptions returns the constants the planner ships with
func DefaultAssumptions() Assumptions {
	return Assumptions{
		ContributionRate:  decimal.NewFromFloat(0.15),
		WithdrawalRate:    decimal.NewFromFloat(0.04),
		RetirementYears:   30,
		InflationRate:     decimal.NewFromFloat(0.025),
		FullRetirementAge: 67,
		WageBase:          decimal.NewFromInt(160000),
		MaxMonthlyBenefit: decimal.NewFromInt(3900),
	}
}

// Validate checks that every assumption is within its allowed range
func (a Assumptions) Validate() error {
	const op = "assumptions.validate"
	one := decimal.NewFromInt(1)
	if a.ContributionRate.IsNegative() || a.ContributionRate.GreaterThan(one) {
		return NewValidationError(op, "contribution_rate", "must be between 0 and 1")
	}
	if a.WithdrawalRate.IsNegative() || a.WithdrawalRate.GreaterThan(one) {
		return NewValidationError(op, "withdrawal_rate", "must be between 0 and 1")
	}
	if a.RetirementYears <= 0 || a.RetirementYears > 60 {
		return NewValidationError(op, "retirement_years", fmt.Sprintf("must be between 1 and 60, got %d", a.RetirementYears))
	}
	if a.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) {
		return NewValidationError(op, "inflation_rate", "cannot be less than -10%")
	}
	if a.FullRetirementAge < 62 || a.FullRetirementAge > 70 {
		return NewValidationError(op, "full_retirement_age", "must be between 62 and 70")
	}
	if !a.WageBase.IsPositive() {
		return NewValidationError(op, "wage_base", "must be positive")
	}
	if !a.MaxMonthlyBenefit.IsPositive() {
		return NewValidationError(op, "max_monthly_benefit", "must be positive")
	}
	return nil
}

// GenerateAssumptions lists the assumptions in human readable form for reports
func (a Assumptions) GenerateAssumptions() []string {
	hundred := decimal.NewFromInt(100)
	return []string{
		fmt.Sprintf("Annual contribution: %s%% of income", a.ContributionRate.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Withdrawal rate in retirement: %s%% of the projected fund", a.WithdrawalRate.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Retirement horizon: %d years", a.RetirementYears),
		fmt.Sprintf("Inflation: %s%% annually", a.InflationRate.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Social Security: wage base $%s, maximum benefit $%s/month, full retirement age %d",
			a.WageBase.StringFixed(0), a.MaxMonthlyBenefit.StringFixed(0), a.FullRetirementAge),
		"Returns are constant per tier; no market data or rebalancing is modeled",
	}
}
