package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RiskTolerance is the risk appetite stated by the user. It is informational
// only: every tier of the catalog is generated regardless of its value.
type RiskTolerance string

const (
	RiskToleranceLow    RiskTolerance = "Low"
	RiskToleranceMedium RiskTolerance = "Medium"
	RiskToleranceHigh   RiskTolerance = "High"
)

// ParseRiskTolerance accepts the canonical names case-insensitively
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "conservative":
		return RiskToleranceLow, nil
	case "medium", "moderate":
		return RiskToleranceMedium, nil
	case "high", "aggressive":
		return RiskToleranceHigh, nil
	case "":
		return RiskToleranceMedium, nil
	default:
		return "", fmt.Errorf("unknown risk tolerance %q (want Low, Medium or High)", s)
	}
}

// UnmarshalYAML normalizes the risk tolerance spelling
func (rt *RiskTolerance) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseRiskTolerance(raw)
	if err != nil {
		return err
	}
	*rt = parsed
	return nil
}

// RetirementProfile is the questionnaire answer set for one planning session.
// A profile is never mutated; a changed answer produces a new profile.
type RetirementProfile struct {
	Age              int             `yaml:"age" json:"age"`
	RetirementAge    int             `yaml:"retirement_age" json:"retirement_age"`
	CurrentSavings   decimal.Decimal `yaml:"current_savings" json:"current_savings"`
	AnnualIncome     decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	RiskTolerance    RiskTolerance   `yaml:"risk_tolerance" json:"risk_tolerance"`
	DesiredLifestyle string          `yaml:"desired_lifestyle,omitempty" json:"desired_lifestyle,omitempty"`
}

// YearsToRetirement returns RetirementAge - Age
func (p RetirementProfile) YearsToRetirement() int {
	return p.RetirementAge - p.Age
}

// AnnualContribution returns the yearly amount saved at the given contribution rate
func (p RetirementProfile) AnnualContribution(rate decimal.Decimal) decimal.Decimal {
	return p.AnnualIncome.Mul(rate)
}

// MaxRetirementAge bounds the retirement age a profile may target
const MaxRetirementAge = 120

// Validate checks the profile invariants. Violations are reported, never clamped.
func (p RetirementProfile) Validate() error {
	const op = "profile.validate"
	if p.Age <= 0 {
		return NewValidationError(op, "age", fmt.Sprintf("must be positive, got %d", p.Age))
	}
	if p.RetirementAge <= p.Age {
		return NewValidationError(op, "retirement_age", fmt.Sprintf("must be greater than age %d, got %d", p.Age, p.RetirementAge))
	}
	if p.RetirementAge > MaxRetirementAge {
		return NewValidationError(op, "retirement_age", fmt.Sprintf("must be at most %d, got %d", MaxRetirementAge, p.RetirementAge))
	}
	if p.CurrentSavings.IsNegative() {
		return NewValidationError(op, "current_savings", "cannot be negative")
	}
	if p.AnnualIncome.IsNegative() {
		return NewValidationError(op, "annual_income", "cannot be negative")
	}
	return nil
}
