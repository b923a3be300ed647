package calculation

import (
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX IMPACT ASSUMPTIONS:
//
// 1. Contributions are the assumed share of the profile's annual income.
// 2. Traditional accounts deduct contributions at the current marginal rate
//    and pay retirement + state rate on every withdrawal.
// 3. Roth accounts get no deduction and pay no tax on withdrawals.
// 4. Lifetime figures use a fixed retirement horizon (30 years by default).
//
// The result is a comparative illustration, not a tax-law simulation.

// TaxDisclaimer accompanies every tax result
const TaxDisclaimer = "This is a comparative illustration based on flat tax rates, not a precise tax calculation. " +
	"Consult a tax professional for advice about your situation."

// TaxImpactCalculator compares traditional and Roth treatment of a contribution stream
type TaxImpactCalculator struct {
	ContributionRate decimal.Decimal
	RetirementYears  int
}

// NewTaxImpactCalculator creates a calculator from the planning assumptions
func NewTaxImpactCalculator(a domain.Assumptions) *TaxImpactCalculator {
	return &TaxImpactCalculator{
		ContributionRate: a.ContributionRate,
		RetirementYears:  a.RetirementYears,
	}
}

// ValidateTaxParams checks every rate is a decimal in [0, 1]
func ValidateTaxParams(params domain.TaxParams) error {
	const op = "tax.validate"
	rates := []struct {
		field string
		value decimal.Decimal
	}{
		{"current_tax_rate", params.CurrentTaxRate},
		{"retirement_tax_rate", params.RetirementTaxRate},
		{"state_tax_rate", params.StateTaxRate},
	}
	for _, r := range rates {
		if r.value.IsNegative() || r.value.GreaterThan(one) {
			return domain.NewValidationError(op, r.field, "must be a decimal between 0 and 1")
		}
	}
	switch params.AccountType {
	case domain.AccountTraditional, domain.AccountRoth:
	default:
		return domain.NewValidationError(op, "account_type", "must be traditional or roth")
	}
	return nil
}

// Calculate computes the tax result for the profile and its selected portfolio
func (tc *TaxImpactCalculator) Calculate(profile domain.RetirementProfile, portfolio domain.Portfolio, params domain.TaxParams) (domain.TaxResult, error) {
	if err := profile.Validate(); err != nil {
		return domain.TaxResult{}, err
	}
	if err := ValidateTaxParams(params); err != nil {
		return domain.TaxResult{}, err
	}

	traditional := params.AccountType == domain.AccountTraditional
	years := decimal.NewFromInt(int64(profile.YearsToRetirement()))
	horizon := decimal.NewFromInt(int64(tc.RetirementYears))

	contribution := profile.AnnualContribution(tc.ContributionRate)
	effective := params.RetirementTaxRate.Add(params.StateTaxRate)
	totalContributions := contribution.Mul(years)

	savings := decimal.Zero
	retirementTax := decimal.Zero
	if traditional {
		savings = contribution.Mul(params.CurrentTaxRate)
		retirementTax = portfolio.AnnualWithdrawal.Mul(effective)
	}

	lifetimeSavings := savings.Mul(years)
	lifetimePayments := retirementTax.Mul(horizon)
	net := lifetimeSavings.Sub(lifetimePayments)
	if !traditional {
		// Roth contributions are taxed up front at the current rate
		net = totalContributions.Mul(params.CurrentTaxRate).Neg()
	}

	return domain.TaxResult{
		AccountType:            params.AccountType,
		AnnualContribution:     contribution,
		CurrentTaxSavings:      savings,
		EffectiveRetirementTax: effective,
		AnnualWithdrawal:       portfolio.AnnualWithdrawal,
		AnnualTaxInRetirement:  retirementTax,
		AfterTaxWithdrawal:     portfolio.AnnualWithdrawal.Sub(retirementTax),
		TotalContributions:     totalContributions,
		LifetimeTaxSavings:     lifetimeSavings,
		LifetimeTaxPayments:    lifetimePayments,
		NetTaxEffect:           net,
		Disclaimer:             TaxDisclaimer,
	}, nil
}

// ComputeTaxImpact runs the tax comparison with the engine's assumptions
func (ce *CalculationEngine) ComputeTaxImpact(profile domain.RetirementProfile, portfolio domain.Portfolio, params domain.TaxParams) (domain.TaxResult, error) {
	if params.AccountType == "" {
		params.AccountType = domain.AccountTraditional
	}
	result, err := NewTaxImpactCalculator(ce.Assumptions).Calculate(profile, portfolio, params)
	if err != nil {
		return domain.TaxResult{}, err
	}
	ce.Logger.Debugf("tax impact (%s) on %s: net lifetime effect %s", params.AccountType, portfolio.Tier, result.NetTaxEffect.StringFixed(2))
	return result, nil
}
