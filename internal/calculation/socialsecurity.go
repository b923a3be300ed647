package calculation

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// SocialSecurityDisclaimer accompanies every estimate
const SocialSecurityDisclaimer = "This is a simplified estimate for illustration only. " +
	"Actual benefits depend on your complete earnings history and current Social Security rules."

const (
	minClaimingAge    = 62
	maxClaimingAge    = 70
	fullCareerYears   = 35
	firstBendPoint    = 1115
	secondBendPoint   = 6721
	earlyReductionPct = 6 // per year before full retirement age
	delayedCreditPct  = 8 // per year after full retirement age
)

var hundred = decimal.NewFromInt(100)

// SocialSecurityEstimator applies a simplified bend-point PIA formula.
// It does not reproduce actual government benefit rules.
type SocialSecurityEstimator struct {
	FullRetirementAge int
	WageBase          decimal.Decimal
	MaxMonthlyBenefit decimal.Decimal
}

// NewSocialSecurityEstimator creates an estimator from the planning assumptions
func NewSocialSecurityEstimator(a domain.Assumptions) *SocialSecurityEstimator {
	return &SocialSecurityEstimator{
		FullRetirementAge: a.FullRetirementAge,
		WageBase:          a.WageBase,
		MaxMonthlyBenefit: a.MaxMonthlyBenefit,
	}
}

// BasePIA returns the benefit at full retirement age: the capped income run
// through the three bend points, scaled by the career factor and capped.
func (sse *SocialSecurityEstimator) BasePIA(averageIncome decimal.Decimal, yearsWorked int) decimal.Decimal {
	capped := decimal.Min(averageIncome, sse.WageBase)

	first := decimal.NewFromInt(firstBendPoint)
	second := decimal.NewFromInt(secondBendPoint)

	pia := decimal.Min(first, capped).Mul(decimal.NewFromFloat(0.90))
	if capped.GreaterThan(first) {
		pia = pia.Add(decimal.Min(second.Sub(first), capped.Sub(first)).Mul(decimal.NewFromFloat(0.32)))
	}
	if capped.GreaterThan(second) {
		pia = pia.Add(capped.Sub(second).Mul(decimal.NewFromFloat(0.15)))
	}

	factor := one
	if yearsWorked < fullCareerYears {
		factor = decimal.NewFromInt(int64(yearsWorked)).Div(decimal.NewFromInt(fullCareerYears))
	}
	return decimal.Min(pia.Mul(factor), sse.MaxMonthlyBenefit)
}

// AdjustmentPercent returns the signed claiming-age adjustment in percent
func (sse *SocialSecurityEstimator) AdjustmentPercent(claimingAge int) decimal.Decimal {
	switch {
	case claimingAge < sse.FullRetirementAge:
		return decimal.NewFromInt(int64(-earlyReductionPct * (sse.FullRetirementAge - claimingAge)))
	case claimingAge > sse.FullRetirementAge:
		return decimal.NewFromInt(int64(delayedCreditPct * (claimingAge - sse.FullRetirementAge)))
	default:
		return decimal.Zero
	}
}

// Estimate validates the inputs and returns the adjusted monthly and annual benefit
func (sse *SocialSecurityEstimator) Estimate(averageIncome decimal.Decimal, yearsWorked, claimingAge int) (domain.BenefitEstimate, error) {
	const op = "social_security.estimate"
	if averageIncome.IsNegative() {
		return domain.BenefitEstimate{}, domain.NewValidationError(op, "average_income", "cannot be negative")
	}
	if yearsWorked < 0 {
		return domain.BenefitEstimate{}, domain.NewValidationError(op, "years_worked", fmt.Sprintf("cannot be negative, got %d", yearsWorked))
	}
	if claimingAge < minClaimingAge || claimingAge > maxClaimingAge {
		return domain.BenefitEstimate{}, domain.NewValidationError(op, "claiming_age",
			fmt.Sprintf("must be between %d and %d, got %d", minClaimingAge, maxClaimingAge, claimingAge))
	}

	base := sse.BasePIA(averageIncome, yearsWorked)
	adjustment := sse.AdjustmentPercent(claimingAge)
	monthly := base
	if !adjustment.IsZero() {
		monthly = base.Mul(one.Add(adjustment.Div(hundred)))
	}

	return domain.BenefitEstimate{
		AverageIncome:     averageIncome,
		YearsWorked:       yearsWorked,
		ClaimingAge:       claimingAge,
		BasePIA:           base,
		AdjustmentPercent: adjustment,
		MonthlyBenefit:    monthly,
		AnnualBenefit:     monthly.Mul(twelve),
		Disclaimer:        SocialSecurityDisclaimer,
	}, nil
}

// EstimateSocialSecurity estimates the benefit using the engine's assumptions
func (ce *CalculationEngine) EstimateSocialSecurity(averageIncome decimal.Decimal, yearsWorked, claimingAge int) (domain.BenefitEstimate, error) {
	estimate, err := NewSocialSecurityEstimator(ce.Assumptions).Estimate(averageIncome, yearsWorked, claimingAge)
	if err != nil {
		return domain.BenefitEstimate{}, err
	}
	ce.Logger.Debugf("social security at %d: base PIA %s, adjustment %s%%, monthly %s",
		claimingAge, estimate.BasePIA.StringFixed(2), estimate.AdjustmentPercent, estimate.MonthlyBenefit.StringFixed(2))
	return estimate, nil
}

// CompareWithPortfolio sets the estimated benefit beside the portfolio's
// annual withdrawal. The Social Security share is zero when there is no withdrawal.
func CompareWithPortfolio(estimate domain.BenefitEstimate, portfolio domain.Portfolio) domain.IncomeComparison {
	percent := decimal.Zero
	if portfolio.AnnualWithdrawal.IsPositive() {
		percent = estimate.AnnualBenefit.Div(portfolio.AnnualWithdrawal).Mul(hundred)
	}
	return domain.IncomeComparison{
		PortfolioWithdrawal:   portfolio.AnnualWithdrawal,
		SocialSecurityAnnual:  estimate.AnnualBenefit,
		TotalAnnualIncome:     portfolio.AnnualWithdrawal.Add(estimate.AnnualBenefit),
		SocialSecurityPercent: percent,
	}
}
