package calculation

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxDelayYears bounds how far retirement can be postponed
const MaxDelayYears = 10

// ComputeDelayImpact projects the profile against the portfolio's return twice,
// once to the planned retirement age and once delayYears later, and reports
// the difference in balance and in withdrawals at the assumed withdrawal rate.
func (ce *CalculationEngine) ComputeDelayImpact(profile domain.RetirementProfile, portfolio domain.Portfolio, delayYears int) (domain.DelayResult, error) {
	const op = "delay.compute"
	if err := profile.Validate(); err != nil {
		return domain.DelayResult{}, err
	}
	if delayYears < 0 || delayYears > MaxDelayYears {
		return domain.DelayResult{}, domain.NewValidationError(op, "delay_years",
			fmt.Sprintf("must be between 0 and %d, got %d", MaxDelayYears, delayYears))
	}

	years := profile.YearsToRetirement()
	contribution := profile.AnnualContribution(ce.Assumptions.ContributionRate)

	original, err := FutureValueWithContributions(profile.CurrentSavings, portfolio.CAGR, years, contribution)
	if err != nil {
		return domain.DelayResult{}, err
	}
	delayed, err := FutureValueWithContributions(profile.CurrentSavings, portfolio.CAGR, years+delayYears, contribution)
	if err != nil {
		return domain.DelayResult{}, err
	}

	difference := delayed.Sub(original)
	percentage := decimal.Zero
	if original.IsPositive() {
		percentage = difference.Div(original).Mul(hundred)
	}

	rate := ce.Assumptions.WithdrawalRate
	annualOriginal := original.Mul(rate)
	annualDelayed := delayed.Mul(rate)

	ce.Logger.Debugf("delay %d years on %s: %s -> %s (+%s%%)",
		delayYears, portfolio.Tier, original.StringFixed(2), delayed.StringFixed(2), percentage.StringFixed(1))

	return domain.DelayResult{
		DelayYears:                delayYears,
		OriginalBalance:           original,
		DelayedBalance:            delayed,
		Difference:                difference,
		PercentageIncrease:        percentage,
		AnnualWithdrawalOriginal:  annualOriginal,
		AnnualWithdrawalDelayed:   annualDelayed,
		AnnualWithdrawalDiff:      annualDelayed.Sub(annualOriginal),
		MonthlyWithdrawalOriginal: annualOriginal.Div(twelve),
		MonthlyWithdrawalDelayed:  annualDelayed.Div(twelve),
		MonthlyWithdrawalDiff:     annualDelayed.Sub(annualOriginal).Div(twelve),
		ExtraContributions:        contribution.Mul(decimal.NewFromInt(int64(delayYears))),
	}, nil
}
