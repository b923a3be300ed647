package calculation

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectLifetime follows the portfolio from the current age through
// accumulation and then RetirementYears of drawdown. Each row holds the
// balance at the end of that year.
//
// Accumulation (age < retirement age): balance = balance*(1+r) + contribution.
// Retirement: balance = balance*(1+r) - withdrawal, where no withdrawal is taken
// in the retirement year itself and later withdrawals are the withdrawal rate
// applied to the opening balance. The balance never goes below zero.
func (ce *CalculationEngine) ProjectLifetime(profile domain.RetirementProfile, portfolio domain.Portfolio) (domain.LifetimeProjection, error) {
	if err := profile.Validate(); err != nil {
		return domain.LifetimeProjection{}, err
	}
	if portfolio.CAGR.IsNegative() {
		return domain.LifetimeProjection{}, domain.NewValidationError("projection.lifetime", "cagr", "cannot be negative")
	}

	yearsToRetirement := profile.YearsToRetirement()
	totalYears := yearsToRetirement + ce.Assumptions.RetirementYears
	contribution := profile.AnnualContribution(ce.Assumptions.ContributionRate)
	growthFactor := one.Add(portfolio.CAGR)

	projection := domain.LifetimeProjection{
		Tier:          portfolio.Tier,
		Years:         make([]domain.ProjectionYear, 0, totalYears+1),
		RetirementAge: profile.RetirementAge,
	}

	balance := profile.CurrentSavings
	for year := 0; year <= totalYears; year++ {
		age := profile.Age + year
		row := domain.ProjectionYear{Year: year, Age: age, Retired: age >= profile.RetirementAge}

		opening := balance
		if !row.Retired {
			row.Contribution = contribution
			balance = opening.Mul(growthFactor).Add(contribution)
		} else {
			if year != yearsToRetirement {
				row.Withdrawal = opening.Mul(ce.Assumptions.WithdrawalRate)
			}
			balance = decimal.Max(decimal.Zero, opening.Mul(growthFactor).Sub(row.Withdrawal))
		}
		row.Growth = opening.Mul(portfolio.CAGR)
		row.Balance = balance

		if balance.GreaterThan(projection.PeakBalance) {
			projection.PeakBalance = balance
			projection.PeakAge = age
		}
		if row.Retired && balance.IsZero() && projection.DepletionAge == 0 {
			projection.DepletionAge = age
		}
		projection.Years = append(projection.Years, row)
	}
	projection.FinalBalance = balance

	ce.Logger.Debugf("lifetime projection for %s: peak %s at %d, final %s",
		portfolio.Tier, projection.PeakBalance.StringFixed(2), projection.PeakAge, balance.StringFixed(2))
	return projection, nil
}

// WithdrawalSchedule lists the flat nominal withdrawal next to the amount
// needed to keep pace with assumed inflation, for years 0 through years.
func (ce *CalculationEngine) WithdrawalSchedule(portfolio domain.Portfolio, years int) []domain.WithdrawalScheduleYear {
	if years < 0 {
		years = 0
	}
	schedule := make([]domain.WithdrawalScheduleYear, 0, years+1)
	for year := 0; year <= years; year++ {
		schedule = append(schedule, domain.WithdrawalScheduleYear{
			Year:              year,
			Nominal:           portfolio.AnnualWithdrawal,
			InflationAdjusted: portfolio.AnnualWithdrawal.Mul(CompoundFactor(ce.Assumptions.InflationRate, year)),
		})
	}
	return schedule
}

// MaxMilestoneYears bounds each milestone horizon
const MaxMilestoneYears = 100

// Milestones evaluates the closed-form balance after each horizon, in the
// order given.
func (ce *CalculationEngine) Milestones(profile domain.RetirementProfile, portfolio domain.Portfolio, horizons []int) ([]domain.Milestone, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	contribution := profile.AnnualContribution(ce.Assumptions.ContributionRate)
	milestones := make([]domain.Milestone, 0, len(horizons))
	for _, n := range horizons {
		if n < 0 || n > MaxMilestoneYears {
			return nil, domain.NewValidationError("projection.milestones", "years", fmt.Sprintf("must be between 0 and %d, got %d", MaxMilestoneYears, n))
		}
		milestones = append(milestones, domain.Milestone{
			Years:   n,
			Balance: ClosedFormFutureValue(profile.CurrentSavings, portfolio.CAGR, n, contribution),
		})
	}
	return milestones, nil
}
