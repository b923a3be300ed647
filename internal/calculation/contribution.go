package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxContributionYears bounds the saving period the solver accepts
const MaxContributionYears = 100

// DefaultMonthlyContribution is the starting value offered for the forward
// solver: the yearly contribution rate applied to income, per month, rounded.
func (ce *CalculationEngine) DefaultMonthlyContribution(profile domain.RetirementProfile) decimal.Decimal {
	return profile.AnnualContribution(ce.Assumptions.ContributionRate).Div(twelve).Round(0)
}

// SolveContribution runs the monthly annuity-due relationship in either
// direction. Contributions are made at the start of each month and the
// monthly rate is the annual rate divided by twelve.
func (ce *CalculationEngine) SolveContribution(req domain.ContributionRequest) (domain.ContributionResult, error) {
	const op = "contribution.solve"
	if req.Years <= 0 {
		return domain.ContributionResult{}, domain.NewValidationError(op, "years", fmt.Sprintf("must be positive, got %d", req.Years))
	}
	if req.Years > MaxContributionYears {
		return domain.ContributionResult{}, domain.NewValidationError(op, "years", fmt.Sprintf("must be at most %d, got %d", MaxContributionYears, req.Years))
	}
	if req.AnnualRate.IsNegative() {
		return domain.ContributionResult{}, domain.NewValidationError(op, "annual_rate", "cannot be negative")
	}

	rate := MonthlyRate(req.AnnualRate)
	months := req.Years * 12

	switch req.Direction {
	case domain.DirectionForward:
		if req.MonthlyContribution.IsNegative() {
			return domain.ContributionResult{}, domain.NewValidationError(op, "monthly_contribution", "cannot be negative")
		}
		result := forwardContribution(req.MonthlyContribution, rate, months)
		ce.Logger.Debugf("forward: %s/month for %d months at %s -> %s",
			req.MonthlyContribution, months, rate, result.FinalBalance.StringFixed(2))
		return result, nil

	case domain.DirectionInverse:
		if req.TargetAmount.IsNegative() {
			return domain.ContributionResult{}, domain.NewValidationError(op, "target_amount", "cannot be negative")
		}
		payment, err := requiredMonthlyContribution(req.TargetAmount, rate, months)
		if err != nil {
			return domain.ContributionResult{}, err
		}
		result := forwardContribution(payment, rate, months)
		result.Direction = domain.DirectionInverse
		result.TargetAmount = req.TargetAmount
		ce.Logger.Debugf("inverse: target %s over %d months at %s needs %s/month",
			req.TargetAmount.StringFixed(2), months, rate, payment)
		return result, nil

	default:
		return domain.ContributionResult{}, domain.NewValidationError(op, "direction", fmt.Sprintf("unknown direction %q", req.Direction))
	}
}

func forwardContribution(payment, rate decimal.Decimal, months int) domain.ContributionResult {
	fv := AnnuityDueFutureValue(payment, rate, months)
	total := payment.Mul(decimal.NewFromInt(int64(months)))
	return domain.ContributionResult{
		Direction:           domain.DirectionForward,
		MonthlyRate:         rate,
		Months:              months,
		MonthlyContribution: payment,
		FinalBalance:        fv,
		TotalContributions:  total,
		TotalInterest:       fv.Sub(total),
	}
}

// requiredMonthlyContribution inverts the annuity-due future value and rounds
// up to a whole currency unit so the target is always reached.
func requiredMonthlyContribution(target, rate decimal.Decimal, months int) (decimal.Decimal, error) {
	payment, err := RequiredAnnuityPayment(target, rate, months)
	if err != nil {
		var domainErr *domain.DomainError
		if !errors.As(err, &domainErr) {
			return decimal.Zero, err
		}
		return target.Div(decimal.NewFromInt(int64(months))).Ceil(), nil
	}
	return payment.Div(one.Add(rate)).Ceil(), nil
}
