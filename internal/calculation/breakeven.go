package calculation

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakEvenHorizonAge is the last age considered when comparing claiming ages
const BreakEvenHorizonAge = 100

// ClaimingBreakEven finds the age at which claiming Social Security at
// laterAge has paid out as much in total as claiming at earlierAge. Benefits
// are compared year by year and the crossover is interpolated within the year.
func (ce *CalculationEngine) ClaimingBreakEven(averageIncome decimal.Decimal, yearsWorked, earlierAge, laterAge int) (domain.ClaimingBreakEven, error) {
	if laterAge <= earlierAge {
		return domain.ClaimingBreakEven{}, domain.NewValidationError("social_security.break_even", "later_age",
			fmt.Sprintf("must be greater than %d, got %d", earlierAge, laterAge))
	}
	sse := NewSocialSecurityEstimator(ce.Assumptions)
	early, err := sse.Estimate(averageIncome, yearsWorked, earlierAge)
	if err != nil {
		return domain.ClaimingBreakEven{}, err
	}
	late, err := sse.Estimate(averageIncome, yearsWorked, laterAge)
	if err != nil {
		return domain.ClaimingBreakEven{}, err
	}

	years := BreakEvenHorizonAge - earlierAge
	earlyStream := make([]decimal.Decimal, years)
	lateStream := make([]decimal.Decimal, years)
	for i := 0; i < years; i++ {
		earlyStream[i] = early.AnnualBenefit
		lateStream[i] = decimal.Zero
		if earlierAge+i >= laterAge {
			lateStream[i] = late.AnnualBenefit
		}
	}

	result := domain.ClaimingBreakEven{
		EarlierAge:     earlierAge,
		LaterAge:       laterAge,
		EarlierMonthly: early.MonthlyBenefit,
		LaterMonthly:   late.MonthlyBenefit,
	}
	index, fraction, cumulative, ok := cumulativeCrossover(earlyStream, lateStream)
	if !ok {
		ce.Logger.Debugf("claiming at %d never catches up with %d before age %d", laterAge, earlierAge, BreakEvenHorizonAge)
		return result, nil
	}
	result.Reached = true
	result.BreakEvenAge = decimal.NewFromInt(int64(earlierAge + index)).Add(fraction)
	result.CumulativeAmount = cumulative
	return result, nil
}

// cumulativeCrossover finds the first point where the running totals of a and
// b become equal after having differed. index is the 0-based period in which
// the crossover happens and fraction (0..1] how far into that period; the
// cumulative amount is a's running total at that point.
func cumulativeCrossover(a, b []decimal.Decimal) (index int, fraction, cumulative decimal.Decimal, ok bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	cumA, cumB := decimal.Zero, decimal.Zero
	for i := 0; i < n; i++ {
		prevDiff := cumA.Sub(cumB)
		cumA = cumA.Add(a[i])
		cumB = cumB.Add(b[i])
		currDiff := cumA.Sub(cumB)

		if prevDiff.IsZero() {
			continue
		}
		if currDiff.IsZero() {
			return i, one, cumA, true
		}
		if prevDiff.Sign() != currDiff.Sign() {
			// diff(t) = prevDiff + t*(currDiff - prevDiff)
			t := prevDiff.Neg().Div(currDiff.Sub(prevDiff))
			return i, t, cumA.Sub(a[i]).Add(a[i].Mul(t)), true
		}
	}
	return 0, decimal.Zero, decimal.Zero, false
}
