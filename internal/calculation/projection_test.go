package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLifetime_Phases(t *testing.T) {
	ce := NewCalculationEngine()
	portfolio := aggressivePortfolio(t, ce)

	projection, err := ce.ProjectLifetime(referenceProfile(), portfolio)
	require.NoError(t, err)
	require.Len(t, projection.Years, 61)

	first := projection.Years[0]
	assert.Equal(t, 35, first.Age)
	assert.False(t, first.Retired)
	assert.True(t, dec("175500").Equal(first.Balance))

	lastWorking := projection.Years[29]
	assert.Equal(t, 64, lastWorking.Age)
	assert.True(t, portfolio.ProjectedFund.Equal(lastWorking.Balance), "accumulation agrees with the generator")

	retirementYear := projection.Years[30]
	assert.True(t, retirementYear.Retired)
	assert.True(t, retirementYear.Withdrawal.IsZero(), "no withdrawal in the retirement year")
	assert.True(t, lastWorking.Balance.Mul(dec("1.08")).Equal(retirementYear.Balance))

	next := projection.Years[31]
	assert.True(t, retirementYear.Balance.Mul(dec("0.04")).Equal(next.Withdrawal))
	assert.True(t, retirementYear.Balance.Mul(dec("1.04")).Equal(next.Balance))

	assert.Equal(t, 95, projection.Years[60].Age)
	assert.True(t, projection.Years[60].Balance.Equal(projection.FinalBalance))
	assert.Zero(t, projection.DepletionAge)

	peak := decimal.Zero
	for _, y := range projection.Years {
		peak = decimal.Max(peak, y.Balance)
	}
	assert.True(t, peak.Equal(projection.PeakBalance))
}

func TestProjectLifetime_FloorsAtZero(t *testing.T) {
	assumptions := domain.DefaultAssumptions()
	assumptions.WithdrawalRate = dec("1")
	ce, err := NewCalculationEngineWithAssumptions(assumptions)
	require.NoError(t, err)

	profile := domain.RetirementProfile{Age: 60, RetirementAge: 62, CurrentSavings: dec("10000")}
	projection, err := ce.ProjectLifetime(profile, domain.Portfolio{Tier: domain.TierSafe, CAGR: decimal.Zero})
	require.NoError(t, err)

	assert.Equal(t, 63, projection.DepletionAge)
	for _, y := range projection.Years {
		assert.False(t, y.Balance.IsNegative(), "age %d", y.Age)
	}
	assert.True(t, projection.FinalBalance.IsZero())
}

func TestWithdrawalSchedule(t *testing.T) {
	ce := NewCalculationEngine()
	portfolio := domain.Portfolio{AnnualWithdrawal: dec("40000")}

	schedule := ce.WithdrawalSchedule(portfolio, 30)
	require.Len(t, schedule, 31)

	assert.True(t, dec("40000").Equal(schedule[0].InflationAdjusted))
	assert.True(t, dec("41000").Equal(schedule[1].InflationAdjusted))
	assert.True(t, dec("42025").Equal(schedule[2].InflationAdjusted))
	for _, y := range schedule {
		assert.True(t, dec("40000").Equal(y.Nominal))
	}

	assert.Len(t, ce.WithdrawalSchedule(portfolio, -1), 1)
}

func TestMilestones(t *testing.T) {
	ce := NewCalculationEngine()
	portfolio := aggressivePortfolio(t, ce)

	milestones, err := ce.Milestones(referenceProfile(), portfolio, []int{10, 20, 30})
	require.NoError(t, err)
	require.Len(t, milestones, 3)

	assert.Equal(t, "519407.34", milestones[0].Balance.StringFixed(2))
	assert.Equal(t, "1316930.09", milestones[1].Balance.StringFixed(2))
	assertNear(t, portfolio.ProjectedFund, milestones[2].Balance, dec("0.000001"))

	zeroRate, err := ce.Milestones(referenceProfile(), domain.Portfolio{CAGR: decimal.Zero}, []int{2})
	require.NoError(t, err)
	assert.True(t, dec("177000").Equal(zeroRate[0].Balance))

	_, err = ce.Milestones(referenceProfile(), portfolio, []int{-5})
	assert.Error(t, err)

	_, err = ce.Milestones(referenceProfile(), portfolio, []int{10, MaxMilestoneYears + 1})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "years", verr.Field)

	bounded, err := ce.Milestones(referenceProfile(), portfolio, []int{MaxMilestoneYears})
	require.NoError(t, err)
	assert.Len(t, bounded, 1)
}
