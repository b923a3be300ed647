package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDelayImpact(t *testing.T) {
	ce := NewCalculationEngine()
	portfolios, err := ce.GeneratePortfolios(referenceProfile())
	require.NoError(t, err)
	aggressive := portfolios[0]

	result, err := ce.ComputeDelayImpact(referenceProfile(), aggressive, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, result.DelayYears)
	assert.True(t, aggressive.ProjectedFund.Equal(result.OriginalBalance))
	assert.Equal(t, "4544078.49", result.DelayedBalance.StringFixed(2))
	assert.Equal(t, "1505356.61", result.Difference.StringFixed(2))
	assert.Equal(t, "49.54", result.PercentageIncrease.StringFixed(2))
	assert.True(t, dec("67500").Equal(result.ExtraContributions))

	assert.True(t, result.AnnualWithdrawalOriginal.Equal(aggressive.AnnualWithdrawal))
	assert.True(t, result.AnnualWithdrawalDelayed.Sub(result.AnnualWithdrawalOriginal).Equal(result.AnnualWithdrawalDiff))
	assertNear(t, result.AnnualWithdrawalDiff.Div(dec("12")), result.MonthlyWithdrawalDiff, dec("0.0000001"))
}

func TestComputeDelayImpact_ZeroDelayIsIdentity(t *testing.T) {
	ce := NewCalculationEngine()
	portfolios, err := ce.GeneratePortfolios(referenceProfile())
	require.NoError(t, err)

	for _, p := range portfolios {
		result, err := ce.ComputeDelayImpact(referenceProfile(), p, 0)
		require.NoError(t, err)
		assert.True(t, result.OriginalBalance.Equal(result.DelayedBalance), "%s", p.Tier)
		assert.True(t, result.Difference.IsZero())
		assert.True(t, result.PercentageIncrease.IsZero())
		assert.True(t, result.ExtraContributions.IsZero())
	}
}

func TestComputeDelayImpact_ZeroBalance(t *testing.T) {
	ce := NewCalculationEngine()
	profile := domain.RetirementProfile{Age: 40, RetirementAge: 41}
	tier, err := TierByName(domain.TierBalanced)
	require.NoError(t, err)

	result, err := ce.ComputeDelayImpact(profile, domain.Portfolio{Tier: tier.Name, CAGR: tier.ExpectedAnnualReturn}, 3)
	require.NoError(t, err)
	assert.True(t, result.OriginalBalance.IsZero())
	assert.True(t, result.PercentageIncrease.IsZero(), "no percentage against a zero balance")
}

func TestComputeDelayImpact_Validation(t *testing.T) {
	ce := NewCalculationEngine()
	portfolio := domain.Portfolio{CAGR: dec("0.06")}

	for _, years := range []int{-1, MaxDelayYears + 1} {
		_, err := ce.ComputeDelayImpact(referenceProfile(), portfolio, years)
		assert.True(t, errors.Is(err, domain.ErrValidation), "delay %d", years)
	}

	_, err := ce.ComputeDelayImpact(domain.RetirementProfile{Age: 70, RetirementAge: 65}, portfolio, 2)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
