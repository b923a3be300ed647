package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decs(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

func TestCumulativeCrossover(t *testing.T) {
	tests := []struct {
		name        string
		a, b        []decimal.Decimal
		ok          bool
		index       int
		fraction    string
		cumulative  string
		description string
	}{
		{
			name:        "Exact period end",
			a:           decs(100, 200),
			b:           decs(150, 150),
			ok:          true,
			index:       1,
			fraction:    "1",
			cumulative:  "300",
			description: "Totals meet exactly after the second period",
		},
		{
			name:        "Mid-period interpolation",
			a:           decs(100, 100),
			b:           decs(80, 140),
			ok:          true,
			index:       1,
			fraction:    "0.5",
			cumulative:  "150",
			description: "Difference goes from +20 to -20 within the second period",
		},
		{
			name:        "Never crosses",
			a:           decs(100, 100, 100),
			b:           decs(0, 50, 50),
			ok:          false,
			description: "b never catches up",
		},
		{
			name:        "Identical streams",
			a:           decs(100, 100),
			b:           decs(100, 100),
			ok:          false,
			description: "Equal totals from the start are not a crossover",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, fraction, cumulative, ok := cumulativeCrossover(tt.a, tt.b)
			require.Equal(t, tt.ok, ok, tt.description)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.index, index)
			assert.True(t, dec(tt.fraction).Equal(fraction), "fraction %s", fraction)
			assert.True(t, dec(tt.cumulative).Equal(cumulative), "cumulative %s", cumulative)
		})
	}
}

func TestClaimingBreakEven(t *testing.T) {
	ce := NewCalculationEngine()

	res, err := ce.ClaimingBreakEven(dec("160000"), 35, 67, 70)
	require.NoError(t, err)
	require.True(t, res.Reached)
	assert.True(t, dec("3900").Equal(res.EarlierMonthly))
	assert.True(t, dec("4836").Equal(res.LaterMonthly))
	assert.Equal(t, "82.50", res.BreakEvenAge.StringFixed(2))
	assert.Equal(t, "725400.00", res.CumulativeAmount.StringFixed(2))

	res, err = ce.ClaimingBreakEven(dec("160000"), 35, 62, 70)
	require.NoError(t, err)
	require.True(t, res.Reached)
	assert.Equal(t, "80.37", res.BreakEvenAge.StringFixed(2))
	assertNear(t, dec("601813.33"), res.CumulativeAmount, dec("0.01"))
}

func TestClaimingBreakEven_NoBenefit(t *testing.T) {
	res, err := NewCalculationEngine().ClaimingBreakEven(decimal.Zero, 0, 62, 70)
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.True(t, res.BreakEvenAge.IsZero())
}

func TestClaimingBreakEven_Validation(t *testing.T) {
	ce := NewCalculationEngine()

	_, err := ce.ClaimingBreakEven(dec("90000"), 35, 70, 67)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "later_age", verr.Field)

	_, err = ce.ClaimingBreakEven(dec("90000"), 35, 60, 67)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "claiming_age", verr.Field)
}
