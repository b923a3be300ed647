package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRetirementProfile_Validate(t *testing.T) {
	valid := RetirementProfile{
		Age:            35,
		RetirementAge:  65,
		CurrentSavings: decimal.NewFromInt(150000),
		AnnualIncome:   decimal.NewFromInt(90000),
		RiskTolerance:  RiskToleranceMedium,
	}

	tests := []struct {
		name        string
		modify      func(p *RetirementProfile)
		field       string
		description string
	}{
		{"valid", func(p *RetirementProfile) {}, "", "Reference profile passes"},
		{"zero age", func(p *RetirementProfile) { p.Age = 0 }, "age", "Age must be positive"},
		{"retire now", func(p *RetirementProfile) { p.RetirementAge = 35 }, "retirement_age", "Retirement must be in the future"},
		{"negative savings", func(p *RetirementProfile) { p.CurrentSavings = decimal.NewFromInt(-1) }, "current_savings", "Savings cannot be negative"},
		{"negative income", func(p *RetirementProfile) { p.AnnualIncome = decimal.NewFromInt(-1) }, "annual_income", "Income cannot be negative"},
		{"retirement age limit", func(p *RetirementProfile) { p.RetirementAge = MaxRetirementAge }, "", "The limit itself is allowed"},
		{"retirement age beyond limit", func(p *RetirementProfile) { p.RetirementAge = MaxRetirementAge + 1 }, "retirement_age", "Retirement ages are bounded"},
		{"zero savings", func(p *RetirementProfile) { p.CurrentSavings = decimal.Zero }, "", "Starting from nothing is allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.modify(&p)
			err := p.Validate()
			if tt.field == "" {
				assert.NoError(t, err, tt.description)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), tt.description)
			assert.Equal(t, tt.field, verr.Field)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.False(t, errors.Is(err, ErrDomain))
		})
	}
}

func TestRetirementProfile_Derived(t *testing.T) {
	p := RetirementProfile{Age: 35, RetirementAge: 65, AnnualIncome: decimal.NewFromInt(90000)}
	assert.Equal(t, 30, p.YearsToRetirement())
	assert.True(t, decimal.NewFromInt(13500).Equal(p.AnnualContribution(decimal.NewFromFloat(0.15))))
}

func TestParseRiskTolerance(t *testing.T) {
	cases := map[string]RiskTolerance{
		"low":          RiskToleranceLow,
		"Conservative": RiskToleranceLow,
		" MEDIUM ":     RiskToleranceMedium,
		"":             RiskToleranceMedium,
		"aggressive":   RiskToleranceHigh,
	}
	for in, want := range cases {
		got, err := ParseRiskTolerance(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseRiskTolerance("reckless")
	assert.Error(t, err)
}

func TestEnumYAMLDecoding(t *testing.T) {
	var doc struct {
		Risk      RiskTolerance `yaml:"risk"`
		Tier      TierName      `yaml:"tier"`
		Empty     TierName      `yaml:"empty"`
		Direction Direction     `yaml:"direction"`
		Account   AccountType   `yaml:"account"`
	}
	src := "risk: high\ntier: bAlAnCeD\nempty: \"\"\ndirection: target\naccount: ROTH\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	assert.Equal(t, RiskToleranceHigh, doc.Risk)
	assert.Equal(t, TierBalanced, doc.Tier)
	assert.Equal(t, TierName(""), doc.Empty)
	assert.Equal(t, DirectionInverse, doc.Direction)
	assert.Equal(t, AccountRoth, doc.Account)

	assert.Error(t, yaml.Unmarshal([]byte("tier: speculative\n"), &doc))
	assert.Error(t, yaml.Unmarshal([]byte("direction: sideways\n"), &doc))
	assert.Error(t, yaml.Unmarshal([]byte("account: hsa\n"), &doc))
}

func TestAllocation(t *testing.T) {
	a := Allocation{
		Stocks:        decimal.NewFromInt(70),
		Bonds:         decimal.NewFromInt(15),
		REITs:         decimal.NewFromInt(5),
		International: decimal.NewFromInt(5),
		Alternatives:  decimal.NewFromInt(5),
	}
	assert.True(t, decimal.NewFromInt(100).Equal(a.Total()))
	assert.Len(t, a.ByClass(), len(AssetClasses))

	adjusted := a.Adjust(Allocation{Stocks: decimal.NewFromInt(40), Bonds: decimal.NewFromInt(-20)})
	assert.True(t, decimal.NewFromInt(100).Equal(adjusted.Stocks), "clamped to 100")
	assert.True(t, adjusted.Bonds.IsZero(), "clamped to 0")
	assert.True(t, decimal.NewFromInt(70).Equal(a.Stocks), "original is unchanged")
}

func TestPortfolio_MonthlyWithdrawal(t *testing.T) {
	p := Portfolio{AnnualWithdrawal: decimal.NewFromInt(120000)}
	assert.True(t, decimal.NewFromInt(10000).Equal(p.MonthlyWithdrawal()))

	edited := p.WithAllocation(Allocation{Cash: decimal.NewFromInt(150)})
	assert.True(t, decimal.NewFromInt(100).Equal(edited.Allocation.Cash))
	assert.True(t, p.Allocation.Cash.IsZero(), "receiver is a copy")
}

func TestAssumptions(t *testing.T) {
	def := DefaultAssumptions()
	require.NoError(t, def.Validate())
	assert.Equal(t, 30, def.RetirementYears)
	assert.Equal(t, 67, def.FullRetirementAge)

	zeroRates := def
	zeroRates.ContributionRate = decimal.Zero
	zeroRates.WithdrawalRate = decimal.Zero
	zeroRates.InflationRate = decimal.Zero
	assert.NoError(t, zeroRates.Validate(), "zero rates are valid input")

	bad := def
	bad.WithdrawalRate = decimal.NewFromInt(4)
	var verr *ValidationError
	require.True(t, errors.As(bad.Validate(), &verr))
	assert.Equal(t, "withdrawal_rate", verr.Field)

	bad = def
	bad.FullRetirementAge = 75
	require.True(t, errors.As(bad.Validate(), &verr))
	assert.Equal(t, "full_retirement_age", verr.Field)

	lines := def.GenerateAssumptions()
	assert.Contains(t, lines, "Withdrawal rate in retirement: 4.0% of the projected fund")
	assert.Contains(t, lines, "Retirement horizon: 30 years")
}

func TestErrors(t *testing.T) {
	verr := NewValidationError("op", "field", "bad")
	assert.Equal(t, "op: field: bad", verr.Error())
	assert.Equal(t, "op: bad", NewValidationError("op", "", "bad").Error())

	derr := NewDomainError("op", "degenerate")
	assert.Equal(t, "op: degenerate", derr.Error())
	assert.True(t, errors.Is(derr, ErrDomain))
	assert.False(t, errors.Is(derr, ErrValidation))
}

func TestPlanReport_SelectedPortfolio(t *testing.T) {
	r := &PlanReport{
		Portfolios:   []Portfolio{{Tier: TierAggressive}, {Tier: TierSafe}},
		SelectedTier: TierSafe,
	}
	p, ok := r.SelectedPortfolio()
	require.True(t, ok)
	assert.Equal(t, TierSafe, p.Tier)

	r.SelectedTier = TierBalanced
	_, ok = r.SelectedPortfolio()
	assert.False(t, ok)
}
