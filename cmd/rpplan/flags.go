package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// profileFlags collects the questionnaire answers shared by several commands.
type profileFlags struct {
	age           int
	retirementAge int
	savings       float64
	income        float64
	risk          string
	tier          string
}

func (pf *profileFlags) register(cmd *cobra.Command, withTier bool) {
	cmd.Flags().IntVar(&pf.age, "age", 35, "current age")
	cmd.Flags().IntVar(&pf.retirementAge, "retirement-age", 65, "target retirement age")
	cmd.Flags().Float64Var(&pf.savings, "savings", 0, "current retirement savings")
	cmd.Flags().Float64Var(&pf.income, "income", 0, "annual income")
	cmd.Flags().StringVar(&pf.risk, "risk", "medium", "risk tolerance (low, medium, high)")
	if withTier {
		cmd.Flags().StringVar(&pf.tier, "tier", "", "allocation tier (Aggressive, Balanced, Safe; default first)")
	}
}

func (pf *profileFlags) profile() (domain.RetirementProfile, error) {
	risk, err := domain.ParseRiskTolerance(pf.risk)
	if err != nil {
		return domain.RetirementProfile{}, err
	}
	return domain.RetirementProfile{
		Age:            pf.age,
		RetirementAge:  pf.retirementAge,
		CurrentSavings: decimal.NewFromFloat(pf.savings),
		AnnualIncome:   decimal.NewFromFloat(pf.income),
		RiskTolerance:  risk,
	}, nil
}

// portfolio generates the profile's portfolios and returns the selected tier.
func (pf *profileFlags) portfolio() (domain.RetirementProfile, domain.Portfolio, error) {
	profile, err := pf.profile()
	if err != nil {
		return profile, domain.Portfolio{}, err
	}
	portfolios, err := engine.GeneratePortfolios(profile)
	if err != nil {
		return profile, domain.Portfolio{}, err
	}
	if pf.tier == "" {
		return profile, portfolios[0], nil
	}
	tier, err := domain.ParseTierName(pf.tier)
	if err != nil {
		return profile, domain.Portfolio{}, err
	}
	for _, p := range portfolios {
		if p.Tier == tier {
			return profile, p, nil
		}
	}
	return profile, domain.Portfolio{}, fmt.Errorf("tier %s not generated", tier)
}
