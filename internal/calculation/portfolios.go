package calculation

import (
	"github.com/rpgo/retirement-planner/internal/domain"
)

// GeneratePortfolios projects the profile against every catalog tier, always
// in the order Aggressive, Balanced, Safe. The profile's risk tolerance does
// not filter or reweight the tiers.
func (ce *CalculationEngine) GeneratePortfolios(profile domain.RetirementProfile) ([]domain.Portfolio, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	years := profile.YearsToRetirement()
	contribution := profile.AnnualContribution(ce.Assumptions.ContributionRate)

	tiers := Catalog()
	portfolios := make([]domain.Portfolio, 0, len(tiers))
	for _, tier := range tiers {
		fund, err := FutureValueWithContributions(profile.CurrentSavings, tier.ExpectedAnnualReturn, years, contribution)
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, domain.Portfolio{
			Tier:             tier.Name,
			ProjectedFund:    fund,
			AnnualWithdrawal: fund.Mul(ce.Assumptions.WithdrawalRate),
			CAGR:             tier.ExpectedAnnualReturn,
			Allocation:       tier.Allocation,
			RiskLevel:        tier.RiskLevel,
			Description:      tier.Description,
			ColorScheme:      tier.ColorScheme,
		})
		ce.Logger.Debugf("tier %s: %d years at %s, projected fund %s", tier.Name, years, tier.ExpectedAnnualReturn, fund.StringFixed(2))
	}
	return portfolios, nil
}

// AdjustPortfolio models an advisor edit: a new portfolio with the allocation
// shifted by delta and every asset class clamped to [0, 100].
func (ce *CalculationEngine) AdjustPortfolio(portfolio domain.Portfolio, delta domain.Allocation) domain.Portfolio {
	adjusted := portfolio.WithAllocation(portfolio.Allocation.Adjust(delta))
	if !adjusted.Allocation.Total().Equal(portfolio.Allocation.Total()) {
		ce.Logger.Warnf("allocation for %s now totals %s%%", adjusted.Tier, adjusted.Allocation.Total().String())
	}
	return adjusted
}
