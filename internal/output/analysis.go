package output

import (
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// PortfolioComparison sets one portfolio against the most conservative tier.
type PortfolioComparison struct {
	Tier              domain.TierName
	ProjectedFund     decimal.Decimal
	MonthlyWithdrawal decimal.Decimal
	GainOverSafest    decimal.Decimal
	PercentOverSafest decimal.Decimal
	Selected          bool
}

// ComparePortfolios measures every portfolio against the last (safest) tier
// in catalog order. Extracted from the formatters for testability.
func ComparePortfolios(report *domain.PlanReport) []PortfolioComparison {
	if len(report.Portfolios) == 0 {
		return nil
	}
	baseline := report.Portfolios[len(report.Portfolios)-1].ProjectedFund

	comparisons := make([]PortfolioComparison, 0, len(report.Portfolios))
	for _, p := range report.Portfolios {
		gain := p.ProjectedFund.Sub(baseline)
		pct := decimal.Zero
		if baseline.IsPositive() {
			pct = gain.Div(baseline).Mul(decimalHundred)
		}
		comparisons = append(comparisons, PortfolioComparison{
			Tier:              p.Tier,
			ProjectedFund:     p.ProjectedFund,
			MonthlyWithdrawal: p.MonthlyWithdrawal(),
			GainOverSafest:    gain,
			PercentOverSafest: pct,
			Selected:          p.Tier == report.SelectedTier,
		})
	}
	return comparisons
}
