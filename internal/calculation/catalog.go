package calculation

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

func percent(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Catalog returns the three fixed allocation tiers in display order:
// Aggressive, Balanced, Safe. A fresh slice is returned on every call.
func Catalog() []domain.AllocationTier {
	return []domain.AllocationTier{
		{
			Name:                 domain.TierAggressive,
			ExpectedAnnualReturn: decimal.NewFromFloat(0.08),
			Allocation: domain.Allocation{
				Stocks:        percent(70),
				Bonds:         percent(15),
				REITs:         percent(5),
				International: percent(5),
				Alternatives:  percent(5),
				Cash:          percent(0),
			},
			RiskLevel:   domain.RiskLevelHigh,
			Description: "This high-growth portfolio aims to maximize returns through a higher allocation to stocks and growth assets. While it may experience more volatility in the short-term, it offers the potential for greater long-term returns.",
			ColorScheme: domain.ColorScheme{Primary: "#ef4444", Secondary: "#f87171", Accent: "#fca5a5"},
		},
		{
			Name:                 domain.TierBalanced,
			ExpectedAnnualReturn: decimal.NewFromFloat(0.06),
			Allocation: domain.Allocation{
				Stocks:        percent(50),
				Bonds:         percent(30),
				REITs:         percent(5),
				International: percent(5),
				Alternatives:  percent(5),
				Cash:          percent(5),
			},
			RiskLevel:   domain.RiskLevelMedium,
			Description: "This balanced portfolio offers a mix of growth and stability, providing a moderate level of risk. It's designed to capture market growth while also providing some downside protection during market downturns.",
			ColorScheme: domain.ColorScheme{Primary: "#3b82f6", Secondary: "#60a5fa", Accent: "#93c5fd"},
		},
		{
			Name:                 domain.TierSafe,
			ExpectedAnnualReturn: decimal.NewFromFloat(0.04),
			Allocation: domain.Allocation{
				Stocks:        percent(30),
				Bonds:         percent(50),
				REITs:         percent(5),
				International: percent(5),
				Alternatives:  percent(0),
				Cash:          percent(10),
			},
			RiskLevel:   domain.RiskLevelLow,
			Description: "This conservative portfolio prioritizes capital preservation and income generation over growth. It offers more stability during market fluctuations but may provide lower long-term returns compared to more aggressive portfolios.",
			ColorScheme: domain.ColorScheme{Primary: "#10b981", Secondary: "#34d399", Accent: "#6ee7b7"},
		},
	}
}

// TierByName looks up a catalog tier
func TierByName(name domain.TierName) (domain.AllocationTier, error) {
	for _, t := range Catalog() {
		if t.Name == name {
			return t, nil
		}
	}
	return domain.AllocationTier{}, domain.NewValidationError("catalog.lookup", "tier", fmt.Sprintf("unknown tier %q", name))
}
