package domain

import (
	"github.com/shopspring/decimal"
)

// Configuration is the planner input file: one profile, the shared
// assumptions and the optional calculator runs for a report.
type Configuration struct {
	Profile     RetirementProfile `yaml:"profile" json:"profile"`
	Assumptions Assumptions       `yaml:"assumptions" json:"assumptions"`
	Calculators CalculatorInputs  `yaml:"calculators" json:"calculators"`
}

// CalculatorInputs selects which standalone calculators run when building a
// plan report. Nil sections are skipped.
type CalculatorInputs struct {
	// SelectedTier picks the portfolio the calculators run against; defaults to the first tier.
	SelectedTier   TierName             `yaml:"selected_tier,omitempty" json:"selected_tier,omitempty"`
	SocialSecurity *SocialSecurityInput `yaml:"social_security,omitempty" json:"social_security,omitempty"`
	Contribution   *ContributionInput   `yaml:"contribution,omitempty" json:"contribution,omitempty"`
	Delay          *DelayInput          `yaml:"delay,omitempty" json:"delay,omitempty"`
	Tax            *TaxParams           `yaml:"tax,omitempty" json:"tax,omitempty"`
	Projection     bool                 `yaml:"projection,omitempty" json:"projection,omitempty"`
	MilestoneYears []int                `yaml:"milestone_years,omitempty" json:"milestone_years,omitempty"`
}

// SocialSecurityInput holds the estimator inputs; a zero AverageIncome means
// "use the profile's annual income".
type SocialSecurityInput struct {
	AverageIncome decimal.Decimal `yaml:"average_income" json:"average_income"`
	YearsWorked   int             `yaml:"years_worked" json:"years_worked"`
	ClaimingAge   int             `yaml:"claiming_age" json:"claiming_age"`
	// CompareAge, when set, adds a break-even comparison against ClaimingAge.
	CompareAge int `yaml:"compare_age,omitempty" json:"compare_age,omitempty"`
}

// ContributionInput is a ContributionRequest whose rate comes from the selected
// portfolio. A forward input without a monthly contribution saves the profile's
// default contribution.
type ContributionInput struct {
	Direction           Direction        `yaml:"direction" json:"direction"`
	Years               int              `yaml:"years" json:"years"`
	MonthlyContribution *decimal.Decimal `yaml:"monthly_contribution,omitempty" json:"monthly_contribution,omitempty"`
	TargetAmount        decimal.Decimal  `yaml:"target_amount,omitempty" json:"target_amount,omitempty"`
}

// DelayInput holds the number of years retirement is postponed
type DelayInput struct {
	Years int `yaml:"years" json:"years"`
}

// PlanReport aggregates a full planning session for the output formatters
type PlanReport struct {
	Profile        RetirementProfile        `json:"profile"`
	Assumptions    []string                 `json:"assumptions"`
	Portfolios     []Portfolio              `json:"portfolios"`
	SelectedTier   TierName                 `json:"selected_tier"`
	SocialSecurity *BenefitEstimate         `json:"social_security,omitempty"`
	IncomeCompare  *IncomeComparison        `json:"income_comparison,omitempty"`
	BreakEven      *ClaimingBreakEven       `json:"break_even,omitempty"`
	Contribution   *ContributionResult      `json:"contribution,omitempty"`
	Delay          *DelayResult             `json:"delay,omitempty"`
	Tax            *TaxResult               `json:"tax,omitempty"`
	Projection     *LifetimeProjection      `json:"projection,omitempty"`
	Withdrawals    []WithdrawalScheduleYear `json:"withdrawal_schedule,omitempty"`
	Milestones     []Milestone              `json:"milestones,omitempty"`
}

// SelectedPortfolio returns the portfolio matching SelectedTier
func (r *PlanReport) SelectedPortfolio() (Portfolio, bool) {
	for _, p := range r.Portfolios {
		if p.Tier == r.SelectedTier {
			return p, true
		}
	}
	return Portfolio{}, false
}
