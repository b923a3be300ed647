package handler

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// PortfoliosRequest generates the catalog portfolios for a profile. When
// Adjust is set the named tier is returned with the allocation delta applied.
type PortfoliosRequest struct {
	Profile domain.RetirementProfile `json:"profile"`
	Adjust  *AdjustRequest           `json:"adjust,omitempty"`
}

type AdjustRequest struct {
	Tier  domain.TierName   `json:"tier"`
	Delta domain.Allocation `json:"delta"`
}

type PortfoliosResponse struct {
	Portfolios []domain.Portfolio `json:"portfolios"`
	Adjusted   *domain.Portfolio  `json:"adjusted,omitempty"`
}

// SocialSecurityRequest mirrors the estimator inputs. A positive
// AnnualWithdrawal adds the income comparison to the response.
type SocialSecurityRequest struct {
	AverageIncome    decimal.Decimal `json:"average_income"`
	YearsWorked      int             `json:"years_worked"`
	ClaimingAge      int             `json:"claiming_age"`
	AnnualWithdrawal decimal.Decimal `json:"annual_withdrawal"`
	CompareAge       int             `json:"compare_age,omitempty"`
}

type SocialSecurityResponse struct {
	Estimate   domain.BenefitEstimate    `json:"estimate"`
	Comparison *domain.IncomeComparison  `json:"comparison,omitempty"`
	BreakEven  *domain.ClaimingBreakEven `json:"break_even,omitempty"`
}

// TierRequest carries a profile and the tier whose return drives the calculation.
// An empty tier selects the first catalog tier.
type TierRequest struct {
	Profile domain.RetirementProfile `json:"profile"`
	Tier    domain.TierName          `json:"tier"`
}

type DelayRequest struct {
	TierRequest
	Years int `json:"years"`
}

type TaxRequest struct {
	TierRequest
	Tax domain.TaxParams `json:"tax"`
}

type ProjectionRequest struct {
	TierRequest
	MilestoneYears []int `json:"milestone_years,omitempty"`
}

type ProjectionResponse struct {
	Projection         domain.LifetimeProjection       `json:"projection"`
	WithdrawalSchedule []domain.WithdrawalScheduleYear `json:"withdrawal_schedule"`
	Milestones         []domain.Milestone              `json:"milestones,omitempty"`
}
