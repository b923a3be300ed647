package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// BenefitEstimate is the output of the Social Security estimator
type BenefitEstimate struct {
	AverageIncome     decimal.Decimal `json:"average_income"`
	YearsWorked       int             `json:"years_worked"`
	ClaimingAge       int             `json:"claiming_age"`
	BasePIA           decimal.Decimal `json:"base_pia"`
	AdjustmentPercent decimal.Decimal `json:"adjustment_percent"` // signed, e.g. -30 at 62
	MonthlyBenefit    decimal.Decimal `json:"monthly_benefit"`
	AnnualBenefit     decimal.Decimal `json:"annual_benefit"`
	Disclaimer        string          `json:"disclaimer"`
}

// IncomeComparison puts a Social Security estimate next to a portfolio withdrawal
type IncomeComparison struct {
	PortfolioWithdrawal   decimal.Decimal `json:"portfolio_withdrawal"`
	SocialSecurityAnnual  decimal.Decimal `json:"social_security_annual"`
	TotalAnnualIncome     decimal.Decimal `json:"total_annual_income"`
	SocialSecurityPercent decimal.Decimal `json:"social_security_percent"` // SS relative to the withdrawal
}

// Direction selects which side of the annuity relationship is solved
type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionInverse Direction = "inverse"
)

// ParseDirection accepts forward/inverse and a few synonyms
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "fv", "future-value":
		return DirectionForward, nil
	case "inverse", "target", "required":
		return DirectionInverse, nil
	default:
		return "", fmt.Errorf("unknown direction %q (want forward or inverse)", s)
	}
}

// UnmarshalYAML normalizes the direction spelling
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseDirection(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ContributionRequest parameterizes the contribution solver. AnnualRate is
// normally the CAGR of the selected portfolio.
type ContributionRequest struct {
	Direction           Direction       `yaml:"direction" json:"direction"`
	AnnualRate          decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	Years               int             `yaml:"years" json:"years"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution,omitempty" json:"monthly_contribution,omitempty"`
	TargetAmount        decimal.Decimal `yaml:"target_amount,omitempty" json:"target_amount,omitempty"`
}

// ContributionResult is the outcome of either solver direction. For the
// inverse direction the balance fields describe the rounded-up contribution.
type ContributionResult struct {
	Direction           Direction       `json:"direction"`
	MonthlyRate         decimal.Decimal `json:"monthly_rate"`
	Months              int             `json:"months"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	TargetAmount        decimal.Decimal `json:"target_amount,omitempty"`
	FinalBalance        decimal.Decimal `json:"final_balance"`
	TotalContributions  decimal.Decimal `json:"total_contributions"`
	TotalInterest       decimal.Decimal `json:"total_interest"`
}

// DelayResult compares retiring on schedule with retiring DelayYears later
type DelayResult struct {
	DelayYears                int             `json:"delay_years"`
	OriginalBalance           decimal.Decimal `json:"original_balance"`
	DelayedBalance            decimal.Decimal `json:"delayed_balance"`
	Difference                decimal.Decimal `json:"difference"`
	PercentageIncrease        decimal.Decimal `json:"percentage_increase"`
	AnnualWithdrawalOriginal  decimal.Decimal `json:"annual_withdrawal_original"`
	AnnualWithdrawalDelayed   decimal.Decimal `json:"annual_withdrawal_delayed"`
	AnnualWithdrawalDiff      decimal.Decimal `json:"annual_withdrawal_difference"`
	MonthlyWithdrawalOriginal decimal.Decimal `json:"monthly_withdrawal_original"`
	MonthlyWithdrawalDelayed  decimal.Decimal `json:"monthly_withdrawal_delayed"`
	MonthlyWithdrawalDiff     decimal.Decimal `json:"monthly_withdrawal_difference"`
	ExtraContributions        decimal.Decimal `json:"extra_contributions"`
}

// AccountType distinguishes pre-tax and post-tax retirement accounts
type AccountType string

const (
	AccountTraditional AccountType = "traditional"
	AccountRoth        AccountType = "roth"
)

// UnmarshalYAML normalizes the account type spelling
func (at *AccountType) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseAccountType(raw)
	if err != nil {
		return err
	}
	*at = parsed
	return nil
}

// ParseAccountType accepts traditional or roth, case-insensitively
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "traditional", "pre-tax", "":
		return AccountTraditional, nil
	case "roth":
		return AccountRoth, nil
	default:
		return "", fmt.Errorf("unknown account type %q (want traditional or roth)", s)
	}
}

// TaxParams holds the tax inputs. Rates are decimals (0.25 is 25%).
type TaxParams struct {
	CurrentTaxRate    decimal.Decimal `yaml:"current_tax_rate" json:"current_tax_rate"`
	RetirementTaxRate decimal.Decimal `yaml:"retirement_tax_rate" json:"retirement_tax_rate"`
	StateTaxRate      decimal.Decimal `yaml:"state_tax_rate" json:"state_tax_rate"`
	AccountType       AccountType     `yaml:"account_type" json:"account_type"`
}

// DefaultTaxParams mirrors the calculator's starting values
func DefaultTaxParams() TaxParams {
	return TaxParams{
		CurrentTaxRate:    decimal.NewFromFloat(0.25),
		RetirementTaxRate: decimal.NewFromFloat(0.15),
		StateTaxRate:      decimal.NewFromFloat(0.05),
		AccountType:       AccountTraditional,
	}
}

// TaxResult is a comparative illustration, not a tax-law simulation
type TaxResult struct {
	AccountType            AccountType     `json:"account_type"`
	AnnualContribution     decimal.Decimal `json:"annual_contribution"`
	CurrentTaxSavings      decimal.Decimal `json:"current_tax_savings"`
	EffectiveRetirementTax decimal.Decimal `json:"effective_retirement_tax_rate"`
	AnnualWithdrawal       decimal.Decimal `json:"annual_withdrawal"`
	AnnualTaxInRetirement  decimal.Decimal `json:"annual_tax_in_retirement"`
	AfterTaxWithdrawal     decimal.Decimal `json:"after_tax_withdrawal"`
	TotalContributions     decimal.Decimal `json:"total_contributions"`
	LifetimeTaxSavings     decimal.Decimal `json:"lifetime_tax_savings"`
	LifetimeTaxPayments    decimal.Decimal `json:"lifetime_tax_payments"`
	NetTaxEffect           decimal.Decimal `json:"net_tax_effect"`
	Disclaimer             string          `json:"disclaimer"`
}

// ProjectionYear is one row of a lifetime projection
type ProjectionYear struct {
	Year         int             `json:"year"`
	Age          int             `json:"age"`
	Retired      bool            `json:"retired"`
	Contribution decimal.Decimal `json:"contribution"`
	Growth       decimal.Decimal `json:"growth"`
	Withdrawal   decimal.Decimal `json:"withdrawal"`
	Balance      decimal.Decimal `json:"balance"`
}

// LifetimeProjection follows a portfolio through accumulation and drawdown
type LifetimeProjection struct {
	Tier          TierName         `json:"tier"`
	Years         []ProjectionYear `json:"years"`
	PeakBalance   decimal.Decimal  `json:"peak_balance"`
	PeakAge       int              `json:"peak_age"`
	DepletionAge  int              `json:"depletion_age,omitempty"` // 0 when never depleted
	FinalBalance  decimal.Decimal  `json:"final_balance"`
	RetirementAge int              `json:"retirement_age"`
}

// WithdrawalScheduleYear compares the flat nominal withdrawal with its inflation-adjusted equivalent
type WithdrawalScheduleYear struct {
	Year              int             `json:"year"`
	Nominal           decimal.Decimal `json:"nominal"`
	InflationAdjusted decimal.Decimal `json:"inflation_adjusted"`
}

// Milestone is the projected balance after a number of years
type Milestone struct {
	Years   int             `json:"years"`
	Balance decimal.Decimal `json:"balance"`
}

// ClaimingBreakEven compares claiming Social Security at two ages. BreakEvenAge
// is the fractional age at which the cumulative benefits of the later claim
// catch up with the earlier claim.
type ClaimingBreakEven struct {
	EarlierAge       int             `json:"earlier_age"`
	LaterAge         int             `json:"later_age"`
	EarlierMonthly   decimal.Decimal `json:"earlier_monthly"`
	LaterMonthly     decimal.Decimal `json:"later_monthly"`
	Reached          bool            `json:"reached"`
	BreakEvenAge     decimal.Decimal `json:"break_even_age,omitempty"`
	CumulativeAmount decimal.Decimal `json:"cumulative_amount,omitempty"`
}
