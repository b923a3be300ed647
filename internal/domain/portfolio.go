package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// TierName identifies one of the fixed catalog tiers
type TierName string

const (
	TierAggressive TierName = "Aggressive"
	TierBalanced   TierName = "Balanced"
	TierSafe       TierName = "Safe"
)

// ParseTierName matches a tier name case-insensitively
func ParseTierName(s string) (TierName, error) {
	for _, t := range []TierName{TierAggressive, TierBalanced, TierSafe} {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tier %q (want Aggressive, Balanced or Safe)", s)
}

// UnmarshalYAML normalizes the tier spelling; an empty value is left empty
func (tn *TierName) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*tn = ""
		return nil
	}
	parsed, err := ParseTierName(raw)
	if err != nil {
		return err
	}
	*tn = parsed
	return nil
}

// RiskLevel is the risk class shown next to a tier
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "High"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelLow    RiskLevel = "Low"
)

// Allocation holds the percentage of a portfolio held in each asset class.
// Values are percent units (70 means 70%).
type Allocation struct {
	Stocks        decimal.Decimal `yaml:"stocks" json:"stocks"`
	Bonds         decimal.Decimal `yaml:"bonds" json:"bonds"`
	REITs         decimal.Decimal `yaml:"reits" json:"reits"`
	International decimal.Decimal `yaml:"international" json:"international"`
	Alternatives  decimal.Decimal `yaml:"alternatives" json:"alternatives"`
	Cash          decimal.Decimal `yaml:"cash" json:"cash"`
}

// AssetClasses lists the asset class names in display order
var AssetClasses = []string{"stocks", "bonds", "reits", "international", "alternatives", "cash"}

// Total returns the sum of all asset class percentages
func (a Allocation) Total() decimal.Decimal {
	return a.Stocks.Add(a.Bonds).Add(a.REITs).Add(a.International).Add(a.Alternatives).Add(a.Cash)
}

// ByClass returns the allocation keyed by asset class name
func (a Allocation) ByClass() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"stocks":        a.Stocks,
		"bonds":         a.Bonds,
		"reits":         a.REITs,
		"international": a.International,
		"alternatives":  a.Alternatives,
		"cash":          a.Cash,
	}
}

// Clamp returns a copy with every asset class limited to [0, 100]
func (a Allocation) Clamp() Allocation {
	return Allocation{
		Stocks:        clampPercent(a.Stocks),
		Bonds:         clampPercent(a.Bonds),
		REITs:         clampPercent(a.REITs),
		International: clampPercent(a.International),
		Alternatives:  clampPercent(a.Alternatives),
		Cash:          clampPercent(a.Cash),
	}
}

// Adjust applies per-class deltas and clamps the result
func (a Allocation) Adjust(delta Allocation) Allocation {
	return Allocation{
		Stocks:        a.Stocks.Add(delta.Stocks),
		Bonds:         a.Bonds.Add(delta.Bonds),
		REITs:         a.REITs.Add(delta.REITs),
		International: a.International.Add(delta.International),
		Alternatives:  a.Alternatives.Add(delta.Alternatives),
		Cash:          a.Cash.Add(delta.Cash),
	}.Clamp()
}

func clampPercent(v decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if v.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if v.GreaterThan(hundred) {
		return hundred
	}
	return v
}

// ColorScheme is presentation data carried along with a tier
type ColorScheme struct {
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
	Accent    string `yaml:"accent" json:"accent"`
}

// AllocationTier is a static risk class definition
type AllocationTier struct {
	Name                 TierName        `yaml:"name" json:"name"`
	ExpectedAnnualReturn decimal.Decimal `yaml:"expected_annual_return" json:"expected_annual_return"`
	Allocation           Allocation      `yaml:"allocation" json:"allocation"`
	RiskLevel            RiskLevel       `yaml:"risk_level" json:"risk_level"`
	Description          string          `yaml:"description" json:"description"`
	ColorScheme          ColorScheme     `yaml:"color_scheme" json:"color_scheme"`
}

// Portfolio is a tier projected against a profile. It is recomputed on demand
// and never mutated; edits produce a new value.
type Portfolio struct {
	Tier             TierName        `json:"tier"`
	ProjectedFund    decimal.Decimal `json:"projected_fund"`
	AnnualWithdrawal decimal.Decimal `json:"annual_withdrawal"`
	CAGR             decimal.Decimal `json:"cagr"`
	Allocation       Allocation      `json:"allocation"`
	RiskLevel        RiskLevel       `json:"risk_level"`
	Description      string          `json:"description"`
	ColorScheme      ColorScheme     `json:"color_scheme"`
}

// MonthlyWithdrawal returns AnnualWithdrawal / 12
func (p Portfolio) MonthlyWithdrawal() decimal.Decimal {
	return p.AnnualWithdrawal.Div(decimal.NewFromInt(12))
}

// WithAllocation returns a copy of the portfolio holding the given allocation, clamped per class
func (p Portfolio) WithAllocation(a Allocation) Portfolio {
	p.Allocation = a.Clamp()
	return p
}
