package output

import (
	"github.com/rpgo/retirement-planner/internal/domain"
)

// GeneralDisclaimer closes every rendered report.
const GeneralDisclaimer = "This report includes projections that are hypothetical in nature and based on assumptions " +
	"that may not represent actual results. Past performance is not indicative of future results. " +
	"It is provided for educational purposes only and is not investment, legal, or tax advice."

// DefaultAssumptions lists the modeling assumptions used when a report carries none.
var DefaultAssumptions = domain.DefaultAssumptions().GenerateAssumptions()

// reportAssumptions returns the report's assumptions or the defaults.
func reportAssumptions(report *domain.PlanReport) []string {
	if len(report.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return report.Assumptions
}

// Disclaimers collects the calculator disclaimers present in the report
// followed by the general disclaimer.
func Disclaimers(report *domain.PlanReport) []string {
	var out []string
	if report.SocialSecurity != nil && report.SocialSecurity.Disclaimer != "" {
		out = append(out, report.SocialSecurity.Disclaimer)
	}
	if report.Tax != nil && report.Tax.Disclaimer != "" {
		out = append(out, report.Tax.Disclaimer)
	}
	return append(out, GeneralDisclaimer)
}
