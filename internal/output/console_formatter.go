package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Age %d -> %d, savings %s, income %s\n",
		report.Profile.Age, report.Profile.RetirementAge,
		FormatCurrency(report.Profile.CurrentSavings), FormatCurrency(report.Profile.AnnualIncome))
	fmt.Fprintln(&buf)
	for _, pf := range report.Portfolios {
		fmt.Fprintf(&buf, "%s: Return=%s Fund=%s Withdrawal=%s/yr (%s/mo)\n",
			pf.Tier,
			FormatRate(pf.CAGR),
			FormatCurrency(pf.ProjectedFund),
			FormatCurrency(pf.AnnualWithdrawal),
			FormatCurrency(pf.MonthlyWithdrawal()),
		)
	}
	if ss := report.SocialSecurity; ss != nil {
		fmt.Fprintf(&buf, "Social Security at %d: %s/mo\n", ss.ClaimingAge, FormatCurrency(ss.MonthlyBenefit))
	}
	if c := report.Contribution; c != nil && c.Direction == domain.DirectionInverse {
		fmt.Fprintf(&buf, "Save %s/mo to reach %s\n", FormatCurrency(c.MonthlyContribution), FormatCurrency(c.TargetAmount))
	}
	if d := report.Delay; d != nil {
		fmt.Fprintf(&buf, "Retiring %d years later adds %s (%s)\n", d.DelayYears, FormatCurrency(d.Difference), FormatPercentage(d.PercentageIncrease))
	}
	if report.SelectedTier != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Selected: %s\n", report.SelectedTier)
	}
	return buf.Bytes(), nil
}
