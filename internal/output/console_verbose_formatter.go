package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the full plan report as plain text.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	rule := strings.Repeat("=", 81)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "RETIREMENT PLAN REPORT")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	p := report.Profile
	fmt.Fprintln(&buf, "PROFILE")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Current Age:          %d\n", p.Age)
	fmt.Fprintf(&buf, "  Retirement Age:       %d (%d years away)\n", p.RetirementAge, p.YearsToRetirement())
	fmt.Fprintf(&buf, "  Current Savings:      %s\n", FormatCurrency(p.CurrentSavings))
	fmt.Fprintf(&buf, "  Annual Income:        %s\n", FormatCurrency(p.AnnualIncome))
	fmt.Fprintf(&buf, "  Risk Tolerance:       %s\n", p.RiskTolerance)
	if p.DesiredLifestyle != "" {
		fmt.Fprintf(&buf, "  Desired Lifestyle:    %s\n", p.DesiredLifestyle)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range reportAssumptions(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writePortfolios(&buf, report)
	writeCalculators(&buf, report)

	fmt.Fprintln(&buf, "IMPORTANT DISCLAIMERS")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	for _, d := range Disclaimers(report) {
		fmt.Fprintf(&buf, "* %s\n", d)
	}
	return buf.Bytes(), nil
}

func writePortfolios(buf *bytes.Buffer, report *domain.PlanReport) {
	fmt.Fprintln(buf, "PORTFOLIO OPTIONS")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	for _, pf := range report.Portfolios {
		marker := ""
		if pf.Tier == report.SelectedTier {
			marker = " (selected)"
		}
		fmt.Fprintf(buf, "%s PORTFOLIO%s\n", strings.ToUpper(string(pf.Tier)), marker)
		fmt.Fprintf(buf, "  Expected Return:      %s\n", FormatRate(pf.CAGR))
		fmt.Fprintf(buf, "  Risk Level:           %s\n", pf.RiskLevel)
		fmt.Fprintf(buf, "  Projected Fund:       %s\n", FormatCurrency(pf.ProjectedFund))
		fmt.Fprintf(buf, "  Annual Withdrawal:    %s\n", FormatCurrency(pf.AnnualWithdrawal))
		fmt.Fprintf(buf, "  Monthly Withdrawal:   %s\n", FormatCurrency(pf.MonthlyWithdrawal()))
		fmt.Fprintln(buf, "  Allocation:")
		classes := pf.Allocation.ByClass()
		for _, class := range domain.AssetClasses {
			fmt.Fprintf(buf, "    %-14s %s%%\n", class, classes[class].StringFixed(0))
		}
		fmt.Fprintf(buf, "  %s\n", pf.Description)
		fmt.Fprintln(buf)
	}

	fmt.Fprintln(buf, "COMPARISON WITH SAFEST TIER")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	for _, cmp := range ComparePortfolios(report) {
		fmt.Fprintf(buf, "  %-12s %14s  %s  (%s)\n", cmp.Tier, FormatCurrency(cmp.ProjectedFund),
			signedCurrency(cmp.GainOverSafest), FormatPercentage(cmp.PercentOverSafest))
	}
	fmt.Fprintln(buf)
}

func writeCalculators(buf *bytes.Buffer, report *domain.PlanReport) {
	if ss := report.SocialSecurity; ss != nil {
		fmt.Fprintln(buf, "SOCIAL SECURITY ESTIMATE")
		fmt.Fprintln(buf, strings.Repeat("-", 40))
		fmt.Fprintf(buf, "  Average Income:       %s\n", FormatCurrency(ss.AverageIncome))
		fmt.Fprintf(buf, "  Years Worked:         %d\n", ss.YearsWorked)
		fmt.Fprintf(buf, "  Claiming Age:         %d\n", ss.ClaimingAge)
		fmt.Fprintf(buf, "  Base PIA:             %s\n", FormatCurrency(ss.BasePIA))
		fmt.Fprintf(buf, "  Age Adjustment:       %s\n", FormatPercentage(ss.AdjustmentPercent))
		fmt.Fprintf(buf, "  Monthly Benefit:      %s\n", FormatCurrency(ss.MonthlyBenefit))
		fmt.Fprintf(buf, "  Annual Benefit:       %s\n", FormatCurrency(ss.AnnualBenefit))
		if ic := report.IncomeCompare; ic != nil {
			fmt.Fprintf(buf, "  Portfolio Withdrawal: %s\n", FormatCurrency(ic.PortfolioWithdrawal))
			fmt.Fprintf(buf, "  Total Annual Income:  %s\n", FormatCurrency(ic.TotalAnnualIncome))
			fmt.Fprintf(buf, "  SS vs Withdrawal:     %s\n", FormatPercentage(ic.SocialSecurityPercent))
		}
		if be := report.BreakEven; be != nil {
			if be.Reached {
				fmt.Fprintf(buf, "  Break-even %d vs %d:  age %s\n", be.EarlierAge, be.LaterAge, be.BreakEvenAge.StringFixed(1))
			} else {
				fmt.Fprintf(buf, "  Break-even %d vs %d:  not reached\n", be.EarlierAge, be.LaterAge)
			}
		}
		fmt.Fprintln(buf)
	}

	if c := report.Contribution; c != nil {
		fmt.Fprintln(buf, "CONTRIBUTION CALCULATOR")
		fmt.Fprintln(buf, strings.Repeat("-", 40))
		fmt.Fprintf(buf, "  Direction:            %s\n", c.Direction)
		fmt.Fprintf(buf, "  Months:               %d\n", c.Months)
		if c.Direction == domain.DirectionInverse {
			fmt.Fprintf(buf, "  Target Amount:        %s\n", FormatCurrency(c.TargetAmount))
			fmt.Fprintf(buf, "  Required Monthly:     %s\n", FormatCurrency(c.MonthlyContribution))
		} else {
			fmt.Fprintf(buf, "  Monthly Contribution: %s\n", FormatCurrency(c.MonthlyContribution))
		}
		fmt.Fprintf(buf, "  Final Balance:        %s\n", FormatCurrency(c.FinalBalance))
		fmt.Fprintf(buf, "  Total Contributions:  %s\n", FormatCurrency(c.TotalContributions))
		fmt.Fprintf(buf, "  Total Interest:       %s\n", FormatCurrency(c.TotalInterest))
		fmt.Fprintln(buf)
	}

	if d := report.Delay; d != nil {
		fmt.Fprintf(buf, "DELAYING RETIREMENT BY %d YEARS\n", d.DelayYears)
		fmt.Fprintln(buf, strings.Repeat("-", 40))
		fmt.Fprintf(buf, "  Original Balance:     %s\n", FormatCurrency(d.OriginalBalance))
		fmt.Fprintf(buf, "  Delayed Balance:      %s\n", FormatCurrency(d.DelayedBalance))
		fmt.Fprintf(buf, "  Difference:           %s (%s)\n", FormatCurrency(d.Difference), FormatPercentage(d.PercentageIncrease))
		fmt.Fprintf(buf, "  Annual Withdrawal:    %s -> %s\n", FormatCurrency(d.AnnualWithdrawalOriginal), FormatCurrency(d.AnnualWithdrawalDelayed))
		fmt.Fprintf(buf, "  Monthly Withdrawal:   %s -> %s\n", FormatCurrency(d.MonthlyWithdrawalOriginal), FormatCurrency(d.MonthlyWithdrawalDelayed))
		fmt.Fprintf(buf, "  Extra Contributions:  %s\n", FormatCurrency(d.ExtraContributions))
		fmt.Fprintln(buf)
	}

	if t := report.Tax; t != nil {
		fmt.Fprintf(buf, "TAX IMPACT (%s)\n", strings.ToUpper(string(t.AccountType)))
		fmt.Fprintln(buf, strings.Repeat("-", 40))
		fmt.Fprintf(buf, "  Annual Contribution:  %s\n", FormatCurrency(t.AnnualContribution))
		fmt.Fprintf(buf, "  Current Tax Savings:  %s\n", FormatCurrency(t.CurrentTaxSavings))
		fmt.Fprintf(buf, "  Retirement Tax Rate:  %s\n", FormatRate(t.EffectiveRetirementTax))
		fmt.Fprintf(buf, "  Annual Tax:           %s\n", FormatCurrency(t.AnnualTaxInRetirement))
		fmt.Fprintf(buf, "  After-Tax Withdrawal: %s\n", FormatCurrency(t.AfterTaxWithdrawal))
		fmt.Fprintf(buf, "  Net Lifetime Effect:  %s\n", FormatCurrency(t.NetTaxEffect))
		fmt.Fprintln(buf)
	}

	if pr := report.Projection; pr != nil {
		fmt.Fprintf(buf, "LIFETIME PROJECTION (%s)\n", pr.Tier)
		fmt.Fprintln(buf, strings.Repeat("-", 40))
		fmt.Fprintf(buf, "  %-5s %-8s %16s %16s\n", "Age", "Phase", "Withdrawal", "Balance")
		for _, y := range pr.Years {
			if y.Year%5 != 0 && y.Age != pr.RetirementAge {
				continue
			}
			phase := "saving"
			if y.Retired {
				phase = "retired"
			}
			fmt.Fprintf(buf, "  %-5d %-8s %16s %16s\n", y.Age, phase, FormatCurrency(y.Withdrawal), FormatCurrency(y.Balance))
		}
		fmt.Fprintf(buf, "  Peak Balance:         %s at age %d\n", FormatCurrency(pr.PeakBalance), pr.PeakAge)
		if pr.DepletionAge > 0 {
			fmt.Fprintf(buf, "  Depleted at age:      %d\n", pr.DepletionAge)
		}
		fmt.Fprintln(buf)
	}

	if len(report.Withdrawals) > 0 {
		last := report.Withdrawals[len(report.Withdrawals)-1]
		fmt.Fprintln(buf, "INFLATION")
		fmt.Fprintln(buf, strings.Repeat("-", 40))
		fmt.Fprintf(buf, "  Withdrawal needed in year %d to match today's %s: %s\n",
			last.Year, FormatCurrency(last.Nominal), FormatCurrency(last.InflationAdjusted))
		fmt.Fprintln(buf)
	}

	if len(report.Milestones) > 0 {
		fmt.Fprintln(buf, "MILESTONES")
		fmt.Fprintln(buf, strings.Repeat("-", 40))
		for _, m := range report.Milestones {
			fmt.Fprintf(buf, "  In %2d years:          %s\n", m.Years, FormatCurrency(m.Balance))
		}
		fmt.Fprintln(buf)
	}
}

func signedCurrency(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return "+" + FormatCurrency(amount)
	}
	return FormatCurrency(amount)
}
