package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/internal/output"
)

func portfoliosCmd() *cobra.Command {
	var pf profileFlags
	var format string
	cmd := &cobra.Command{
		Use:   "portfolios",
		Short: "Project the profile against every allocation tier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := pf.profile()
			if err != nil {
				return err
			}
			portfolios, err := engine.GeneratePortfolios(profile)
			if err != nil {
				return err
			}
			report := &domain.PlanReport{
				Profile:      profile,
				Assumptions:  engine.Assumptions.GenerateAssumptions(),
				Portfolios:   portfolios,
				SelectedTier: portfolios[0].Tier,
			}
			return render(cmd.OutOrStdout(), report, format)
		},
	}
	pf.register(cmd, false)
	cmd.Flags().StringVarP(&format, "format", "f", "console-lite", "output format")
	return cmd
}

func socialSecurityCmd() *cobra.Command {
	var (
		income      float64
		yearsWorked int
		claimingAge int
		compareAge  int
	)
	cmd := &cobra.Command{
		Use:     "social-security",
		Aliases: []string{"ss"},
		Short:   "Estimate the monthly Social Security benefit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			est, err := engine.EstimateSocialSecurity(decimal.NewFromFloat(income), yearsWorked, claimingAge)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Base PIA:          %s\n", output.FormatCurrency(est.BasePIA))
			fmt.Fprintf(w, "Age adjustment:    %s\n", output.FormatPercentage(est.AdjustmentPercent))
			fmt.Fprintf(w, "Monthly benefit:   %s\n", output.FormatCurrency(est.MonthlyBenefit))
			fmt.Fprintf(w, "Annual benefit:    %s\n", output.FormatCurrency(est.AnnualBenefit))
			if compareAge != 0 && compareAge != claimingAge {
				earlier, later := min(claimingAge, compareAge), max(claimingAge, compareAge)
				be, err := engine.ClaimingBreakEven(decimal.NewFromFloat(income), yearsWorked, earlier, later)
				if err != nil {
					return err
				}
				if be.Reached {
					fmt.Fprintf(w, "Break-even:        claiming at %d overtakes %d at age %s\n", later, earlier, be.BreakEvenAge.StringFixed(1))
				} else {
					fmt.Fprintf(w, "Break-even:        claiming at %d never overtakes %d\n", later, earlier)
				}
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, est.Disclaimer)
			return nil
		},
	}
	cmd.Flags().Float64Var(&income, "income", 0, "average annual income")
	cmd.Flags().IntVar(&yearsWorked, "years-worked", 35, "years of covered earnings")
	cmd.Flags().IntVar(&claimingAge, "claiming-age", 67, "age benefits start (62-70)")
	cmd.Flags().IntVar(&compareAge, "compare-age", 0, "second claiming age for a break-even comparison")
	return cmd
}

func contributionCmd() *cobra.Command {
	var pf profileFlags
	var (
		direction string
		rate      float64
		years     int
		monthly   float64
		target    float64
	)
	cmd := &cobra.Command{
		Use:   "contribution",
		Short: "Solve for the final balance or the monthly contribution needed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := domain.ParseDirection(direction)
			if err != nil {
				return err
			}
			payment := decimal.NewFromFloat(monthly)
			if !cmd.Flags().Changed("monthly") && cmd.Flags().Changed("income") {
				profile, err := pf.profile()
				if err != nil {
					return err
				}
				payment = engine.DefaultMonthlyContribution(profile)
			}
			res, err := engine.SolveContribution(domain.ContributionRequest{
				Direction:           d,
				AnnualRate:          decimal.NewFromFloat(rate),
				Years:               years,
				MonthlyContribution: payment,
				TargetAmount:        decimal.NewFromFloat(target),
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if res.Direction == domain.DirectionInverse {
				fmt.Fprintf(w, "Required monthly:  %s to reach %s\n", output.FormatCurrency(res.MonthlyContribution), output.FormatCurrency(res.TargetAmount))
			} else {
				fmt.Fprintf(w, "Monthly:           %s\n", output.FormatCurrency(res.MonthlyContribution))
			}
			fmt.Fprintf(w, "Final balance:     %s\n", output.FormatCurrency(res.FinalBalance))
			fmt.Fprintf(w, "Contributions:     %s over %d months\n", output.FormatCurrency(res.TotalContributions), res.Months)
			fmt.Fprintf(w, "Interest earned:   %s\n", output.FormatCurrency(res.TotalInterest))
			return nil
		},
	}
	cmd.Flags().StringVar(&direction, "direction", "forward", "forward (balance from contribution) or inverse (contribution from target)")
	cmd.Flags().Float64Var(&rate, "rate", 0.07, "annual return rate")
	cmd.Flags().IntVar(&years, "years", 30, "years of saving")
	cmd.Flags().Float64Var(&monthly, "monthly", 500, "monthly contribution (forward); defaults to the saving rate applied to --income when that is given")
	cmd.Flags().Float64Var(&target, "target", 1000000, "target balance (inverse)")
	pf.register(cmd, false)
	return cmd
}

func delayCmd() *cobra.Command {
	var pf profileFlags
	var years int
	cmd := &cobra.Command{
		Use:   "delay",
		Short: "Compare retiring on schedule with retiring later",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, portfolio, err := pf.portfolio()
			if err != nil {
				return err
			}
			res, err := engine.ComputeDelayImpact(profile, portfolio, years)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s portfolio, retiring at %d instead of %d\n", portfolio.Tier, profile.RetirementAge+years, profile.RetirementAge)
			fmt.Fprintf(w, "Balance:            %s -> %s (+%s, %s)\n", output.FormatCurrency(res.OriginalBalance),
				output.FormatCurrency(res.DelayedBalance), output.FormatCurrency(res.Difference), output.FormatPercentage(res.PercentageIncrease))
			fmt.Fprintf(w, "Annual withdrawal:  %s -> %s\n", output.FormatCurrency(res.AnnualWithdrawalOriginal), output.FormatCurrency(res.AnnualWithdrawalDelayed))
			fmt.Fprintf(w, "Monthly withdrawal: %s -> %s\n", output.FormatCurrency(res.MonthlyWithdrawalOriginal), output.FormatCurrency(res.MonthlyWithdrawalDelayed))
			fmt.Fprintf(w, "Extra contributions: %s\n", output.FormatCurrency(res.ExtraContributions))
			return nil
		},
	}
	pf.register(cmd, true)
	cmd.Flags().IntVar(&years, "years", 5, fmt.Sprintf("years to delay (0-%d)", calculation.MaxDelayYears))
	return cmd
}

func taxCmd() *cobra.Command {
	var pf profileFlags
	var current, retirement, state float64
	var account string
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Illustrate the tax treatment of traditional and Roth contributions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, portfolio, err := pf.portfolio()
			if err != nil {
				return err
			}
			at, err := domain.ParseAccountType(account)
			if err != nil {
				return err
			}
			res, err := engine.ComputeTaxImpact(profile, portfolio, domain.TaxParams{
				CurrentTaxRate:    decimal.NewFromFloat(current),
				RetirementTaxRate: decimal.NewFromFloat(retirement),
				StateTaxRate:      decimal.NewFromFloat(state),
				AccountType:       at,
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Account type:             %s\n", res.AccountType)
			fmt.Fprintf(w, "Tax savings today:        %s/yr\n", output.FormatCurrencyCents(res.CurrentTaxSavings))
			fmt.Fprintf(w, "Effective retirement rate: %s\n", output.FormatRate(res.EffectiveRetirementTax))
			fmt.Fprintf(w, "After-tax withdrawal:     %s/yr\n", output.FormatCurrency(res.AfterTaxWithdrawal))
			fmt.Fprintf(w, "Net lifetime effect:      %s\n", output.FormatCurrency(res.NetTaxEffect))
			fmt.Fprintln(w)
			fmt.Fprintln(w, res.Disclaimer)
			return nil
		},
	}
	defaults := domain.DefaultTaxParams()
	pf.register(cmd, true)
	cmd.Flags().Float64Var(&current, "current-rate", defaults.CurrentTaxRate.InexactFloat64(), "current marginal tax rate")
	cmd.Flags().Float64Var(&retirement, "retirement-rate", defaults.RetirementTaxRate.InexactFloat64(), "federal tax rate in retirement")
	cmd.Flags().Float64Var(&state, "state-rate", defaults.StateTaxRate.InexactFloat64(), "state tax rate in retirement")
	cmd.Flags().StringVar(&account, "account", string(defaults.AccountType), "account type (traditional, roth)")
	return cmd
}

func projectCmd() *cobra.Command {
	var pf profileFlags
	var milestones []int
	var format string
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a portfolio year by year through retirement",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, portfolio, err := pf.portfolio()
			if err != nil {
				return err
			}
			projection, err := engine.ProjectLifetime(profile, portfolio)
			if err != nil {
				return err
			}
			report := &domain.PlanReport{
				Profile:      profile,
				Portfolios:   []domain.Portfolio{portfolio},
				SelectedTier: portfolio.Tier,
				Projection:   &projection,
				Withdrawals:  engine.WithdrawalSchedule(portfolio, engine.Assumptions.RetirementYears),
			}
			if len(milestones) > 0 {
				if report.Milestones, err = engine.Milestones(profile, portfolio, milestones); err != nil {
					return err
				}
			}
			return render(cmd.OutOrStdout(), report, format)
		},
	}
	pf.register(cmd, true)
	cmd.Flags().StringVarP(&format, "format", "f", "detailed-csv", "output format")
	cmd.Flags().IntSliceVar(&milestones, "milestones", nil, "also compute balances after these years (e.g. 10,20,30)")
	return cmd
}

func render(w io.Writer, report *domain.PlanReport, format string) error {
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
