package calculation

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// CalculationEngine runs every planner calculation against one set of
// assumptions. It holds no mutable state besides its logger, so a single
// engine may serve concurrent callers.
type CalculationEngine struct {
	Assumptions domain.Assumptions
	Logger      Logger
}

// NewCalculationEngine creates an engine with the default assumptions
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Assumptions: domain.DefaultAssumptions(),
		Logger:      NopLogger{},
	}
}

// NewCalculationEngineWithAssumptions creates an engine with caller supplied assumptions
func NewCalculationEngineWithAssumptions(assumptions domain.Assumptions) (*CalculationEngine, error) {
	if err := assumptions.Validate(); err != nil {
		return nil, err
	}
	return &CalculationEngine{
		Assumptions: assumptions,
		Logger:      NopLogger{},
	}, nil
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// BuildPlan generates the portfolios for the configured profile and then runs
// every calculator enabled in the configuration against the selected tier.
func (ce *CalculationEngine) BuildPlan(config *domain.Configuration) (*domain.PlanReport, error) {
	if config == nil {
		return nil, domain.NewValidationError("plan.build", "configuration", "is required")
	}
	portfolios, err := ce.GeneratePortfolios(config.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate portfolios: %w", err)
	}

	calc := config.Calculators
	selected := calc.SelectedTier
	if selected == "" {
		selected = portfolios[0].Tier
	}
	report := &domain.PlanReport{
		Profile:      config.Profile,
		Assumptions:  ce.Assumptions.GenerateAssumptions(),
		Portfolios:   portfolios,
		SelectedTier: selected,
	}
	portfolio, ok := report.SelectedPortfolio()
	if !ok {
		return nil, domain.NewValidationError("plan.build", "selected_tier", fmt.Sprintf("unknown tier %q", selected))
	}
	ce.Logger.Infof("building plan against %s portfolio (projected fund %s)", portfolio.Tier, portfolio.ProjectedFund.StringFixed(2))

	if ss := calc.SocialSecurity; ss != nil {
		income := ss.AverageIncome
		if income.IsZero() {
			income = config.Profile.AnnualIncome
		}
		estimate, err := ce.EstimateSocialSecurity(income, ss.YearsWorked, ss.ClaimingAge)
		if err != nil {
			return nil, fmt.Errorf("social security estimate failed: %w", err)
		}
		comparison := CompareWithPortfolio(estimate, portfolio)
		report.SocialSecurity = &estimate
		report.IncomeCompare = &comparison

		if ss.CompareAge != 0 && ss.CompareAge != ss.ClaimingAge {
			earlier, later := ss.ClaimingAge, ss.CompareAge
			if later < earlier {
				earlier, later = later, earlier
			}
			breakEven, err := ce.ClaimingBreakEven(income, ss.YearsWorked, earlier, later)
			if err != nil {
				return nil, fmt.Errorf("claiming break-even failed: %w", err)
			}
			report.BreakEven = &breakEven
		}
	}

	if c := calc.Contribution; c != nil {
		monthly := ce.DefaultMonthlyContribution(config.Profile)
		if c.MonthlyContribution != nil {
			monthly = *c.MonthlyContribution
		}
		result, err := ce.SolveContribution(domain.ContributionRequest{
			Direction:           c.Direction,
			AnnualRate:          portfolio.CAGR,
			Years:               c.Years,
			MonthlyContribution: monthly,
			TargetAmount:        c.TargetAmount,
		})
		if err != nil {
			return nil, fmt.Errorf("contribution solver failed: %w", err)
		}
		report.Contribution = &result
	}

	if d := calc.Delay; d != nil {
		result, err := ce.ComputeDelayImpact(config.Profile, portfolio, d.Years)
		if err != nil {
			return nil, fmt.Errorf("delay calculation failed: %w", err)
		}
		report.Delay = &result
	}

	if t := calc.Tax; t != nil {
		result, err := ce.ComputeTaxImpact(config.Profile, portfolio, *t)
		if err != nil {
			return nil, fmt.Errorf("tax calculation failed: %w", err)
		}
		report.Tax = &result
	}

	if calc.Projection {
		projection, err := ce.ProjectLifetime(config.Profile, portfolio)
		if err != nil {
			return nil, fmt.Errorf("lifetime projection failed: %w", err)
		}
		report.Projection = &projection
		report.Withdrawals = ce.WithdrawalSchedule(portfolio, ce.Assumptions.RetirementYears)
	}

	if len(calc.MilestoneYears) > 0 {
		milestones, err := ce.Milestones(config.Profile, portfolio, calc.MilestoneYears)
		if err != nil {
			return nil, fmt.Errorf("milestone calculation failed: %w", err)
		}
		report.Milestones = milestones
	}

	return report, nil
}
