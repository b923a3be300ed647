package config

import (
	"fmt"
	"os"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a configuration document over the default assumptions and
// validates the result. Keys absent from the document keep their defaults;
// explicit values, zero included, are kept as written.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.Configuration{Assumptions: domain.DefaultAssumptions()}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if config.Profile.RiskTolerance == "" {
		config.Profile.RiskTolerance = domain.RiskToleranceMedium
	}
	if t := config.Calculators.Tax; t != nil && t.AccountType == "" {
		t.AccountType = domain.AccountTraditional
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := config.Profile.Validate(); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if err := config.Assumptions.Validate(); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	if err := ip.validateCalculators(&config.Calculators); err != nil {
		return fmt.Errorf("calculator validation failed: %w", err)
	}

	return nil
}

// validateCalculators checks the optional calculator sections
func (ip *InputParser) validateCalculators(calc *domain.CalculatorInputs) error {
	const op = "config.calculators"

	if calc.SelectedTier != "" {
		if _, err := calculation.TierByName(calc.SelectedTier); err != nil {
			return err
		}
	}

	if ss := calc.SocialSecurity; ss != nil {
		if ss.AverageIncome.IsNegative() {
			return domain.NewValidationError(op, "social_security.average_income", "cannot be negative")
		}
		if ss.YearsWorked < 0 {
			return domain.NewValidationError(op, "social_security.years_worked", "cannot be negative")
		}
		if ss.ClaimingAge < 62 || ss.ClaimingAge > 70 {
			return domain.NewValidationError(op, "social_security.claiming_age", fmt.Sprintf("must be between 62 and 70, got %d", ss.ClaimingAge))
		}
		if ss.CompareAge != 0 && (ss.CompareAge < 62 || ss.CompareAge > 70) {
			return domain.NewValidationError(op, "social_security.compare_age", fmt.Sprintf("must be between 62 and 70, got %d", ss.CompareAge))
		}
	}

	if c := calc.Contribution; c != nil {
		if c.Direction != domain.DirectionForward && c.Direction != domain.DirectionInverse {
			return domain.NewValidationError(op, "contribution.direction", "must be forward or inverse")
		}
		if c.Years <= 0 || c.Years > calculation.MaxContributionYears {
			return domain.NewValidationError(op, "contribution.years", fmt.Sprintf("must be between 1 and %d", calculation.MaxContributionYears))
		}
		if (c.MonthlyContribution != nil && c.MonthlyContribution.IsNegative()) || c.TargetAmount.IsNegative() {
			return domain.NewValidationError(op, "contribution", "amounts cannot be negative")
		}
	}

	if d := calc.Delay; d != nil {
		if d.Years < 0 || d.Years > calculation.MaxDelayYears {
			return domain.NewValidationError(op, "delay.years", fmt.Sprintf("must be between 0 and %d", calculation.MaxDelayYears))
		}
	}

	if t := calc.Tax; t != nil {
		if err := calculation.ValidateTaxParams(*t); err != nil {
			return err
		}
	}

	for _, n := range calc.MilestoneYears {
		if n < 0 || n > calculation.MaxMilestoneYears {
			return domain.NewValidationError(op, "milestone_years", fmt.Sprintf("must be between 0 and %d, got %d", calculation.MaxMilestoneYears, n))
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	taxParams := domain.DefaultTaxParams()
	return &domain.Configuration{
		Profile: domain.RetirementProfile{
			Age:              35,
			RetirementAge:    65,
			CurrentSavings:   decimal.NewFromInt(150000),
			AnnualIncome:     decimal.NewFromInt(90000),
			RiskTolerance:    domain.RiskToleranceMedium,
			DesiredLifestyle: "Comfortable",
		},
		Assumptions: domain.DefaultAssumptions(),
		Calculators: domain.CalculatorInputs{
			SelectedTier: domain.TierBalanced,
			SocialSecurity: &domain.SocialSecurityInput{
				YearsWorked: 35,
				ClaimingAge: 67,
			},
			Contribution: &domain.ContributionInput{
				Direction:    domain.DirectionInverse,
				Years:        30,
				TargetAmount: decimal.NewFromInt(1000000),
			},
			Delay:          &domain.DelayInput{Years: 5},
			Tax:            &taxParams,
			Projection:     true,
			MilestoneYears: []int{10, 20},
		},
	}
}
