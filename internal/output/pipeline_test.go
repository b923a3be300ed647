package output_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/config"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/internal/output"
)

func loadPlan(t *testing.T) *domain.PlanReport {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile(filepath.Join("..", "config", "testdata", "plan.yaml"))
	require.NoError(t, err)

	engine, err := calculation.NewCalculationEngineWithAssumptions(cfg.Assumptions)
	require.NoError(t, err)
	report, err := engine.BuildPlan(cfg)
	require.NoError(t, err)
	return report
}

func TestOutputGeneration(t *testing.T) {
	report := loadPlan(t)
	dir := t.TempDir()

	for _, format := range output.AvailableFormatterNames() {
		path, err := output.GenerateReport(report, format, dir)
		require.NoError(t, err, format)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, data, format)
	}
}

func TestBasicCalculations(t *testing.T) {
	report := loadPlan(t)

	require.Len(t, report.Portfolios, 3)
	assert.Equal(t, domain.TierBalanced, report.SelectedTier)
	for i := 1; i < len(report.Portfolios); i++ {
		assert.True(t, report.Portfolios[i-1].ProjectedFund.GreaterThan(report.Portfolios[i].ProjectedFund),
			"higher return tiers project larger funds")
	}

	require.NotNil(t, report.Contribution)
	assert.Equal(t, domain.DirectionInverse, report.Contribution.Direction)
	require.NotNil(t, report.Tax)
	assert.True(t, report.Tax.NetTaxEffect.IsNegative(), "roth contributions are taxed up front")
	require.NotNil(t, report.BreakEven)
	assert.True(t, report.BreakEven.Reached)
	assert.Len(t, report.Milestones, 2)

	out, err := output.ConsoleVerboseFormatter{}.Format(report)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "BALANCED PORTFOLIO (selected)")
	assert.Contains(t, text, "TAX IMPACT (ROTH)")
	assert.Contains(t, text, "Withdrawal rate in retirement: 3.5% of the projected fund")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(text), output.GeneralDisclaimer))
}
