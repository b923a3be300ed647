package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/rpgo/retirement-planner/internal/domain"
)

func pct(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func buildTestReport() *domain.PlanReport {
	portfolio := func(tier domain.TierName, fund int64, cagr string, risk domain.RiskLevel, stocks, bonds int64) domain.Portfolio {
		return domain.Portfolio{
			Tier:             tier,
			ProjectedFund:    decimal.NewFromInt(fund),
			AnnualWithdrawal: decimal.NewFromInt(fund).Mul(decimal.RequireFromString("0.04")),
			CAGR:             decimal.RequireFromString(cagr),
			Allocation:       domain.Allocation{Stocks: pct(stocks), Bonds: pct(bonds), REITs: pct(0), International: pct(100 - stocks - bonds), Alternatives: pct(0), Cash: pct(0)},
			RiskLevel:        risk,
			Description:      string(tier) + " test portfolio",
			ColorScheme:      domain.ColorScheme{Primary: "#111111", Secondary: "#222222", Accent: "#333333"},
		}
	}
	return &domain.PlanReport{
		Profile: domain.RetirementProfile{
			Age:            35,
			RetirementAge:  65,
			CurrentSavings: decimal.NewFromInt(150000),
			AnnualIncome:   decimal.NewFromInt(90000),
			RiskTolerance:  domain.RiskToleranceMedium,
		},
		Assumptions: []string{"Annual contributions of 15% of income", "Withdrawal rate of 4% per year"},
		Portfolios: []domain.Portfolio{
			portfolio(domain.TierAggressive, 3000000, "0.1", domain.RiskLevelHigh, 70, 10),
			portfolio(domain.TierBalanced, 2000000, "0.08", domain.RiskLevelMedium, 50, 30),
			portfolio(domain.TierSafe, 1000000, "0.06", domain.RiskLevelLow, 30, 50),
		},
		SelectedTier: domain.TierBalanced,
		SocialSecurity: &domain.BenefitEstimate{
			AverageIncome:     decimal.NewFromInt(90000),
			YearsWorked:       35,
			ClaimingAge:       67,
			BasePIA:           decimal.NewFromInt(2500),
			AdjustmentPercent: decimal.Zero,
			MonthlyBenefit:    decimal.NewFromInt(2500),
			AnnualBenefit:     decimal.NewFromInt(30000),
			Disclaimer:        "Social Security test disclaimer.",
		},
		Delay: &domain.DelayResult{
			DelayYears:         5,
			OriginalBalance:    decimal.NewFromInt(2000000),
			DelayedBalance:     decimal.NewFromInt(3000000),
			Difference:         decimal.NewFromInt(1000000),
			PercentageIncrease: decimal.NewFromInt(50),
		},
		Projection: &domain.LifetimeProjection{
			Tier: domain.TierBalanced,
			Years: []domain.ProjectionYear{
				{Year: 0, Age: 35, Contribution: decimal.NewFromInt(13500), Growth: decimal.NewFromInt(12000), Balance: decimal.NewFromInt(175500)},
				{Year: 1, Age: 36, Contribution: decimal.NewFromInt(13500), Growth: decimal.NewFromInt(14040), Balance: decimal.NewFromInt(203040)},
			},
			PeakBalance:   decimal.NewFromInt(203040),
			PeakAge:       36,
			FinalBalance:  decimal.NewFromInt(203040),
			RetirementAge: 65,
		},
	}
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "Selected: Balanced") {
		t.Fatalf("expected selected tier, got: %s", content)
	}
	if !strings.Contains(content, "Aggressive: Return=10.0% Fund=$3,000,000 Withdrawal=$120,000/yr ($10,000/mo)") {
		t.Fatalf("expected aggressive summary line, got: %s", content)
	}
	if !strings.Contains(content, "Retiring 5 years later adds $1,000,000 (50.0%)") {
		t.Fatalf("expected delay summary, got: %s", content)
	}
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"RETIREMENT PLAN REPORT",
		"BALANCED PORTFOLIO (selected)",
		"COMPARISON WITH SAFEST TIER",
		"+$2,000,000  (200.0%)",
		"SOCIAL SECURITY ESTIMATE",
		"DELAYING RETIREMENT BY 5 YEARS",
		"LIFETIME PROJECTION (Balanced)",
		"Social Security test disclaimer.",
		GeneralDisclaimer,
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in verbose output", want)
		}
	}
	if strings.Contains(content, "CONTRIBUTION CALCULATOR") {
		t.Fatalf("contribution section rendered without a contribution result")
	}
}

func TestCSVSummarizerCatalogOrder(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header+3 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "Aggressive,") || !strings.HasPrefix(lines[2], "Balanced,") || !strings.HasPrefix(lines[3], "Safe,") {
		t.Fatalf("rows not in catalog order: %v", lines)
	}
	if !strings.HasSuffix(lines[2], ",true") || !strings.HasSuffix(lines[1], ",false") {
		t.Fatalf("selected column wrong: %v", lines)
	}
	if !strings.Contains(lines[1], "3000000.00,120000.00,10000.00") {
		t.Fatalf("unexpected aggressive row: %s", lines[1])
	}
}

func TestCSVDetailedWithoutProjection(t *testing.T) {
	report := buildTestReport()
	report.Projection = nil
	out, err := CSVDetailedExporter{}.Format(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
}

func TestCSVDetailedRows(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header+2 rows, got %d", len(lines))
	}
	if lines[2] != "Balanced,1,36,false,13500.00,14040.00,0.00,203040.00" {
		t.Fatalf("unexpected row: %s", lines[2])
	}
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded domain.PlanReport
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.SelectedTier != domain.TierBalanced || len(decoded.Portfolios) != 3 {
		t.Fatalf("unexpected decoded report: %+v", decoded)
	}
	if !decoded.Portfolios[0].ProjectedFund.Equal(decimal.NewFromInt(3000000)) {
		t.Fatalf("projected fund lost in round trip: %s", decoded.Portfolios[0].ProjectedFund)
	}
	if decoded.Tax != nil || decoded.Contribution != nil {
		t.Fatalf("absent calculators should stay absent")
	}
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console_verbose", "console_verbose.golden", ConsoleVerboseFormatter{}},
		{"console_lite", "console_lite.golden", ConsoleFormatter{}},
		{"csv_summary", "csv_summary.golden", CSVSummarizer{}},
		{"csv_detailed", "csv_detailed.golden", CSVDetailedExporter{}},
		{"html", "html_prefix.golden", HTMLFormatter{}},
	}

	report := buildTestReport()
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		out, err := tc.formatter.Format(report)
		if err != nil {
			t.Fatalf("%s: format error: %v", tc.name, err)
		}
		goldenPath := filepath.Join("testdata", tc.golden)
		if update {
			// only first line to keep golden small & stable
			line := firstLine(string(out)) + "\n"
			if err := os.WriteFile(goldenPath, []byte(line), 0644); err != nil {
				t.Fatalf("%s: update golden failed: %v", tc.name, err)
			}
		}
		data, err := os.ReadFile(goldenPath)
		if err != nil {
			t.Fatalf("%s: read golden: %v", tc.name, err)
		}
		if !strings.HasPrefix(string(out), strings.TrimSpace(string(data))) {
			t.Fatalf("%s: output does not match golden prefix %q", tc.name, strings.TrimSpace(string(data)))
		}
	}
}

func TestHTMLFormatterSections(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"Portfolio Options",
		"Social Security Estimate",
		"Delaying Retirement by 5 Years",
		"Lifetime Projection (Balanced)",
		"Key Assumptions",
		"Annual contributions of 15% of income",
		"$3,000,000",
		`class="tier selected"`,
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in HTML output", want)
		}
	}
	if strings.Contains(content, "Tax Impact") {
		t.Fatalf("tax section rendered without a tax result")
	}
}

func TestHTMLFallsBackToDefaultAssumptions(t *testing.T) {
	report := buildTestReport()
	report.Assumptions = nil
	out, err := HTMLFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	found := false
	for _, a := range DefaultAssumptions {
		if strings.Contains(content, a) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected at least one default assumption to be rendered in HTML")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func TestFormatterAliasResolution(t *testing.T) {
	cases := map[string]string{
		"console-verbose": "console",
		"TEXT":            "console",
		"lite":            "console-lite",
		"csv-detailed":    "detailed-csv",
		" json ":          "json",
	}
	for alias, want := range cases {
		f := GetFormatterByName(alias)
		if f == nil {
			t.Fatalf("alias %q did not resolve to a formatter", alias)
		}
		if f.Name() != want {
			t.Fatalf("alias %q resolved to %q, want %q", alias, f.Name(), want)
		}
	}
	if GetFormatterByName("pdf") != nil {
		t.Fatalf("pdf should not resolve")
	}
}

func TestCompactJSONFormatter(t *testing.T) {
	f := GetFormatterByName("JSON-Compact")
	if f == nil {
		t.Fatalf("json-compact should be registered")
	}
	out, err := f.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "\n") {
		t.Fatalf("compact output should be a single line")
	}
	var decoded domain.PlanReport
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.SelectedTier != domain.TierBalanced {
		t.Fatalf("unexpected selected tier %q", decoded.SelectedTier)
	}
}

func TestFileExtension(t *testing.T) {
	cases := map[string]string{
		"console":      "txt",
		"console-lite": "txt",
		"csv":          "csv",
		"detailed-csv": "csv",
		"html":         "html",
		"json-pretty":  "json",
		"json-compact": "json",
	}
	for name, want := range cases {
		if got := FileExtension(name); got != want {
			t.Fatalf("FileExtension(%q) = %q, want %q", name, got, want)
		}
	}
}
