package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per portfolio, catalog order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Tier", "ExpectedReturn", "RiskLevel", "ProjectedFund", "AnnualWithdrawal", "MonthlyWithdrawal", "Stocks", "Bonds", "REITs", "International", "Alternatives", "Cash", "Selected"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, pf := range report.Portfolios {
		a := pf.Allocation
		row := []string{
			string(pf.Tier),
			pf.CAGR.String(),
			string(pf.RiskLevel),
			pf.ProjectedFund.StringFixed(2),
			pf.AnnualWithdrawal.StringFixed(2),
			pf.MonthlyWithdrawal().StringFixed(2),
			a.Stocks.String(),
			a.Bonds.String(),
			a.REITs.String(),
			a.International.String(),
			a.Alternatives.String(),
			a.Cash.String(),
			boolToString(pf.Tier == report.SelectedTier),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
