package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// CSVDetailedExporter provides the year-by-year lifetime projection. Reports
// without a projection produce only the header.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Tier", "Year", "Age", "Retired", "Contribution", "Growth", "Withdrawal", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if pr := report.Projection; pr != nil {
		for _, yr := range pr.Years {
			row := []string{
				string(pr.Tier),
				intToString(yr.Year),
				intToString(yr.Age),
				boolToString(yr.Retired),
				yr.Contribution.StringFixed(2),
				yr.Growth.StringFixed(2),
				yr.Withdrawal.StringFixed(2),
				yr.Balance.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
