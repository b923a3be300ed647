package output

import (
	"bytes"
	_ "embed"
	"html/template"

	json "github.com/goccy/go-json"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// HTMLFormatter produces a printable HTML plan report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"cents":   FormatCurrencyCents,
	"pct":     FormatPercentage,
	"rate":    FormatRate,
	"compact": FormatCompact,
	"classes": func() []string { return domain.AssetClasses },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.PlanReport
		Comparisons []PortfolioComparison
		Assumptions []string
		Disclaimers []string
	}{report, ComparePortfolios(report), reportAssumptions(report), Disclaimers(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
