package output

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// GenerateReport renders the report in the named format into dir and returns
// the written path. The pseudo-format "all" writes the verbose console report
// and the detailed CSV and returns the last path.
func GenerateReport(report *domain.PlanReport, format, dir string) (string, error) {
	if report == nil {
		return "", fmt.Errorf("generate report: nil report")
	}
	if dir == "" {
		dir = "."
	}
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var last string
		for _, name := range []string{"console", "detailed-csv"} {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir, FileExtension(name))
			if err != nil {
				return "", err
			}
			last = path
		}
		return last, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, report, dir, FileExtension(format))
}

// SaveConfiguration writes a planner configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
