package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/donorcast/internal/calculation"
	"github.com/rgehrsitz/donorcast/internal/domain"
)

// Report is a single forecast ready for rendering.
type Report struct {
	RunID       uuid.UUID               `json:"runId"`
	Label       string                  `json:"label"`
	GeneratedAt time.Time               `json:"generatedAt"`
	Result      *domain.AggregateResult `json:"result"`
	Summary     domain.Summary          `json:"summary"`
}

// NewReport wraps a forecast with a fresh run ID and its summary.
func NewReport(label string, res *domain.AggregateResult) *Report {
	return &Report{
		RunID:       uuid.New(),
		Label:       label,
		GeneratedAt: time.Now().UTC(),
		Result:      res,
		Summary:     calculation.Summarize(res),
	}
}

// Formatter renders a report into bytes.
type Formatter interface {
	Name() string
	Format(r *Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(r *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(r *Report) ([]byte, error) { return f.F(r) }

var registry = map[string]Formatter{
	"console": ConsoleFormatter{},
	"json":    JSONFormatter{Pretty: true},
	"csv":     CSVFormatter{},
}

var aliases = map[string]string{
	"table":  "console",
	"text":   "console",
	"pretty": "console",
}

// GetFormatterByName returns the formatter registered under name or alias, or nil.
func GetFormatterByName(name string) Formatter {
	if target, ok := aliases[name]; ok {
		name = target
	}
	return registry[name]
}

// AvailableFormatterNames lists registered formatter names in sorted order.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted format aliases in sorted order.
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for n := range aliases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders r and writes it to a timestamped file in the
// working directory, returning the file name.
func WriteFormatted(f Formatter, r *Report, ext string) (string, error) {
	data, err := f.Format(r)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}

	filename := fmt.Sprintf("forecast_report_%s_%s.%s",
		time.Now().Format("20060102_150405"), r.RunID.String()[:8], ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return filename, nil
}
