package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/expect/packages/generator"
	"github.com/abdul-hamid-achik/expect/packages/generator/introspect"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	Summary  *JSONSummary        `json:"summary,omitempty"`
	Files    []JSONFile          `json:"files,omitempty"`
	Types    []*introspect.Shape `json:"types,omitempty"`
	Errors   []string            `json:"errors,omitempty"`
	Duration float64             `json:"duration"`
	Time     string              `json:"time"`
}

// JSONSummary represents the generation summary
type JSONSummary struct {
	Total     int `json:"total"`
	Written   int `json:"written"`
	Unchanged int `json:"unchanged"`
	Stale     int `json:"stale"`
	Failed    int `json:"failed"`
}

// JSONFile represents one generated wrapper
type JSONFile struct {
	Package   string  `json:"package"`
	Type      string  `json:"type"`
	Path      string  `json:"path,omitempty"`
	Status    string  `json:"status"`
	Accessors int     `json:"accessors"`
	Excluded  int     `json:"excluded"`
	Duration  float64 `json:"duration"`
	Diff      string  `json:"diff,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// JSONFormatter accumulates reports and shapes and writes them on Flush
type JSONFormatter struct {
	writer  io.Writer
	summary *JSONSummary
	files   []JSONFile
	types   []*introspect.Shape
	errors  []string
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatReport(report *generator.Report) {
	if f.summary == nil {
		f.summary = &JSONSummary{}
	}
	f.summary.Total += len(report.Results)
	f.summary.Written += report.Written
	f.summary.Unchanged += report.Unchanged
	f.summary.Stale += report.Stale
	f.summary.Failed += report.Failed

	for _, r := range report.Results {
		file := JSONFile{
			Package:   r.Package,
			Type:      r.Type,
			Path:      r.Path,
			Status:    r.Status.String(),
			Accessors: r.Accessors,
			Excluded:  r.Excluded,
			Duration:  float64(r.Duration.Milliseconds()),
			Diff:      r.Diff,
		}
		if r.Err != nil {
			file.Error = r.Err.Error()
		}
		f.files = append(f.files, file)
	}
}

func (f *JSONFormatter) FormatShape(shape *introspect.Shape) {
	f.types = append(f.types, shape)
}

func (f *JSONFormatter) FormatError(err error) {
	f.errors = append(f.errors, err.Error())
}

func (f *JSONFormatter) FormatHeader(version string) {
	// No header needed for JSON output
}

// Flush writes the accumulated JSON output
func (f *JSONFormatter) Flush(totalDuration time.Duration) error {
	output := JSONOutput{
		Summary:  f.summary,
		Files:    f.files,
		Types:    f.types,
		Errors:   f.errors,
		Duration: float64(totalDuration.Milliseconds()),
		Time:     time.Now().Format(time.RFC3339),
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
