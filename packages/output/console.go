package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/expect/packages/generator"
	"github.com/abdul-hamid-achik/expect/packages/generator/introspect"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatReport(report *generator.Report) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(f.writer, "\n")

	for _, r := range report.Results {
		name := r.Package + "." + r.Type

		if r.Err != nil {
			fmt.Fprintf(f.writer, "  %s %s %s\n", red("x"), name, red(fmt.Sprintf("(%v)", r.Err)))
			continue
		}

		symbol := green("✓")
		switch r.Status {
		case generator.StatusUnchanged:
			symbol = cyan("=")
		case generator.StatusStale:
			symbol = red("✗")
		}

		fmt.Fprintf(f.writer, "  %s %s → %s %s\n", symbol, name, r.Path, cyan(fmt.Sprintf("(%dms)", r.Duration.Milliseconds())))

		if f.verbose {
			fmt.Fprintf(f.writer, "    Accessors: %d generated, %d excluded\n", r.Accessors, r.Excluded)
		}

		if r.Status == generator.StatusStale {
			fmt.Fprintf(f.writer, "    %s %s\n", red("→"), "out of date; run expectgen gen")
			if f.verbose && r.Diff != "" {
				for _, line := range strings.Split(strings.TrimRight(r.Diff, "\n"), "\n") {
					fmt.Fprintf(f.writer, "      %s\n", line)
				}
			}
		}
	}

	counts := []struct {
		n     int
		label string
		paint func(a ...interface{}) string
	}{
		{report.Written, "written", green},
		{report.Unchanged, "unchanged", cyan},
		{report.Stale, "stale", yellow},
		{report.Failed, "failed", red},
	}
	var parts []string
	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, c.paint(fmt.Sprintf("%d %s", c.n, c.label)))
		}
	}
	parts = append(parts, fmt.Sprintf("%d total", len(report.Results)))

	fmt.Fprintf(f.writer, "\nFiles: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(f.writer, "Time:  %dms\n\n", report.Duration.Milliseconds())
}

func (f *ConsoleFormatter) FormatShape(shape *introspect.Shape) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(f.writer, "%s %s\n", bold(shape.Name), faint("("+shape.PackagePath+")"))
	for _, a := range shape.Accessors {
		if a.Excluded {
			fmt.Fprintf(f.writer, "  %-10s %s %s\n", "excluded", a.Name, faint("("+a.Reason+")"))
			continue
		}
		params := make([]string, len(a.Params))
		for i, p := range a.Params {
			params[i] = p.Name + " " + p.Type
		}
		fmt.Fprintf(f.writer, "  %-10s %s(%s) %s", a.Kind, a.Name, strings.Join(params, ", "), a.Result)
		if f.verbose {
			fmt.Fprintf(f.writer, " %s", faint("→ "+strings.Join(a.Generated(), ", ")))
		}
		fmt.Fprintf(f.writer, "\n")
	}
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", bold("expectgen"), version)
}
