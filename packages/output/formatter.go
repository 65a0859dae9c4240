package output

import (
	"fmt"
	"io"
	"time"

	"github.com/abdul-hamid-achik/expect/packages/generator"
	"github.com/abdul-hamid-achik/expect/packages/generator/introspect"
)

type Formatter interface {
	FormatHeader(version string)
	FormatReport(report *generator.Report)
	FormatShape(shape *introspect.Shape)
	FormatError(err error)
}

// Flushable is implemented by formatters that write everything at the end.
type Flushable interface {
	Flush(totalDuration time.Duration) error
}

// Options shared by every formatter.
type Options struct {
	Writer  io.Writer
	Verbose bool
	NoColor bool
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, o Options) (Formatter, error) {
	switch name {
	case "", "console":
		opts := []ConsoleOption{WithVerbose(o.Verbose), WithNoColor(o.NoColor)}
		if o.Writer != nil {
			opts = append(opts, WithWriter(o.Writer))
		}
		return NewConsoleFormatter(opts...), nil
	case "json":
		var opts []JSONOption
		if o.Writer != nil {
			opts = append(opts, JSONWithWriter(o.Writer))
		}
		return NewJSONFormatter(opts...), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want console or json)", name)
	}
}
