// Package generator runs the expectgen pipeline: load each configured type,
// classify its accessors, render the wrapper and write or check the file.
package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/abdul-hamid-achik/expect/packages/core/config"
	"github.com/abdul-hamid-achik/expect/packages/generator/emit"
	"github.com/abdul-hamid-achik/expect/packages/generator/introspect"
	"github.com/abdul-hamid-achik/expect/packages/golden"
	"go.uber.org/zap"
)

type Status int

const (
	StatusUnchanged Status = iota
	StatusWritten
	StatusStale
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusWritten:
		return "written"
	case StatusStale:
		return "stale"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileResult is the outcome for one generated type.
type FileResult struct {
	Package   string
	Type      string
	SourceDir string
	Path      string
	Status    Status
	Accessors int
	Excluded  int
	Diff      string
	Err       error
	Duration  time.Duration
}

type Report struct {
	Results   []*FileResult
	Duration  time.Duration
	Written   int
	Unchanged int
	Stale     int
	Failed    int
}

func (r *Report) add(fr *FileResult) {
	r.Results = append(r.Results, fr)
	switch fr.Status {
	case StatusWritten:
		r.Written++
	case StatusUnchanged:
		r.Unchanged++
	case StatusStale:
		r.Stale++
	case StatusFailed:
		r.Failed++
	}
}

// OK reports whether every file was generated and, in check mode, fresh.
func (r *Report) OK() bool {
	return r.Stale == 0 && r.Failed == 0
}

type Generator struct {
	log   *zap.Logger
	check bool
}

// Option is a functional option for configuring a Generator.
type Option func(*Generator)

func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithCheck makes Run compare instead of write.
func WithCheck(check bool) Option {
	return func(g *Generator) {
		g.check = check
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run generates every configured type. Per-type problems are recorded in
// the report; the returned error is for an invalid config or a cancelled
// context.
func (g *Generator) Run(ctx context.Context, cfg *config.Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	start := time.Now()
	report := &Report{}
	files := golden.NewManager("", !g.check)

	for _, target := range cfg.Targets {
		for _, typeName := range target.Types {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			fr := g.generate(ctx, files, cfg.Dir, target, typeName)
			report.add(fr)
		}
	}

	report.Duration = time.Since(start)
	g.log.Info("generation finished",
		zap.Int("written", report.Written),
		zap.Int("unchanged", report.Unchanged),
		zap.Int("stale", report.Stale),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration))
	return report, nil
}

func (g *Generator) generate(ctx context.Context, files *golden.Manager, dir string, target config.Target, typeName string) *FileResult {
	start := time.Now()
	fr := &FileResult{Package: target.Package, Type: typeName}
	log := g.log.With(zap.String("package", target.Package), zap.String("type", typeName))

	fail := func(err error) *FileResult {
		log.Error("generation failed", zap.Error(err))
		fr.Status = StatusFailed
		fr.Err = err
		fr.Duration = time.Since(start)
		return fr
	}

	shape, err := Inspect(ctx, dir, target, typeName)
	if err != nil {
		return fail(err)
	}
	fr.SourceDir = shape.Dir
	fr.Accessors = len(shape.Included())
	fr.Excluded = len(shape.Accessors) - fr.Accessors
	log.Debug("introspected", zap.Int("accessors", fr.Accessors), zap.Int("excluded", fr.Excluded))

	src, err := emit.Source(shape.Spec())
	if err != nil {
		return fail(err)
	}

	outDir := shape.Dir
	if target.Output != "" {
		outDir = target.Output
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(dir, outDir)
		}
	}
	fr.Path = filepath.Join(outDir, emit.FileName(typeName))

	result := files.CompareFile(fr.Path, src)
	switch {
	case result.Err != nil:
		return fail(result.Err)
	case result.IsNew || result.WasUpdated:
		fr.Status = StatusWritten
		log.Debug("wrote wrapper", zap.String("path", fr.Path))
	case result.Passed:
		fr.Status = StatusUnchanged
	default:
		fr.Status = StatusStale
		fr.Diff = result.Diff
		log.Warn("wrapper is stale", zap.String("path", fr.Path))
	}
	fr.Duration = time.Since(start)
	return fr
}

// Inspect classifies typeName of target without generating anything.
func Inspect(ctx context.Context, dir string, target config.Target, typeName string) (*introspect.Shape, error) {
	opts := []introspect.Option{introspect.WithDir(dir)}
	if target.OutputPackage != "" {
		opts = append(opts, introspect.WithOutput(target.OutputPackage, target.OutputPath))
	}
	return introspect.Load(ctx, target.Package, typeName, opts...)
}
