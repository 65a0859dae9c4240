package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/expect/packages/core/config"
	"github.com/abdul-hamid-achik/expect/packages/core/logging"
	"github.com/abdul-hamid-achik/expect/packages/generator"
	"github.com/abdul-hamid-achik/expect/packages/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate assertion wrappers",
	Long: `Generate fluent assertion wrappers for the configured types.

Targets come from expectgen.yaml unless --pkg or --type is given.

Examples:
  expectgen gen
  expectgen gen --pkg ./internal/domain --type Order --type Customer
  expectgen gen --pkg . --type Person --out ./asserts --package asserts --package-path example.com/app/asserts
  expectgen gen --check
  expectgen gen --watch`,
	Args: cobra.NoArgs,
	RunE: genCommand,
}

var (
	configFlag      string
	pkgFlag         string
	typeFlags       []string
	outFlag         string
	packageFlag     string
	packagePathFlag string
	checkFlag       bool
	watchFlag       bool
	debounceFlag    int
	verboseFlag     bool
	noColorFlag     bool
	outputFlag      string
)

func init() {
	addTargetFlags(genCmd, "Type to generate a wrapper for (repeatable)")
	genCmd.Flags().StringVar(&outFlag, "out", "", "Output directory (default: the package directory)")
	genCmd.Flags().StringVar(&packageFlag, "package", "", "Name of the package the wrappers belong to")
	genCmd.Flags().StringVar(&packagePathFlag, "package-path", "", "Import path of the package the wrappers belong to")
	genCmd.Flags().BoolVar(&checkFlag, "check", getEnvBool("CHECK", false), "Fail if wrappers are missing or stale instead of writing them (env: EXPECTGEN_CHECK)")
	genCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch source packages and regenerate on change")
	genCmd.Flags().IntVar(&debounceFlag, "debounce", getEnvInt("DEBOUNCE", 0), "Watch debounce in milliseconds (env: EXPECTGEN_DEBOUNCE)")
}

// addTargetFlags registers the flags gen and inspect share. They bind the
// same variables, so both commands must register them with the same
// defaults.
func addTargetFlags(cmd *cobra.Command, typeUsage string) {
	cmd.Flags().StringVar(&configFlag, "config", getEnvString("CONFIG", ""), "Path to config file (env: EXPECTGEN_CONFIG)")
	cmd.Flags().StringVar(&pkgFlag, "pkg", "", "Package pattern holding the types")
	cmd.Flags().StringSliceVarP(&typeFlags, "type", "t", nil, typeUsage)
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", getEnvBool("VERBOSE", false), "Verbose output; inspect also lists generated method names (env: EXPECTGEN_VERBOSE)")
	cmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("NO_COLOR", false), "Disable colored output (env: EXPECTGEN_NO_COLOR)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("OUTPUT", "console"), "Output format: console, json (env: EXPECTGEN_OUTPUT)")
}

// loadConfig merges command line targets and switches into the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, err
	}

	overrides := &config.Config{Debounce: debounceFlag}
	if pkgFlag != "" || len(typeFlags) > 0 {
		pkg := pkgFlag
		if pkg == "" {
			pkg = "."
		}
		overrides.Targets = []config.Target{{
			Package:       pkg,
			Types:         typeFlags,
			Output:        outFlag,
			OutputPackage: packageFlag,
			OutputPath:    packagePathFlag,
		}}
	}
	if verboseFlag {
		overrides.Verbose = config.BoolPtr(true)
	}
	if noColorFlag {
		overrides.NoColor = config.BoolPtr(true)
	}

	cfg = cfg.Merge(overrides)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func genCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return exitErr(ExitConfigError, err)
	}

	log := logging.New(cfg.GetVerbose())
	defer func() { _ = log.Sync() }()

	gen := generator.New(generator.WithLogger(log), generator.WithCheck(checkFlag))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := runGenerate(ctx, cmd.OutOrStdout(), gen, cfg)
	if err != nil {
		return err
	}

	if !watchFlag {
		return reportExit(report)
	}

	dirs, generated := watchSet(report)
	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")
	return watchSources(ctx, log, dirs, generated, time.Duration(cfg.Debounce)*time.Millisecond, func(changed string) {
		fmt.Fprintf(cmd.OutOrStdout(), "\n\nFile changed: %s\nRegenerating...\n", changed)
		if _, err := runGenerate(ctx, cmd.OutOrStdout(), gen, cfg); err != nil {
			log.Error("regeneration failed", zap.Error(err))
		}
	})
}

// runGenerate runs the generator once and renders the report with a fresh
// formatter.
func runGenerate(ctx context.Context, w io.Writer, gen *generator.Generator, cfg *config.Config) (*generator.Report, error) {
	formatter, err := output.NewFormatter(outputFlag, output.Options{
		Writer:  w,
		Verbose: cfg.GetVerbose(),
		NoColor: cfg.GetNoColor(),
	})
	if err != nil {
		return nil, exitErr(ExitUsageError, err)
	}
	formatter.FormatHeader(version)

	report, err := gen.Run(ctx, cfg)
	if err != nil {
		return nil, exitErr(ExitConfigError, err)
	}
	formatter.FormatReport(report)

	if flushable, ok := formatter.(output.Flushable); ok {
		if err := flushable.Flush(report.Duration); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func reportExit(report *generator.Report) error {
	switch {
	case report.Failed > 0:
		return exitErr(ExitGenerateError, nil)
	case report.Stale > 0:
		return exitErr(ExitCheckFailure, nil)
	default:
		return nil
	}
}
