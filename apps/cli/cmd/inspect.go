package cmd

import (
	"time"

	"github.com/abdul-hamid-achik/expect/packages/generator"
	"github.com/abdul-hamid-achik/expect/packages/output"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how the accessors of a type are classified",
	Long: `Show the accessors expectgen finds on each target type and what they
become: predicates, value accessors, parameterized queries or excluded
setters.

Examples:
  expectgen inspect --pkg ./internal/domain --type Order
  expectgen inspect -o json`,
	Args: cobra.NoArgs,
	RunE: inspectCommand,
}

func init() {
	addTargetFlags(inspectCmd, "Type to inspect (repeatable)")
}

func inspectCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return exitErr(ExitConfigError, err)
	}

	formatter, err := output.NewFormatter(outputFlag, output.Options{
		Writer:  cmd.OutOrStdout(),
		Verbose: cfg.GetVerbose(),
		NoColor: cfg.GetNoColor(),
	})
	if err != nil {
		return exitErr(ExitUsageError, err)
	}

	start := time.Now()
	failed := false
	for _, target := range cfg.Targets {
		for _, typeName := range target.Types {
			shape, err := generator.Inspect(cmd.Context(), cfg.Dir, target, typeName)
			if err != nil {
				formatter.FormatError(err)
				failed = true
				continue
			}
			formatter.FormatShape(shape)
		}
	}

	if flushable, ok := formatter.(output.Flushable); ok {
		if err := flushable.Flush(time.Since(start)); err != nil {
			return err
		}
	}
	if failed {
		return exitErr(ExitGenerateError, nil)
	}
	return nil
}
