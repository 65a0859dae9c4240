package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "expectgen",
	Short: "Fluent assertion wrappers for your Go types.",
	Long: `expectgen reads the accessor methods of Go types and generates
fluent assertion wrappers for them: predicates become checks, getters
become Has<Name> checks and parameterized queries take the expected
value as their last argument.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode reports err on stderr and maps it to an exit code.
func exitCode(err error) int {
	var ee *ExitError
	if !errors.As(err, &ee) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsageError
	}
	if ee.Err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", ee.Err)
	}
	return ee.Code
}

func init() {
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
