// Package cmd implements the expectgen CLI commands using Cobra.
//
// Available commands:
//   - gen: Generate assertion wrappers, or check they are up to date
//   - inspect: Show how the accessors of a type are classified
//   - init: Create an expectgen.yaml configuration file
//   - version: Show expectgen version information
//
// gen can watch the source packages and regenerate on change.
package cmd
