package cmd

import "fmt"

// Exit codes for expectgen CLI
const (
	// ExitSuccess indicates every wrapper was generated, or is up to date
	ExitSuccess = 0

	// ExitCheckFailure indicates --check found stale or missing wrappers
	ExitCheckFailure = 1

	// ExitGenerateError indicates a type could not be introspected or emitted
	ExitGenerateError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// ExitError carries the exit code a command finished with. Err is nil when
// the problem was already reported through a formatter.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitErr(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}
