package failure

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// AssertionError is a single unmet expectation.
type AssertionError struct {
	Subject    string
	Statements []string
	Cause      error
}

func (e *AssertionError) Error() string {
	lines := make([]string, 0, len(e.Statements)+2)
	lines = append(lines, e.Subject)
	lines = append(lines, e.Statements...)
	if e.Cause != nil {
		lines = append(lines, "cause: "+e.Cause.Error())
	}
	return strings.Join(lines, "\n")
}

func (e *AssertionError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError is raised when narrowing a node to a more specific type fails.
type TypeMismatchError struct {
	*AssertionError
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeMismatchError) Unwrap() error {
	return e.AssertionError
}

// MultipleError aggregates the failures recorded by one soft scope.
type MultipleError struct {
	Failures []error
}

func (e *MultipleError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Multiple Failures (%d failures)", len(e.Failures))
	for _, f := range e.Failures {
		for _, line := range strings.Split(f.Error(), "\n") {
			b.WriteString("\n\t")
			b.WriteString(line)
		}
	}
	return b.String()
}

func (e *MultipleError) Unwrap() []error {
	return e.Failures
}

// IsFailure reports whether err is, or wraps, one of the assertion failure kinds.
func IsFailure(err error) bool {
	if err == nil {
		return false
	}
	var (
		ae *AssertionError
		me *MultipleError
		te *TypeMismatchError
	)
	return errors.As(err, &te) || errors.As(err, &me) || errors.As(err, &ae)
}
