package failure

import "fmt"

// Builder accumulates the description of one failure.
type Builder struct {
	subject string
	stmts   []string
	cause   error
}

// New starts a failure for the rendered subject header, e.g. "String=<abc>".
func New(subject string) *Builder {
	return &Builder{subject: subject}
}

// AddStmt appends statement lines.
func (b *Builder) AddStmt(lines ...string) *Builder {
	b.stmts = append(b.stmts, lines...)
	return b
}

// Addf appends a formatted statement line.
func (b *Builder) Addf(format string, args ...any) *Builder {
	b.stmts = append(b.stmts, fmt.Sprintf(format, args...))
	return b
}

// Cause attaches the underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.cause = err
	return b
}

func (b *Builder) Build() *AssertionError {
	stmts := make([]string, len(b.stmts))
	copy(stmts, b.stmts)
	return &AssertionError{
		Subject:    b.subject,
		Statements: stmts,
		Cause:      b.cause,
	}
}

// Throw renders the failure and raises it through sink.
func (b *Builder) Throw(sink Sink) {
	sink.Raise(b.Build())
}
