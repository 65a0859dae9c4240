package assertions

import "github.com/abdul-hamid-achik/expect/packages/failure"

// Soft is an Asserter whose failures are collected until Close. Scopes must
// be closed in the reverse order they were opened, on the goroutine that
// opened them.
type Soft struct {
	*Asserter
	scope *failure.Scope
}

// Close raises nothing if every check passed, the failure itself if exactly
// one failed, and a MultipleError otherwise.
func (s *Soft) Close() {
	s.scope.Close()
}

// Err returns what Close would raise.
func (s *Soft) Err() error {
	return s.scope.Err()
}

// Softly runs fn in a soft scope that reports to t when fn returns.
func Softly(t failure.TestingT, fn func(s *Soft)) {
	t.Helper()
	s := New(t).Soft()
	defer s.Close()
	fn(s)
}
