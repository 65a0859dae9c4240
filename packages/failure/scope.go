package failure

// Scope collects failures instead of raising them. Scopes nest: a scope's
// parent is the sink that receives its aggregate on Close, which may itself
// be a Scope. A Scope is confined to the goroutine that opened it.
type Scope struct {
	parent   Sink
	failures []error
	closed   bool
}

// Open starts a scope whose aggregate is raised into parent.
func Open(parent Sink) *Scope {
	return &Scope{parent: parent}
}

// Raise records err. After Close, failures go straight to the parent.
func (s *Scope) Raise(err error) {
	if s.closed {
		s.parent.Raise(err)
		return
	}
	s.failures = append(s.failures, err)
}

// Failures returns the recorded failures in occurrence order.
func (s *Scope) Failures() []error {
	out := make([]error, len(s.failures))
	copy(out, s.failures)
	return out
}

// Err returns the aggregate without raising it: nil, the single failure as
// is, or a MultipleError.
func (s *Scope) Err() error {
	switch len(s.failures) {
	case 0:
		return nil
	case 1:
		return s.failures[0]
	default:
		return &MultipleError{Failures: s.Failures()}
	}
}

// Close ends the scope and raises the aggregate into the parent, if any
// failure was recorded. Closing twice is a no-op.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if err := s.Err(); err != nil {
		s.parent.Raise(err)
	}
}

func (s *Scope) Closed() bool {
	return s.closed
}
