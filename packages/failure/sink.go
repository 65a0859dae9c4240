package failure

// Sink receives raised failures.
type Sink interface {
	Raise(err error)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(err error)

func (f SinkFunc) Raise(err error) {
	f(err)
}

// TestingT is the subset of testing.TB used to report failures.
type TestingT interface {
	Helper()
	Fatal(args ...any)
}

type reporter struct {
	t TestingT
}

// Reporter returns a sink that fails t immediately.
func Reporter(t TestingT) Sink {
	return &reporter{t: t}
}

func (r *reporter) Raise(err error) {
	r.t.Helper()
	r.t.Fatal(err.Error())
}

type panicking struct{}

// Panicking returns a sink that raises failures with panic.
func Panicking() Sink {
	return panicking{}
}

func (panicking) Raise(err error) {
	panic(err)
}

// Catch runs fn and returns the failure it raised through a Panicking sink.
// Panics that are not assertion failures are propagated.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && IsFailure(e) {
			err = e
			return
		}
		panic(r)
	}()
	fn()
	return nil
}
