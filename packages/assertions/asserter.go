package assertions

import (
	"cmp"

	"github.com/abdul-hamid-achik/expect/packages/core/path"
	"github.com/abdul-hamid-achik/expect/packages/failure"
)

// Asserter starts chains whose failures go to one sink.
type Asserter struct {
	sink failure.Sink
}

// New returns an Asserter that fails t on the first unmet expectation.
func New(t failure.TestingT) *Asserter {
	return &Asserter{sink: failure.Reporter(t)}
}

// Must returns an Asserter that panics on the first unmet expectation.
func Must() *Asserter {
	return &Asserter{sink: failure.Panicking()}
}

// With returns an Asserter raising into sink.
func With(sink failure.Sink) *Asserter {
	return &Asserter{sink: sink}
}

// That starts a panicking chain on v.
func That(v any) *Value {
	return Must().That(v)
}

// Root returns the context for a new chain labelled label. Wrapper
// constructors outside this package start from it.
func (a *Asserter) Root(label string) Context {
	return Context{Sink: a.sink, Path: path.Root(label)}
}

func (a *Asserter) That(v any) *Value {
	return NewValue(a.Root(typeLabel(v)), v)
}

func (a *Asserter) ThatString(v string) *StringAssert {
	return NewString(a.Root("String"), v)
}

func (a *Asserter) ThatJSON(doc string) *JSONAssert {
	return NewJSON(a.Root("JSON"), doc)
}

// Soft opens a soft-assertion scope nested in this Asserter's sink. Close
// it, usually with defer, to raise what it collected.
func (a *Asserter) Soft() *Soft {
	scope := failure.Open(a.sink)
	return &Soft{Asserter: &Asserter{sink: scope}, scope: scope}
}

func ThatNumber[T cmp.Ordered](a *Asserter, v T) *NumberAssert[T] {
	return NewNumber(a.Root("Number"), v)
}

func ThatSlice[T any](a *Asserter, v []T) *SliceAssert[T] {
	return NewSlice(a.Root("Slice"), v)
}

func ThatSet[K comparable](a *Asserter, v map[K]struct{}) *SetAssert[K] {
	return NewSet(a.Root("Set"), v)
}

// ThatKeys starts a set chain on the keys of m.
func ThatKeys[K comparable, V any](a *Asserter, m map[K]V) *SetAssert[K] {
	set := make(map[K]struct{}, len(m))
	for k := range m {
		set[k] = struct{}{}
	}
	return NewSet(a.Root("Set"), set)
}
