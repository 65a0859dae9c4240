package assertions

import (
	"fmt"
	"reflect"

	"github.com/abdul-hamid-achik/expect/packages/core/format"
	"github.com/abdul-hamid-achik/expect/packages/core/path"
	"github.com/abdul-hamid-achik/expect/packages/diff"
	"github.com/abdul-hamid-achik/expect/packages/failure"
)

// Chain is implemented by every node. Wrapper types satisfy it by embedding
// a *Node.
type Chain interface {
	Raw() any
	Path() path.Path
	Back() Chain
	Derive(p path.Path) Context

	parent() Chain
	takeNegation() bool
}

// Context is what a node needs from the chain it belongs to: where failures
// go, where it sits, and which node it was derived from.
type Context struct {
	Sink   failure.Sink
	Path   path.Path
	Parent Chain
	// Detached nodes skip every check. Narrowing produces one when the type
	// does not match and the sink did not abort the chain.
	Detached bool
}

// Node is the chaining primitive. V is the wrapped value type and S the
// wrapper that embeds the node; every check returns S so that chains keep
// their concrete type:
//
//	type PointAssert struct {
//		*assertions.Node[Point, *PointAssert]
//	}
//
//	func NewPointAssert(ctx assertions.Context, v Point) *PointAssert {
//		a := &PointAssert{}
//		a.Node = assertions.NewNode(ctx, v, a)
//		return a
//	}
type Node[V any, S any] struct {
	value  V
	ctx    Context
	negate bool
	self   S
	chain  Chain
}

// NewNode wires a node to its wrapper. A missing sink defaults to
// panicking and a missing path to the type name of v.
func NewNode[V any, S any](ctx Context, v V, self S) *Node[V, S] {
	if ctx.Sink == nil {
		ctx.Sink = failure.Panicking()
	}
	if ctx.Path.IsZero() {
		ctx.Path = path.Root(typeLabel(any(v)))
	}
	n := &Node[V, S]{value: v, ctx: ctx, self: self}
	if c, ok := any(self).(Chain); ok {
		n.chain = c
	} else {
		n.chain = n
	}
	return n
}

func (n *Node[V, S]) Value() V {
	return n.value
}

func (n *Node[V, S]) Raw() any {
	return n.value
}

func (n *Node[V, S]) Path() path.Path {
	return n.ctx.Path
}

// Derive returns the context for a node derived from this one at p.
func (n *Node[V, S]) Derive(p path.Path) Context {
	return Context{
		Sink:     n.ctx.Sink,
		Path:     p,
		Parent:   n.chain,
		Detached: n.ctx.Detached,
	}
}

func (n *Node[V, S]) parent() Chain {
	return n.ctx.Parent
}

// takeNegation reads and clears the pending negation.
func (n *Node[V, S]) takeNegation() bool {
	negated := n.negate
	n.negate = false
	return negated
}

// Not negates the next call in the chain, whatever that call is. Calling it
// twice leaves a single pending negation.
func (n *Node[V, S]) Not() S {
	n.negate = true
	return n.self
}

// Back ends the sub-chain and returns the node this one was derived from,
// or nil at the root.
func (n *Node[V, S]) Back() Chain {
	n.takeNegation()
	return n.ctx.Parent
}

// As relabels this node's location.
func (n *Node[V, S]) As(name string) S {
	n.takeNegation()
	n.ctx.Path = n.ctx.Path.Rename(name)
	return n.self
}

// SetValue replaces the wrapped value.
func (n *Node[V, S]) SetValue(v V) S {
	n.takeNegation()
	n.value = v
	return n.self
}

// Update replaces the wrapped value with fn applied to it.
func (n *Node[V, S]) Update(fn func(V) V) S {
	n.takeNegation()
	n.value = fn(n.value)
	return n.self
}

// Prop derives a child node for a computed value.
func (n *Node[V, S]) Prop(name string, fn func(V) any) *Value {
	n.takeNegation()
	return NewValue(n.Derive(n.ctx.Path.Child(name)), fn(n.value))
}

func (n *Node[V, S]) Equal(expected V) S {
	actual := n.value
	return n.check(diff.Equal(any(expected), any(actual)), func(b *failure.Builder, negated bool) {
		if negated {
			b.Addf("expected not to equal: %s", format.Value(expected))
			return
		}
		b.Addf("expected: %s", format.Value(expected))
		b.Addf("but was : %s", format.Value(actual))
		if r, ok := diff.Values(any(expected), any(actual)); ok {
			b.AddStmt(r.Lines()...)
		}
	})
}

// Same checks identity: pointer identity for reference kinds, == otherwise.
func (n *Node[V, S]) Same(expected V) S {
	return n.holds(same(any(expected), any(n.value)), "be the same instance as: "+format.Value(expected))
}

// IsA checks that the dynamic type of the value is t or, for interface
// types, implements t.
func (n *Node[V, S]) IsA(t reflect.Type) S {
	actual := reflect.TypeOf(any(n.value))
	ok := actual != nil && (actual == t || (t.Kind() == reflect.Interface && actual.Implements(t)))
	return n.holds(ok, "be an instance of: "+t.String(), "but was type: "+typeName(actual))
}

func (n *Node[V, S]) IsNull() S {
	return n.holds(isNil(any(n.value)), "be null")
}

// Holds passes when ok is true (false when negated). The statement reads
// "expected to <format>" or "expected not to <format>".
func (n *Node[V, S]) Holds(ok bool, format string, args ...any) S {
	return n.holds(ok, fmt.Sprintf(format, args...))
}

// Predicate checks a boolean accessor.
func (n *Node[V, S]) Predicate(name string, ok bool) S {
	return n.holds(ok, "satisfy: "+name+"()")
}

// Query checks the result of an accessor call against expected. The call is
// recorded as a child location, name for plain accessors and name(args)
// when arguments are given.
func (n *Node[V, S]) Query(name string, args []any, actual, expected any) S {
	negated := n.takeNegation()
	p := n.ctx.Path.Child(name)
	if len(args) > 0 {
		p = n.ctx.Path.Call(name, args...)
	}
	child := NewValue(n.Derive(p), actual)
	child.negate = negated
	child.Equal(expected)
	return n.self
}

// Fail raises a failure described by describe, regardless of negation.
func (n *Node[V, S]) Fail(describe func(b *failure.Builder)) S {
	n.takeNegation()
	if n.ctx.Detached {
		return n.self
	}
	b := failure.New(Header(n.chain))
	describe(b)
	b.Throw(n.ctx.Sink)
	return n.self
}

func (n *Node[V, S]) holds(ok bool, stmt string, details ...string) S {
	return n.check(ok, func(b *failure.Builder, negated bool) {
		if negated {
			b.AddStmt("expected not to " + stmt)
		} else {
			b.AddStmt("expected to " + stmt)
		}
		b.AddStmt(details...)
	})
}

// check consumes the pending negation and raises a failure when ok, after
// negation, does not hold.
func (n *Node[V, S]) check(ok bool, describe func(b *failure.Builder, negated bool)) S {
	negated := n.takeNegation()
	if n.ctx.Detached || ok != negated {
		return n.self
	}
	b := failure.New(Header(n.chain))
	describe(b, negated)
	b.Throw(n.ctx.Sink)
	return n.self
}

// Contained starts a membership check; the pending negation moves to the
// In call that completes it.
func (n *Node[V, S]) Contained() *Membership[V, S] {
	return &Membership[V, S]{node: n, negated: n.takeNegation()}
}

type Membership[V any, S any] struct {
	node    *Node[V, S]
	negated bool
}

func (m *Membership[V, S]) In(candidates ...V) S {
	return m.InSlice(candidates)
}

func (m *Membership[V, S]) InSlice(candidates []V) S {
	n := m.node
	items := make([]any, len(candidates))
	found := false
	for i, c := range candidates {
		items[i] = c
		if diff.Equal(any(c), any(n.value)) {
			found = true
		}
	}
	n.negate = m.negated
	return n.holds(found, "be contained in: "+format.Items(items))
}

// Header renders the first line of a failure for c: the root subject as
// Label=<value>, followed by the path from the root to c when c was derived.
func Header(c Chain) string {
	root := c
	for p := root.parent(); p != nil; p = root.parent() {
		root = p
	}
	h := root.Path().Render() + "=<" + format.Value(root.Raw()) + ">"
	if c.Path().Len() > root.Path().Len() {
		h += c.Path().RenderFrom(root.Path().Len()) + "=<" + format.Value(c.Raw()) + ">"
	}
	return h
}

// Narrow refines c to a node built by ctor when the value is a T. Otherwise
// it raises a TypeMismatchError and, if the sink lets the chain continue,
// returns a detached node. The state of c is left as it was apart from its
// pending negation, which is consumed.
func Narrow[T any, N any](c Chain, ctor func(ctx Context, v T) N) N {
	c.takeNegation()
	ctx := c.Derive(c.Path())
	v, ok := c.Raw().(T)
	if !ok && !ctx.Detached {
		want := reflect.TypeOf((*T)(nil)).Elem()
		got := reflect.TypeOf(c.Raw())
		ae := failure.New(Header(c)).
			Addf("expected type: %s", want).
			Addf("but was type: %s", typeName(got)).
			Build()
		ctx.Sink.Raise(&failure.TypeMismatchError{AssertionError: ae, Want: want, Got: got})
		ctx.Detached = true
	}
	return ctor(ctx, v)
}

// BackTo pops c to its parent typed as P, or the zero P when the parent is
// missing or of another type.
func BackTo[P Chain](c Chain) P {
	p, _ := c.Back().(P)
	return p
}

func same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "null"
	}
	return t.String()
}

func typeLabel(v any) string {
	if v == nil {
		return "Value"
	}
	return reflect.TypeOf(v).String()
}
