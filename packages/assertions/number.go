package assertions

import "cmp"

type NumberAssert[T cmp.Ordered] struct {
	*Node[T, *NumberAssert[T]]
}

func NewNumber[T cmp.Ordered](ctx Context, v T) *NumberAssert[T] {
	a := &NumberAssert[T]{}
	a.Node = NewNode(ctx, v, a)
	return a
}

func (n *NumberAssert[T]) GreaterThan(x T) *NumberAssert[T] {
	return n.Holds(n.Value() > x, "be greater than: %v", x)
}

func (n *NumberAssert[T]) GreaterOrEqual(x T) *NumberAssert[T] {
	return n.Holds(n.Value() >= x, "be greater than or equal to: %v", x)
}

func (n *NumberAssert[T]) LessThan(x T) *NumberAssert[T] {
	return n.Holds(n.Value() < x, "be less than: %v", x)
}

func (n *NumberAssert[T]) LessOrEqual(x T) *NumberAssert[T] {
	return n.Holds(n.Value() <= x, "be less than or equal to: %v", x)
}

// Between is inclusive on both ends.
func (n *NumberAssert[T]) Between(lo, hi T) *NumberAssert[T] {
	v := n.Value()
	return n.Holds(v >= lo && v <= hi, "be between: %v and %v", lo, hi)
}

func (n *NumberAssert[T]) IsZero() *NumberAssert[T] {
	var zero T
	return n.Holds(n.Value() == zero, "be zero")
}
