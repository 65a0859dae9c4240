package assertions

import (
	"fmt"

	"github.com/abdul-hamid-achik/expect/packages/core/format"
	"github.com/abdul-hamid-achik/expect/packages/diff"
	"github.com/abdul-hamid-achik/expect/packages/failure"
)

type SliceAssert[T any] struct {
	*Node[[]T, *SliceAssert[T]]
}

func NewSlice[T any](ctx Context, v []T) *SliceAssert[T] {
	a := &SliceAssert[T]{}
	a.Node = NewNode(ctx, v, a)
	return a
}

func (s *SliceAssert[T]) HasSize(n int) *SliceAssert[T] {
	size := len(s.Value())
	return s.holds(size == n, fmt.Sprintf("have size: %d", n), fmt.Sprintf("but had size: %d", size))
}

func (s *SliceAssert[T]) IsEmpty() *SliceAssert[T] {
	return s.Holds(len(s.Value()) == 0, "be empty")
}

// Contains checks that every value occurs somewhere in the slice.
func (s *SliceAssert[T]) Contains(values ...T) *SliceAssert[T] {
	r := diff.Unordered(anys(values), anys(s.Value()))
	var details []string
	if len(r.Missing) > 0 {
		details = append(details, "but could not find: "+format.List(r.Missing))
	}
	return s.holds(len(r.Missing) == 0, "contain: "+format.Items(anys(values)), details...)
}

// ContainsExactly compares position by position.
func (s *SliceAssert[T]) ContainsExactly(values ...T) *SliceAssert[T] {
	r := diff.Ordered(anys(values), anys(s.Value()))
	return s.holds(r.Empty(), "contain exactly: "+format.Items(anys(values)), r.Lines()...)
}

// ContainsExactlyInAnyOrder compares membership and size, ignoring order.
func (s *SliceAssert[T]) ContainsExactlyInAnyOrder(values ...T) *SliceAssert[T] {
	actual := anys(s.Value())
	r := diff.Unordered(anys(values), actual)
	return s.holds(r.Empty() && len(values) == len(actual),
		"contain exactly in any order: "+format.Items(anys(values)), r.Lines()...)
}

// At navigates to element i. An index out of range fails and yields a
// detached node.
func (s *SliceAssert[T]) At(i int) *Value {
	ctx := s.Derive(s.Path().Indexed("", i))
	v := s.Value()
	if i < 0 || i >= len(v) {
		s.Fail(func(b *failure.Builder) {
			b.Addf("expected index in range: %d", i).Addf("but size was: %d", len(v))
		})
		ctx.Detached = true
		return NewValue(ctx, nil)
	}
	return NewValue(ctx, v[i])
}

// Size navigates to the number of elements.
func (s *SliceAssert[T]) Size() *NumberAssert[int] {
	return NewNumber(s.Derive(s.Path().Child("size")), len(s.Value()))
}

func anys[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
