package assertions

import (
	"fmt"

	"github.com/abdul-hamid-achik/expect/packages/core/format"
	"github.com/abdul-hamid-achik/expect/packages/diff"
)

// SetAssert wraps a set. Equal reports missing and unexpected members.
type SetAssert[K comparable] struct {
	*Node[map[K]struct{}, *SetAssert[K]]
}

func NewSet[K comparable](ctx Context, v map[K]struct{}) *SetAssert[K] {
	a := &SetAssert[K]{}
	a.Node = NewNode(ctx, v, a)
	return a
}

// EqualTo compares against the set of the given members.
func (s *SetAssert[K]) EqualTo(members ...K) *SetAssert[K] {
	set := make(map[K]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return s.Equal(set)
}

func (s *SetAssert[K]) Contains(members ...K) *SetAssert[K] {
	var missing []any
	for _, m := range members {
		if _, ok := s.Value()[m]; !ok {
			missing = append(missing, m)
		}
	}
	var details []string
	if len(missing) > 0 {
		details = append(details, "but could not find: "+format.List(missing))
	}
	return s.holds(len(missing) == 0, "contain: "+format.Items(anys(members)), details...)
}

func (s *SetAssert[K]) HasSize(n int) *SetAssert[K] {
	size := len(s.Value())
	return s.holds(size == n, fmt.Sprintf("have size: %d", n), fmt.Sprintf("but had size: %d", size))
}

// Members returns the members sorted by their rendered form.
func (s *SetAssert[K]) Members() []K {
	keys, _ := diff.Keys(s.Value())
	out := make([]K, len(keys))
	for i, k := range keys {
		out[i] = k.(K)
	}
	return out
}
