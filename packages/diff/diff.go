// Package diff computes the mismatch report between an expected and an actual collection.
//
// Two modes exist. Ordered compares fixed-position sequences index by index
// and reports the lengths and trailing elements when they differ. Unordered
// compares membership only: what expected has that actual lacks (missing)
// and what actual has that expected lacks (unexpected).
package diff

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/abdul-hamid-achik/expect/packages/core/format"
)

// Header starts every differences block.
const Header = "differences:"

// Mismatch is one position where an ordered comparison disagrees.
type Mismatch struct {
	Index    int
	Expected any
	Actual   any
}

// Change is a key present on both sides of a map comparison whose values
// disagree.
type Change struct {
	Key      any
	Expected any
	Actual   any
}

type Result struct {
	Ordered bool

	// Ordered mode only.
	Mismatches  []Mismatch
	ExpectedLen int
	ActualLen   int

	Missing    []any
	Unexpected []any
	// UnexpectedIndices holds the position of each Unexpected element in
	// ordered mode.
	UnexpectedIndices []int

	// Changed lists shared map keys with different values.
	Changed []Change
}

// Ordered walks both sequences position by position. Past the shorter
// sequence every element of the longer one is reported as unexpected with
// its index, whether or not it occurs elsewhere in the other sequence.
func Ordered(expected, actual []any) *Result {
	r := &Result{
		Ordered:     true,
		ExpectedLen: len(expected),
		ActualLen:   len(actual),
	}
	n := min(len(expected), len(actual))
	for i := 0; i < n; i++ {
		if !Equal(expected[i], actual[i]) {
			r.Mismatches = append(r.Mismatches, Mismatch{Index: i, Expected: expected[i], Actual: actual[i]})
		}
	}
	longer := actual
	if len(expected) > len(actual) {
		longer = expected
	}
	for i := n; i < len(longer); i++ {
		r.Unexpected = append(r.Unexpected, longer[i])
		r.UnexpectedIndices = append(r.UnexpectedIndices, i)
	}
	return r
}

// Unordered compares membership. Missing keeps expected's order, Unexpected
// keeps actual's order; both are de-duplicated.
func Unordered(expected, actual []any) *Result {
	return &Result{
		Missing:    subtract(expected, actual),
		Unexpected: subtract(actual, expected),
	}
}

// subtract returns the distinct elements of a that do not occur in b.
func subtract(a, b []any) []any {
	var out []any
	for _, x := range a {
		if contains(b, x) || contains(out, x) {
			continue
		}
		out = append(out, x)
	}
	return out
}

func contains(list []any, x any) bool {
	for _, y := range list {
		if Equal(x, y) {
			return true
		}
	}
	return false
}

// Empty reports whether the comparison found no difference.
func (r *Result) Empty() bool {
	return len(r.Mismatches) == 0 &&
		len(r.Missing) == 0 &&
		len(r.Unexpected) == 0 &&
		len(r.Changed) == 0 &&
		r.ExpectedLen == r.ActualLen
}

// Lines renders the differences block, or nil when there is nothing to report.
func (r *Result) Lines() []string {
	if r.Empty() {
		return nil
	}
	lines := []string{Header}
	if r.Ordered {
		for _, m := range r.Mismatches {
			lines = append(lines,
				fmt.Sprintf("- expected [%d]: %s", m.Index, format.Value(m.Expected)),
				fmt.Sprintf("- but was [%d]: %s", m.Index, format.Value(m.Actual)),
			)
		}
		if r.ExpectedLen != r.ActualLen {
			lines = append(lines,
				fmt.Sprintf("- expected len: %d", r.ExpectedLen),
				fmt.Sprintf("- but was len: %d", r.ActualLen),
			)
		}
		for i, v := range r.Unexpected {
			lines = append(lines, fmt.Sprintf("- unexpected [%d]: %s", r.UnexpectedIndices[i], format.Value(v)))
		}
		return lines
	}
	if len(r.Missing) > 0 {
		lines = append(lines, "- missing   : "+format.List(r.Missing))
	}
	if len(r.Unexpected) > 0 {
		lines = append(lines, "- unexpected: "+format.List(r.Unexpected))
	}
	for _, c := range r.Changed {
		k := format.Value(c.Key)
		lines = append(lines,
			fmt.Sprintf("- expected [%s]: %s", k, format.Value(c.Expected)),
			fmt.Sprintf("- but was [%s]: %s", k, format.Value(c.Actual)),
		)
	}
	return lines
}

// Values picks the mode from the kinds of expected and actual: slices and
// arrays are compared in order, maps by key membership and then by the
// values of the keys they share. It returns false
// when the two values are not collections of the same family.
func Values(expected, actual any) (*Result, bool) {
	if es, ok := Elements(expected); ok {
		as, ok := Elements(actual)
		if !ok {
			return nil, false
		}
		return Ordered(es, as), true
	}
	if ek, ok := Keys(expected); ok {
		ak, ok := Keys(actual)
		if !ok {
			return nil, false
		}
		r := Unordered(ek, ak)
		r.Changed = changed(reflect.ValueOf(expected), reflect.ValueOf(actual), ek, ak)
		return r, true
	}
	return nil, false
}

// changed compares the values of the keys both maps hold, in the sorted
// order of ek.
func changed(em, am reflect.Value, ek, ak []any) []Change {
	var out []Change
	for _, k := range ek {
		for _, other := range ak {
			if !Equal(k, other) {
				continue
			}
			ev := em.MapIndex(reflect.ValueOf(k)).Interface()
			av := am.MapIndex(reflect.ValueOf(other)).Interface()
			if !Equal(ev, av) {
				out = append(out, Change{Key: k, Expected: ev, Actual: av})
			}
			break
		}
	}
	return out
}

// Elements returns the elements of a slice or array.
func Elements(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Keys returns the keys of a map sorted by their rendered form, which gives
// map comparisons a deterministic iteration order.
func Keys(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	keys := rv.MapKeys()
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = k.Interface()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return format.Value(out[i]) < format.Value(out[j])
	})
	return out, true
}
