package diff

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(xs ...int) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func TestOrdered_MismatchesAndTrailingUnexpected(t *testing.T) {
	r := Ordered(ints(4, 6), ints(1, 4, 7))

	assert.Equal(t, []Mismatch{
		{Index: 0, Expected: 4, Actual: 1},
		{Index: 1, Expected: 6, Actual: 4},
	}, r.Mismatches)
	assert.Equal(t, 2, r.ExpectedLen)
	assert.Equal(t, 3, r.ActualLen)
	assert.Equal(t, ints(7), r.Unexpected)
	assert.Equal(t, []int{2}, r.UnexpectedIndices)

	assert.Equal(t, []string{
		"differences:",
		"- expected [0]: 4",
		"- but was [0]: 1",
		"- expected [1]: 6",
		"- but was [1]: 4",
		"- expected len: 2",
		"- but was len: 3",
		"- unexpected [2]: 7",
	}, r.Lines())
}

func TestOrdered_LongerExpected(t *testing.T) {
	r := Ordered(ints(1, 2, 3, 2), ints(1, 2))

	assert.Empty(t, r.Mismatches)
	assert.Equal(t, ints(3, 2), r.Unexpected)
	assert.Equal(t, []int{2, 3}, r.UnexpectedIndices)
	assert.Equal(t, []string{
		"differences:",
		"- expected len: 4",
		"- but was len: 2",
		"- unexpected [2]: 3",
		"- unexpected [3]: 2",
	}, r.Lines())
}

func TestOrdered_Equal(t *testing.T) {
	r := Ordered(ints(1, 2), ints(1, 2))
	assert.True(t, r.Empty())
	assert.Nil(t, r.Lines())
}

func TestOrdered_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randSlice := func() []any {
		n := rng.Intn(6)
		out := make([]any, n)
		for i := range out {
			out[i] = rng.Intn(3)
		}
		return out
	}

	for round := 0; round < 200; round++ {
		expected, actual := randSlice(), randSlice()
		r := Ordered(expected, actual)

		short := min(len(expected), len(actual))
		var wantIdx []int
		for i := 0; i < short; i++ {
			if expected[i] != actual[i] {
				wantIdx = append(wantIdx, i)
			}
		}
		var gotIdx []int
		for _, m := range r.Mismatches {
			gotIdx = append(gotIdx, m.Index)
		}
		require.Equal(t, wantIdx, gotIdx, "expected=%v actual=%v", expected, actual)

		var wantTail []int
		for i := short; i < max(len(expected), len(actual)); i++ {
			wantTail = append(wantTail, i)
		}
		require.Equal(t, wantTail, r.UnexpectedIndices)
		require.Equal(t, len(expected), r.ExpectedLen)
		require.Equal(t, len(actual), r.ActualLen)
	}
}

func TestUnordered(t *testing.T) {
	r := Unordered([]any{"a", "d"}, []any{"a", "b", "c"})

	assert.Equal(t, []any{"d"}, r.Missing)
	assert.Equal(t, []any{"b", "c"}, r.Unexpected)
	assert.Equal(t, []string{
		"differences:",
		"- missing   : d",
		"- unexpected: [b, c]",
	}, r.Lines())
}

func TestUnordered_DeduplicatesAndKeepsOrder(t *testing.T) {
	r := Unordered([]any{"z", "x", "z", "y"}, []any{"y", "q", "q", "p"})

	assert.Equal(t, []any{"z", "x"}, r.Missing)
	assert.Equal(t, []any{"q", "p"}, r.Unexpected)
}

func TestUnordered_IndependentOfOrder(t *testing.T) {
	a := Unordered([]any{1, 2, 3}, []any{3, 4})
	b := Unordered([]any{3, 1, 2}, []any{4, 3})

	assert.ElementsMatch(t, a.Missing, b.Missing)
	assert.ElementsMatch(t, a.Unexpected, b.Unexpected)
	assert.ElementsMatch(t, []any{1, 2}, a.Missing)
	assert.Equal(t, []any{4}, a.Unexpected)
}

func TestUnordered_OnlyMissing(t *testing.T) {
	r := Unordered([]any{1, 2}, []any{1})
	assert.Equal(t, []string{"differences:", "- missing   : 2"}, r.Lines())
}

func TestValues(t *testing.T) {
	t.Run("slices are ordered", func(t *testing.T) {
		r, ok := Values([]int{4, 6}, []int{1, 4, 7})
		require.True(t, ok)
		assert.True(t, r.Ordered)
		assert.Len(t, r.Mismatches, 2)
	})

	t.Run("arrays are ordered", func(t *testing.T) {
		r, ok := Values([2]string{"a", "b"}, [2]string{"a", "c"})
		require.True(t, ok)
		assert.Equal(t, []Mismatch{{Index: 1, Expected: "b", Actual: "c"}}, r.Mismatches)
	})

	t.Run("sets compare by membership", func(t *testing.T) {
		expected := map[string]struct{}{"a": {}, "d": {}}
		actual := map[string]struct{}{"c": {}, "a": {}, "b": {}}
		r, ok := Values(expected, actual)
		require.True(t, ok)
		assert.False(t, r.Ordered)
		assert.Equal(t, []string{
			"differences:",
			"- missing   : d",
			"- unexpected: [b, c]",
		}, r.Lines())
	})

	t.Run("mixed families", func(t *testing.T) {
		_, ok := Values([]int{1}, map[int]bool{1: true})
		assert.False(t, ok)
		_, ok = Values(map[int]bool{1: true}, []int{1})
		assert.False(t, ok)
	})

	t.Run("scalars", func(t *testing.T) {
		_, ok := Values("abc", "abd")
		assert.False(t, ok)
		_, ok = Values(nil, nil)
		assert.False(t, ok)
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, float64(1)))
	assert.True(t, Equal(int64(3), uint8(3)))
	assert.True(t, Equal([]int{1}, []int{1}))
	assert.False(t, Equal(1, 2))
	assert.False(t, Equal("1", 1))
	assert.True(t, Equal(nil, nil))
}

func TestEqual_NamedNumbers(t *testing.T) {
	type celsius float32
	type count uint16

	assert.True(t, Equal(celsius(21), 21))
	assert.True(t, Equal(count(4), int8(4)))
	assert.False(t, Equal(true, 1))
	assert.False(t, Equal(nil, 0))
}

func TestEqual_Integers(t *testing.T) {
	assert.False(t, Equal(int64(9007199254740993), int64(9007199254740992)))
	assert.False(t, Equal(uint64(1<<63+1), int64(1<<62)))
	assert.False(t, Equal(int64(-1), uint64(1<<64-1)))
	assert.True(t, Equal(uint64(1<<63), uint64(1<<63)))
	assert.True(t, Equal(int8(7), uint64(7)))
	assert.False(t, Equal(float64(9007199254740992), int64(9007199254740993)))
	assert.True(t, Equal(float64(9007199254740992), int64(9007199254740992)))
	assert.False(t, Equal(1.5, 1))
}

func TestEqual_Structural(t *testing.T) {
	type inner struct {
		Tags []string
		n    int
	}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil and empty slice", []int(nil), []int{}, true},
		{"decoded numbers in a slice", []any{1, 2}, []any{1.0, 2.0}, true},
		{"slice and array", []int{1, 2}, [2]int{1, 2}, true},
		{"nested", [][]any{{1}}, []any{[]int{1}}, true},
		{"nested mismatch", [][]any{{1}}, []any{[]int{2}}, false},
		{"maps", map[string]any{"n": 1}, map[string]any{"n": 1.0}, true},
		{"map value differs", map[string]any{"n": 1}, map[string]any{"n": 2}, false},
		{"map keys differ", map[string]int{"a": 1}, map[string]int{"b": 1}, false},
		{"nil and empty map", map[string]int(nil), map[string]int{}, true},
		{"struct with nil slice", inner{n: 1}, inner{Tags: []string{}, n: 1}, true},
		{"struct unexported field", inner{n: 1}, inner{n: 2}, false},
		{"pointers compare targets", &inner{n: 1}, &inner{n: 1}, true},
		{"nil pointer", (*inner)(nil), &inner{}, false},
		{"different struct types", inner{}, struct{ Tags []string }{}, false},
		{"string and number", "1", 1, false},
		{"nil and empty slice in interface", nil, []int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestEqual_Cycles(t *testing.T) {
	type node struct{ Next *node }
	a := &node{}
	a.Next = a
	b := &node{}
	b.Next = b

	assert.True(t, Equal(a, b))
}

func TestValues_MapChanges(t *testing.T) {
	r, ok := Values(
		map[string]any{"a": 1, "b": 2, "d": 4},
		map[string]any{"a": 1.0, "b": 3, "c": 5},
	)
	require.True(t, ok)
	assert.Equal(t, []Change{{Key: "b", Expected: 2, Actual: 3}}, r.Changed)
	assert.Equal(t, []string{
		"differences:",
		"- missing   : d",
		"- unexpected: c",
		"- expected [b]: 2",
		"- but was [b]: 3",
	}, r.Lines())
}

// Equal and the differencer must agree: two collections are equal exactly
// when there is nothing to report.
func TestEqual_AgreesWithValues(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var gen func(depth int) any
	gen = func(depth int) any {
		switch k := rng.Intn(6); {
		case depth > 1 || k == 0:
			return rng.Intn(3)
		case k == 1:
			return float64(rng.Intn(3))
		case k == 2:
			return map[string]any{"k": gen(depth + 1)}
		default:
			out := make([]any, rng.Intn(3))
			for i := range out {
				out[i] = gen(depth + 1)
			}
			return out
		}
	}

	for round := 0; round < 500; round++ {
		a, b := []any{gen(0), gen(0)}, []any{gen(0), gen(0)}
		r, ok := Values(a, b)
		require.True(t, ok)
		require.Equal(t, Equal(a, b), r.Empty(), "a=%v b=%v", a, b)
	}
}
