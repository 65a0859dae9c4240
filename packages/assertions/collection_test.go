package assertions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceAssert_ContainsExactly(t *testing.T) {
	rec := &recorder{}
	ThatSlice(With(rec), []int{1, 4, 7}).ContainsExactly(4, 6)

	require.Len(t, rec.errs, 1)
	assert.Equal(t, "Slice=<[1, 4, 7]>\n"+
		"expected to contain exactly: [4, 6]\n"+
		"differences:\n"+
		"- expected [0]: 4\n"+
		"- but was [0]: 1\n"+
		"- expected [1]: 6\n"+
		"- but was [1]: 4\n"+
		"- expected len: 2\n"+
		"- but was len: 3\n"+
		"- unexpected [2]: 7", rec.errs[0].Error())
}

func TestSliceAssert(t *testing.T) {
	rec := &recorder{}
	a := With(rec)
	s := ThatSlice(a, []string{"a", "b", "c"})

	s.HasSize(3).
		Not().IsEmpty().
		Contains("c", "a").
		ContainsExactly("a", "b", "c").
		ContainsExactlyInAnyOrder("c", "b", "a").
		Size().Equal(3)
	s.At(1).Equal("b")
	assert.Empty(t, rec.errs)

	s.Contains("a", "x", "y")
	s.ContainsExactlyInAnyOrder("a", "d")
	assert.Equal(t, []string{
		"Slice=<[a, b, c]>\nexpected to contain: [a, x, y]\nbut could not find: [x, y]",
		"Slice=<[a, b, c]>\nexpected to contain exactly in any order: [a, d]\n" +
			"differences:\n- missing   : d\n- unexpected: [b, c]",
	}, rec.messages())
}

func TestSliceAssert_At(t *testing.T) {
	rec := &recorder{}
	s := ThatSlice(With(rec), []int{10, 20})

	s.At(1).Equal(21)
	s.At(5).Equal(1)

	assert.Equal(t, []string{
		"Slice=<[10, 20]>[1]=<20>\nexpected: 21\nbut was : 20",
		"Slice=<[10, 20]>\nexpected index in range: 5\nbut size was: 2",
	}, rec.messages())
}

func TestSetAssert_Equal(t *testing.T) {
	rec := &recorder{}
	set := map[string]struct{}{"a": {}, "b": {}, "c": {}}

	ThatSet(With(rec), set).EqualTo("a", "d")

	require.Len(t, rec.errs, 1)
	assert.Equal(t, "Set=<{a, b, c}>\n"+
		"expected: {a, d}\n"+
		"but was : {a, b, c}\n"+
		"differences:\n"+
		"- missing   : d\n"+
		"- unexpected: [b, c]", rec.errs[0].Error())
}

func TestSetAssert(t *testing.T) {
	rec := &recorder{}
	a := With(rec)

	keys := ThatKeys(a, map[string]int{"x": 1, "y": 2})
	keys.HasSize(2).Contains("y").EqualTo("y", "x")
	assert.Equal(t, []string{"x", "y"}, keys.Members())
	assert.Empty(t, rec.errs)

	keys.Contains("z")
	assert.Equal(t, []string{"Set=<{x, y}>\nexpected to contain: [z]\nbut could not find: z"}, rec.messages())
}
