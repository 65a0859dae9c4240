package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_Render(t *testing.T) {
	tests := []struct {
		name     string
		path     Path
		expected string
	}{
		{
			name:     "root only",
			path:     Root("String"),
			expected: "String",
		},
		{
			name:     "property",
			path:     Root("String").Child("length"),
			expected: "String.length",
		},
		{
			name:     "named index",
			path:     Root("Order").Indexed("items", 2),
			expected: "Order.items[2]",
		},
		{
			name:     "anonymous index attaches",
			path:     Root("Slice").Indexed("", 0),
			expected: "Slice[0]",
		},
		{
			name:     "call with args",
			path:     Root("Person").Call("Nickname", "en", 3),
			expected: "Person.Nickname(en, 3)",
		},
		{
			name:     "call without args",
			path:     Root("Map").Call("keys"),
			expected: "Map.keys()",
		},
		{
			name:     "mixed",
			path:     Root("Order").Child("items").Indexed("", 2).Call("get", "sku"),
			expected: "Order.items[2].get(sku)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.path.Render())
			assert.Equal(t, tt.expected, tt.path.String())
		})
	}
}

func TestPath_ChildrenDoNotMutateParent(t *testing.T) {
	parent := Root("Order").Child("items")
	rendered := parent.Render()

	a := parent.Child("a")
	b := parent.Child("b")

	assert.Equal(t, rendered, parent.Render())
	assert.Equal(t, "Order.items.a", a.Render())
	assert.Equal(t, "Order.items.b", b.Render())
	assert.Equal(t, 2, parent.Len())
}

func TestPath_Rename(t *testing.T) {
	p := Root("Person").Child("name")
	renamed := p.Rename("fullName")

	assert.Equal(t, "Person.name", p.Render())
	assert.Equal(t, "Person.fullName", renamed.Render())
	assert.Equal(t, "label", Path{}.Rename("label").Render())
}

func TestPath_RenderFrom(t *testing.T) {
	p := Root("String").Child("length")
	assert.Equal(t, ".length", p.RenderFrom(1))
	assert.Equal(t, "String.length", p.RenderFrom(0))
	assert.Equal(t, "", p.RenderFrom(2))

	idx := Root("Slice").Indexed("", 1)
	assert.Equal(t, "[1]", idx.RenderFrom(1))
}

func TestPath_Last(t *testing.T) {
	_, ok := Path{}.Last()
	assert.False(t, ok)
	assert.True(t, Path{}.IsZero())

	seg, ok := Root("A").Call("get", 1).Last()
	assert.True(t, ok)
	assert.Equal(t, KindCall, seg.Kind)
	assert.Equal(t, []string{"1"}, seg.Args)
	assert.Equal(t, "call", seg.Kind.String())
}

func TestPath_SegmentsIsCopy(t *testing.T) {
	p := Root("A").Child("b")
	segs := p.Segments()
	segs[1].Name = "changed"
	assert.Equal(t, "A.b", p.Render())
}
