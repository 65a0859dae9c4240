// Package path builds the human-readable location attached to a chained value.
//
// A Path is an immutable sequence of segments. Extending a path always
// returns a new Path; the receiver is never modified, so a node's rendered
// location stays stable after children are derived from it.
//
//	p := path.Root("Order").Child("items").Indexed("", 2).Call("get", "sku")
//	p.Render() // Order.items[2].get(sku)
package path

import (
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/expect/packages/core/format"
)

// Separator joins property and call segments.
const Separator = "."

type Kind int

const (
	KindProperty Kind = iota
	KindIndex
	KindCall
)

func (k Kind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindIndex:
		return "index"
	case KindCall:
		return "call"
	default:
		return "unknown"
	}
}

// Segment is one step of a Path.
type Segment struct {
	Kind  Kind
	Name  string
	Index int
	Args  []string
}

func (s Segment) String() string {
	switch s.Kind {
	case KindIndex:
		return s.Name + "[" + strconv.Itoa(s.Index) + "]"
	case KindCall:
		return s.Name + "(" + strings.Join(s.Args, ", ") + ")"
	default:
		return s.Name
	}
}

// attached reports whether the segment renders without a leading separator.
func (s Segment) attached() bool {
	return s.Kind == KindIndex && s.Name == ""
}

type Path struct {
	segments []Segment
}

// Root starts a path with a single property segment.
func Root(name string) Path {
	return Path{segments: []Segment{{Kind: KindProperty, Name: name}}}
}

// Child appends a property segment.
func (p Path) Child(name string) Path {
	return p.with(Segment{Kind: KindProperty, Name: name})
}

// Indexed appends an indexed segment rendered as name[i].
func (p Path) Indexed(name string, i int) Path {
	return p.with(Segment{Kind: KindIndex, Name: name, Index: i})
}

// Call appends a method-call segment rendered as name(arg1, arg2).
func (p Path) Call(name string, args ...any) Path {
	rendered := make([]string, len(args))
	for i, a := range args {
		rendered[i] = format.Value(a)
	}
	return p.with(Segment{Kind: KindCall, Name: name, Args: rendered})
}

// Rename returns a copy whose last segment carries name.
func (p Path) Rename(name string) Path {
	if len(p.segments) == 0 {
		return Root(name)
	}
	segs := p.clone(0)
	last := segs[len(segs)-1]
	last.Name = name
	last.Args = append([]string(nil), last.Args...)
	segs[len(segs)-1] = last
	return Path{segments: segs}
}

func (p Path) with(s Segment) Path {
	segs := p.clone(1)
	segs = append(segs, s)
	return Path{segments: segs}
}

func (p Path) clone(extra int) []Segment {
	segs := make([]Segment, len(p.segments), len(p.segments)+extra)
	copy(segs, p.segments)
	return segs
}

func (p Path) Len() int {
	return len(p.segments)
}

func (p Path) IsZero() bool {
	return len(p.segments) == 0
}

// Segments returns a copy of the segments.
func (p Path) Segments() []Segment {
	return p.clone(0)
}

// Last returns the final segment.
func (p Path) Last() (Segment, bool) {
	if len(p.segments) == 0 {
		return Segment{}, false
	}
	return p.segments[len(p.segments)-1], true
}

// Render joins every segment into a single deterministic string.
func (p Path) Render() string {
	var b strings.Builder
	for i, s := range p.segments {
		if i > 0 && !s.attached() {
			b.WriteString(Separator)
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// RenderFrom renders the segments from index i on, each with its leading
// separator, so that p.RenderFrom(i) can be appended to a rendered prefix.
func (p Path) RenderFrom(i int) string {
	var b strings.Builder
	for j := i; j < len(p.segments); j++ {
		s := p.segments[j]
		if j > 0 && !s.attached() {
			b.WriteString(Separator)
		}
		b.WriteString(s.String())
	}
	return b.String()
}

func (p Path) String() string {
	return p.Render()
}
