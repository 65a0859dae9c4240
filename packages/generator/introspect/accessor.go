package introspect

import "strings"

type Kind int

const (
	KindPredicate Kind = iota
	KindValue
	KindQuery
)

func (k Kind) String() string {
	switch k {
	case KindPredicate:
		return "predicate"
	case KindValue:
		return "value"
	case KindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Category is the shape of an accessor's result type.
type Category int

const (
	CategoryBoolean Category = iota
	CategoryPrimitive
	CategoryReference
)

func (c Category) String() string {
	switch c {
	case CategoryBoolean:
		return "boolean"
	case CategoryPrimitive:
		return "primitive"
	case CategoryReference:
		return "reference"
	default:
		return "unknown"
	}
}

type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Accessor describes one query method of the target type.
type Accessor struct {
	Name     string   `json:"name"`
	Params   []Param  `json:"params,omitempty"`
	Result   string   `json:"result"`
	Kind     Kind     `json:"kind"`
	Category Category `json:"category"`
	Excluded bool     `json:"excluded,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

// Navigable reports whether the accessor also gets a navigation method.
func (a Accessor) Navigable() bool {
	return a.Kind == KindValue && a.Category == CategoryReference
}

// CheckName is the name of the generated check method.
func (a Accessor) CheckName() string {
	if a.Kind == KindValue {
		return "Has" + a.Name
	}
	return a.Name
}

// Generated lists every method name the accessor produces.
func (a Accessor) Generated() []string {
	names := []string{a.CheckName()}
	if a.Navigable() {
		names = append(names, a.Name)
	}
	return names
}

// ArgNames returns the parameter names joined for a call expression.
func (a Accessor) ArgNames() string {
	names := make([]string, len(a.Params))
	for i, p := range a.Params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// isSetter matches Set and SetX, but not names like Settle.
func isSetter(name string) bool {
	if !strings.HasPrefix(name, "Set") {
		return false
	}
	rest := name[len("Set"):]
	return rest == "" || (rest[0] >= 'A' && rest[0] <= 'Z') || rest[0] == '_'
}

// reserved are the names a generated wrapper already has: the embedded
// Node field and the methods it promotes.
var reserved = map[string]bool{
	"As":        true,
	"Back":      true,
	"Contained": true,
	"Derive":    true,
	"Equal":     true,
	"Fail":      true,
	"Holds":     true,
	"IsA":       true,
	"IsNull":    true,
	"Node":      true,
	"Not":       true,
	"Path":      true,
	"Predicate": true,
	"Prop":      true,
	"Query":     true,
	"Raw":       true,
	"Same":      true,
	"SetValue":  true,
	"Update":    true,
	"Value":     true,
}

// identifiers used inside generated method bodies.
var reservedParams = map[string]bool{
	"a":        true,
	"v":        true,
	"expected": true,
	"_":        true,
	"":         true,
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
