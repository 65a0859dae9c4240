// Package emit renders assertion wrappers from introspected class specs.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/abdul-hamid-achik/expect/packages/generator/introspect"
)

// AssertionsPath is the import path every generated file depends on.
const AssertionsPath = "github.com/abdul-hamid-achik/expect/packages/assertions"

// Header is the first line of every generated file.
const Header = "// Code generated by expectgen. DO NOT EDIT."

var wrapperTemplate = template.Must(template.New("wrapper").Funcs(template.FuncMap{
	"isPredicate": func(a introspect.Accessor) bool { return a.Kind == introspect.KindPredicate },
	"isValue":     func(a introspect.Accessor) bool { return a.Kind == introspect.KindValue },
	"params":      params,
}).Parse(`{{.Header}}

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// {{.Name}}Assert is a fluent assertion node for {{.Target}}.
type {{.Name}}Assert struct {
	*assertions.Node[{{.Target}}, *{{.Name}}Assert]
}

// New{{.Name}}Assert wraps v in a new {{.Name}}Assert.
func New{{.Name}}Assert(ctx assertions.Context, v {{.Target}}) *{{.Name}}Assert {
	a := &{{.Name}}Assert{}
	a.Node = assertions.NewNode(ctx, v, a)
	return a
}

// That{{.Name}} starts an assertion chain on v.
func That{{.Name}}(a *assertions.Asserter, v {{.Target}}) *{{.Name}}Assert {
	return New{{.Name}}Assert(a.Root("{{.Name}}"), v)
}
{{range .Accessors}}
{{- if isPredicate .}}
// {{.Name}} checks that {{.Name}}() holds.
func (a *{{$.Name}}Assert) {{.Name}}() *{{$.Name}}Assert {
	v := a.Value()
	return a.Predicate("{{.Name}}", v.{{.Name}}())
}
{{else if isValue .}}
// Has{{.Name}} checks {{.Name}}() against expected.
func (a *{{$.Name}}Assert) Has{{.Name}}(expected {{.Result}}) *{{$.Name}}Assert {
	v := a.Value()
	return a.Query("{{.Name}}", nil, v.{{.Name}}(), expected)
}
{{if .Navigable}}
// {{.Name}} derives a node for {{.Name}}().
func (a *{{$.Name}}Assert) {{.Name}}() *assertions.Value {
	return a.Prop("{{.Name}}", func(v {{$.Target}}) any { return v.{{.Name}}() })
}
{{end}}
{{- else}}
// {{.Name}} checks {{.Name}}({{.ArgNames}}) against expected.
func (a *{{$.Name}}Assert) {{.Name}}({{params .}}, expected {{.Result}}) *{{$.Name}}Assert {
	v := a.Value()
	return a.Query("{{.Name}}", []any{ {{- .ArgNames -}} }, v.{{.Name}}({{.ArgNames}}), expected)
}
{{end}}
{{- end}}`))

type view struct {
	*introspect.ClassSpec
	Header  string
	Imports []string
}

// Source renders the wrapper for spec as gofmt-formatted Go source.
func Source(spec *introspect.ClassSpec) ([]byte, error) {
	imports := append([]string{AssertionsPath}, spec.Imports...)
	sort.Strings(imports)

	var buf bytes.Buffer
	if err := wrapperTemplate.Execute(&buf, view{ClassSpec: spec, Header: Header, Imports: imports}); err != nil {
		return nil, fmt.Errorf("render %s: %w", spec.Name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", spec.Name, err)
	}
	return src, nil
}

// Emit writes the wrapper for spec to w.
func Emit(w io.Writer, spec *introspect.ClassSpec) error {
	src, err := Source(spec)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// FileName is the conventional file name for the wrapper of typeName,
// e.g. order_item_assert.go for OrderItem.
func FileName(typeName string) string {
	var b strings.Builder
	runes := []rune(typeName)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String() + "_assert.go"
}

func params(a introspect.Accessor) string {
	parts := make([]string, len(a.Params))
	for i, p := range a.Params {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}
