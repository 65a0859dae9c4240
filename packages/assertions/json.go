package assertions

import (
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/expect/packages/failure"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

var bracketIndex = regexp.MustCompile(`\[(\d+)\]`)

// JSONAssert wraps a JSON document.
type JSONAssert struct {
	*Node[string, *JSONAssert]
}

func NewJSON(ctx Context, doc string) *JSONAssert {
	a := &JSONAssert{}
	a.Node = NewNode(ctx, doc, a)
	return a
}

func (j *JSONAssert) IsValid() *JSONAssert {
	return j.Holds(gjson.Valid(j.Value()), "be valid JSON")
}

// Get navigates to the value at a gjson path. Bracket indexes are accepted,
// so "items[0].id" and "items.0.id" are the same path. A path that does not
// exist yields null.
func (j *JSONAssert) Get(p string) *Value {
	var v any
	if r := j.lookup(p); r.Exists() {
		v = r.Value()
	}
	return NewValue(j.Derive(j.Path().Call("get", p)), v)
}

func (j *JSONAssert) HasPath(p string) *JSONAssert {
	return j.Holds(j.lookup(p).Exists(), "have path: %s", p)
}

// MatchesSchema validates the document against a JSON Schema given inline.
func (j *JSONAssert) MatchesSchema(schema string) *JSONAssert {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(j.Value()),
	)
	if err != nil {
		return j.Fail(func(b *failure.Builder) {
			b.AddStmt("expected to match schema").Cause(err)
		})
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, "- "+desc.String())
	}
	return j.holds(result.Valid(), "match schema", details...)
}

func (j *JSONAssert) lookup(p string) gjson.Result {
	return gjson.Get(j.Value(), convertBracketNotation(p))
}

// convertBracketNotation turns "items[0].tags[1]" into "items.0.tags.1".
func convertBracketNotation(p string) string {
	return strings.TrimPrefix(bracketIndex.ReplaceAllString(p, ".$1"), ".")
}
