package output

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/expect/packages/generator"
	"github.com/abdul-hamid-achik/expect/packages/generator/introspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func sampleReport() *generator.Report {
	return &generator.Report{
		Results: []*generator.FileResult{
			{Package: "./people", Type: "Person", Path: "people/person_assert.go", Status: generator.StatusWritten, Accessors: 5, Excluded: 3},
			{Package: "./people", Type: "Address", Path: "people/address_assert.go", Status: generator.StatusStale, Diff: "-a\n+b\n"},
			{Package: "./people", Type: "Missing", Status: generator.StatusFailed, Err: errors.New("introspect Missing: type not found")},
		},
		Written: 1,
		Stale:   1,
		Failed:  1,
	}
}

func sampleShape() *introspect.Shape {
	return &introspect.Shape{
		Name:        "Account",
		Target:      "Account",
		PackageName: "bank",
		PackagePath: "example.com/bank",
		Accessors: []introspect.Accessor{
			{Name: "SetOwner", Excluded: true, Reason: "setter"},
			{Name: "IsOpen", Result: "bool", Kind: introspect.KindPredicate, Category: introspect.CategoryBoolean},
			{Name: "Balance", Params: []introspect.Param{{Name: "currency", Type: "string"}}, Result: "int", Kind: introspect.KindQuery, Category: introspect.CategoryPrimitive},
		},
	}
}

func TestConsoleFormatter_FormatReport(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithVerbose(true))

	f.FormatReport(sampleReport())
	out := buf.String()

	assert.Contains(t, out, "✓ ./people.Person → people/person_assert.go")
	assert.Contains(t, out, "Accessors: 5 generated, 3 excluded")
	assert.Contains(t, out, "✗ ./people.Address")
	assert.Contains(t, out, "out of date; run expectgen gen")
	assert.Contains(t, out, "      -a\n      +b\n")
	assert.Contains(t, out, "x ./people.Missing (introspect Missing: type not found)")
	assert.Contains(t, out, "Files: 1 written, 1 stale, 1 failed, 3 total")
}

func TestConsoleFormatter_FormatShape(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatShape(sampleShape())

	assert.Equal(t, "Account (example.com/bank)\n"+
		"  excluded   SetOwner (setter)\n"+
		"  predicate  IsOpen() bool\n"+
		"  query      Balance(currency string) int\n", buf.String())
}

func TestJSONFormatter_Flush(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	f.FormatHeader("v1")
	f.FormatReport(sampleReport())
	f.FormatShape(sampleShape())
	f.FormatError(errors.New("boom"))
	require.NoError(t, f.Flush(1500*time.Millisecond))

	doc := buf.String()
	require.True(t, gjson.Valid(doc))
	assert.Equal(t, int64(3), gjson.Get(doc, "summary.total").Int())
	assert.Equal(t, int64(1), gjson.Get(doc, "summary.stale").Int())
	assert.Equal(t, "written", gjson.Get(doc, "files.0.status").String())
	assert.Equal(t, "introspect Missing: type not found", gjson.Get(doc, "files.2.error").String())
	assert.Equal(t, "predicate", gjson.Get(doc, "types.0.accessors.1.kind").String())
	assert.Equal(t, "currency", gjson.Get(doc, "types.0.accessors.2.params.0.name").String())
	assert.True(t, gjson.Get(doc, "types.0.accessors.0.excluded").Bool())
	assert.Equal(t, "boom", gjson.Get(doc, "errors.0").String())
	assert.Equal(t, float64(1500), gjson.Get(doc, "duration").Float())
}

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter("", Options{})
	require.NoError(t, err)
	assert.IsType(t, &ConsoleFormatter{}, f)

	f, err = NewFormatter("json", Options{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	_, ok := f.(Flushable)
	assert.True(t, ok)

	_, err = NewFormatter("junit", Options{})
	assert.EqualError(t, err, `unknown output format "junit" (want console or json)`)
}
