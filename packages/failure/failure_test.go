package failure

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeT struct {
	fatals []string
}

func (f *fakeT) Helper() {}

func (f *fakeT) Fatal(args ...any) {
	f.fatals = append(f.fatals, fmt.Sprint(args...))
}

func TestBuilder_Render(t *testing.T) {
	err := New("String=<abc>").
		AddStmt("expected: x").
		Addf("but was : %s", "abc").
		Build()

	assert.Equal(t, "String=<abc>\nexpected: x\nbut was : abc", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestBuilder_Cause(t *testing.T) {
	cause := errors.New("connection refused")
	err := New("Value=<1>").AddStmt("expected to succeed").Cause(cause).Build()

	assert.Equal(t, "Value=<1>\nexpected to succeed\ncause: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestBuilder_BuildCopiesStatements(t *testing.T) {
	b := New("A=<1>").AddStmt("one")
	first := b.Build()
	b.AddStmt("two")

	assert.Equal(t, []string{"one"}, first.Statements)
}

func TestPanicking_Catch(t *testing.T) {
	err := Catch(func() {
		New("Value=<1>").AddStmt("boom").Throw(Panicking())
	})

	require.Error(t, err)
	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Value=<1>\nboom", ae.Error())
}

func TestCatch_NoFailure(t *testing.T) {
	assert.NoError(t, Catch(func() {}))
}

func TestCatch_PropagatesOtherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "unrelated", func() {
		_ = Catch(func() { panic("unrelated") })
	})
}

func TestReporter(t *testing.T) {
	ft := &fakeT{}
	New("Value=<1>").AddStmt("expected: 2").Throw(Reporter(ft))

	require.Len(t, ft.fatals, 1)
	assert.Equal(t, "Value=<1>\nexpected: 2", ft.fatals[0])
}

func TestScope_Empty(t *testing.T) {
	var raised []error
	s := Open(SinkFunc(func(err error) { raised = append(raised, err) }))
	s.Close()

	assert.Empty(t, raised)
	assert.NoError(t, s.Err())
	assert.True(t, s.Closed())
}

func TestScope_SingleFailureRaisedAsIs(t *testing.T) {
	var raised []error
	s := Open(SinkFunc(func(err error) { raised = append(raised, err) }))

	first := New("A=<1>").AddStmt("one").Build()
	s.Raise(first)
	s.Close()

	require.Len(t, raised, 1)
	assert.Same(t, first, raised[0])
}

func TestScope_MultipleFailures(t *testing.T) {
	var raised []error
	s := Open(SinkFunc(func(err error) { raised = append(raised, err) }))

	New("String=<abc>").AddStmt("expected to start with: x").Throw(s)
	New("String=<abc>").AddStmt("expected to end with: y").Throw(s)
	s.Close()
	s.Close()

	require.Len(t, raised, 1)
	var me *MultipleError
	require.ErrorAs(t, raised[0], &me)
	assert.Len(t, me.Failures, 2)
	assert.Equal(t, "Multiple Failures (2 failures)\n"+
		"\tString=<abc>\n"+
		"\texpected to start with: x\n"+
		"\tString=<abc>\n"+
		"\texpected to end with: y", me.Error())
}

func TestScope_RaiseAfterClose(t *testing.T) {
	var raised []error
	s := Open(SinkFunc(func(err error) { raised = append(raised, err) }))
	s.Close()

	late := New("A=<1>").Build()
	s.Raise(late)

	require.Len(t, raised, 1)
	assert.Same(t, late, raised[0])
}

func TestScope_Nested(t *testing.T) {
	err := Catch(func() {
		outer := Open(Panicking())
		defer outer.Close()

		New("A=<1>").AddStmt("outer").Throw(outer)

		inner := Open(outer)
		New("B=<2>").AddStmt("inner one").Throw(inner)
		New("B=<2>").AddStmt("inner two").Throw(inner)
		inner.Close()
	})

	var me *MultipleError
	require.ErrorAs(t, err, &me)
	require.Len(t, me.Failures, 2)
	assert.Equal(t, "Multiple Failures (2 failures)\n"+
		"\tA=<1>\n"+
		"\touter\n"+
		"\tMultiple Failures (2 failures)\n"+
		"\t\tB=<2>\n"+
		"\t\tinner one\n"+
		"\t\tB=<2>\n"+
		"\t\tinner two", me.Error())
}

func TestIsFailure(t *testing.T) {
	ae := New("A=<1>").Build()
	te := &TypeMismatchError{AssertionError: ae}
	me := &MultipleError{Failures: []error{ae, ae}}

	assert.True(t, IsFailure(ae))
	assert.True(t, IsFailure(te))
	assert.True(t, IsFailure(me))
	assert.True(t, IsFailure(fmt.Errorf("wrapped: %w", ae)))
	assert.False(t, IsFailure(errors.New("plain")))
	assert.False(t, IsFailure(nil))
}
