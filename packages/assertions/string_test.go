package assertions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringAssert(t *testing.T) {
	tests := []struct {
		name    string
		check   func(s *StringAssert)
		message string
	}{
		{
			name:  "starts with",
			check: func(s *StringAssert) { s.StartsWith("ab") },
		},
		{
			name:    "starts with fails",
			check:   func(s *StringAssert) { s.StartsWith("x") },
			message: "String=<abc>\nexpected to start with: x",
		},
		{
			name:    "not ends with fails",
			check:   func(s *StringAssert) { s.Not().EndsWith("bc") },
			message: "String=<abc>\nexpected not to end with: bc",
		},
		{
			name:  "contains",
			check: func(s *StringAssert) { s.Contains("b").Not().Contains("z") },
		},
		{
			name:    "is empty fails",
			check:   func(s *StringAssert) { s.IsEmpty() },
			message: "String=<abc>\nexpected to be empty",
		},
		{
			name:  "matches with slashes",
			check: func(s *StringAssert) { s.Matches("/^a.c$/") },
		},
		{
			name:    "matches fails",
			check:   func(s *StringAssert) { s.Matches(`\d+`) },
			message: "String=<abc>\nexpected to match: /\\d+/",
		},
		{
			name:    "length",
			check:   func(s *StringAssert) { s.Length().Equal(4) },
			message: "String=<abc>.length=<3>\nexpected: 4\nbut was : 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			tt.check(With(rec).ThatString("abc"))
			if tt.message == "" {
				assert.Empty(t, rec.errs)
				return
			}
			require.Len(t, rec.errs, 1)
			assert.Equal(t, tt.message, rec.errs[0].Error())
		})
	}
}

func TestStringAssert_InvalidPattern(t *testing.T) {
	rec := &recorder{}
	With(rec).ThatString("abc").Not().Matches("(")

	require.Len(t, rec.errs, 1)
	assert.Contains(t, rec.errs[0].Error(), "String=<abc>\nexpected a valid pattern: /(/\ncause: error parsing regexp")
}

func TestNumberAssert(t *testing.T) {
	rec := &recorder{}
	a := With(rec)

	ThatNumber(a, 5).GreaterThan(4).GreaterOrEqual(5).LessThan(6).LessOrEqual(5).Between(1, 5)
	ThatNumber(a, 0.0).IsZero()
	ThatNumber(a, "b").GreaterThan("a")
	assert.Empty(t, rec.errs)

	ThatNumber(a, 5).Between(6, 9)
	ThatNumber(a, 5).Not().GreaterThan(1)
	assert.Equal(t, []string{
		"Number=<5>\nexpected to be between: 6 and 9",
		"Number=<5>\nexpected not to be greater than: 1",
	}, rec.messages())
}
