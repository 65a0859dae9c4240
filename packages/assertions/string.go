package assertions

import (
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/expect/packages/failure"
)

type StringAssert struct {
	*Node[string, *StringAssert]
}

func NewString(ctx Context, v string) *StringAssert {
	a := &StringAssert{}
	a.Node = NewNode(ctx, v, a)
	return a
}

func (s *StringAssert) StartsWith(prefix string) *StringAssert {
	return s.Holds(strings.HasPrefix(s.Value(), prefix), "start with: %s", prefix)
}

func (s *StringAssert) EndsWith(suffix string) *StringAssert {
	return s.Holds(strings.HasSuffix(s.Value(), suffix), "end with: %s", suffix)
}

func (s *StringAssert) Contains(sub string) *StringAssert {
	return s.Holds(strings.Contains(s.Value(), sub), "contain: %s", sub)
}

func (s *StringAssert) IsEmpty() *StringAssert {
	return s.Holds(s.Value() == "", "be empty")
}

// Matches checks the value against a regular expression. Slashes around
// the pattern are optional.
func (s *StringAssert) Matches(pattern string) *StringAssert {
	pattern = strings.TrimSuffix(strings.TrimPrefix(pattern, "/"), "/")
	re, err := regexp.Compile(pattern)
	if err != nil {
		return s.Fail(func(b *failure.Builder) {
			b.Addf("expected a valid pattern: /%s/", pattern).Cause(err)
		})
	}
	return s.Holds(re.MatchString(s.Value()), "match: /%s/", pattern)
}

// Length navigates to the length of the string.
func (s *StringAssert) Length() *NumberAssert[int] {
	return NewNumber(s.Derive(s.Path().Child("length")), len(s.Value()))
}
