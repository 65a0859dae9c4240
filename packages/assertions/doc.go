// Package assertions provides fluent, chainable test expectations.
//
//	a := assertions.New(t)
//	a.ThatString("abc").StartsWith("a").Not().Contains("z").Length().LessThan(5)
//	assertions.ThatSlice(a, []int{1, 4, 7}).ContainsExactly(1, 4, 7)
//
// Every wrapper embeds a Node, which carries the value, its location, the
// node it was derived from and a pending negation:
//   - Not() negates exactly the next call in the chain
//   - Prop, At, Length, Get and Query derive child nodes; Back returns to the parent
//   - Narrow refines a node to a more specific wrapper after a type check
//
// Failures go to the Asserter's sink: New fails the test immediately, Must
// panics, and Soft collects failures until the scope is closed:
//
//	assertions.Softly(t, func(s *assertions.Soft) {
//		s.ThatString("abc").StartsWith("x")
//		s.ThatString("abc").EndsWith("y")
//	})
package assertions
