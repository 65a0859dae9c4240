// Package failure builds assertion failure messages and decides where they go.
//
// A Builder collects the statement lines of one unmet expectation and hands
// the finished error to a Sink. Three sinks exist:
//   - Panicking: raises the failure with panic (recover it with Catch)
//   - Reporter: forwards the failure to a testing.TB style Fatal
//   - Scope: soft assertions; failures are recorded and raised together
//     when the scope is closed
//
// Message layout:
//
//	String=<abc>
//	expected to start with: x
//
// A scope holding two or more failures raises a MultipleError:
//
//	Multiple Failures (2 failures)
//		String=<abc>
//		expected to start with: x
//		String=<abc>
//		expected to end with: y
package failure
