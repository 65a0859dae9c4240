// Package introspect classifies the accessor methods of a Go type.
//
// The accessors of a type are the exported methods in its method set:
// methods declared on it, methods promoted from embedded fields, and all
// methods of an interface type. Methods declared in the type's own package
// come first, in file name order and then declaration order; promoted
// methods from other packages follow by name. The result is the same on
// every run. Each method with a result becomes an Accessor:
//   - Set* methods are excluded, whatever they return
//   - no parameters and a boolean result: a predicate
//   - no parameters and any other result: a value accessor
//   - one or more parameters: a parameterized query
//
// Methods with several results or variadic parameters cannot be expressed as
// a single check and fail the whole type with an IntrospectionError.
package introspect
