package introspect

import "fmt"

// IntrospectionError aborts generation for one type.
type IntrospectionError struct {
	Type   string
	Member string
	Reason string
}

func (e *IntrospectionError) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("introspect %s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("introspect %s.%s: %s", e.Type, e.Member, e.Reason)
}
