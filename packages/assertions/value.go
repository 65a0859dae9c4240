package assertions

// Value wraps a value of any type. Prop and Query children are Values.
type Value struct {
	*Node[any, *Value]
}

func NewValue(ctx Context, v any) *Value {
	a := &Value{}
	a.Node = NewNode(ctx, v, a)
	return a
}
