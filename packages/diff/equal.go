package diff

import (
	"math"
	"reflect"
)

// Equal reports structural equality, the relation the differencer reports
// against: two collections are Equal exactly when Values finds nothing to
// show between them.
//
//   - Numbers of different Go kinds compare by value, so an int expectation
//     matches a float64 decoded from JSON. Two integers compare exactly.
//   - Slices and arrays compare element by element; a nil slice equals an
//     empty one.
//   - Maps compare by key membership and then value by value.
//   - Pointers compare what they point to, structs field by field.
func Equal(a, b any) bool {
	c := comparer{seen: map[visit]bool{}}
	return c.equal(reflect.ValueOf(a), reflect.ValueOf(b))
}

type visit struct {
	x, y uintptr
	t    reflect.Type
}

type comparer struct {
	seen map[visit]bool
}

func (c comparer) equal(x, y reflect.Value) bool {
	x, y = unwrap(x), unwrap(y)
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	if isNumber(x) && isNumber(y) {
		return numbersEqual(x, y)
	}
	if isSequence(x) && isSequence(y) {
		if x.Len() != y.Len() {
			return false
		}
		if c.cyclic(x, y) {
			return true
		}
		for i := 0; i < x.Len(); i++ {
			if !c.equal(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	}
	if x.Kind() == reflect.Map && y.Kind() == reflect.Map {
		if c.cyclic(x, y) {
			return true
		}
		return c.mapsEqual(x, y)
	}
	if x.Type() != y.Type() {
		return false
	}

	switch x.Kind() {
	case reflect.Pointer:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		if x.Pointer() == y.Pointer() || c.cyclic(x, y) {
			return true
		}
		return c.equal(x.Elem(), y.Elem())
	case reflect.Struct:
		for i := 0; i < x.NumField(); i++ {
			if !c.equal(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	case reflect.String:
		return x.String() == y.String()
	case reflect.Bool:
		return x.Bool() == y.Bool()
	case reflect.Complex64, reflect.Complex128:
		return x.Complex() == y.Complex()
	case reflect.Func:
		return x.IsNil() && y.IsNil()
	case reflect.Chan, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	}
	return false
}

// mapsEqual matches every key of x with an Equal key of y, and back.
func (c comparer) mapsEqual(x, y reflect.Value) bool {
	if x.Len() != y.Len() {
		return false
	}
	matched := make([]bool, y.Len())
	ykeys := y.MapKeys()
	for _, xk := range x.MapKeys() {
		found := false
		for i, yk := range ykeys {
			if matched[i] || !c.equal(xk, yk) {
				continue
			}
			if !c.equal(x.MapIndex(xk), y.MapIndex(yk)) {
				return false
			}
			matched[i], found = true, true
			break
		}
		if !found {
			return false
		}
	}
	return true
}

// cyclic records the pair and reports whether it is already being compared.
func (c comparer) cyclic(x, y reflect.Value) bool {
	if x.Kind() == reflect.Array || x.Kind() != y.Kind() || x.Type() != y.Type() {
		return false
	}
	if x.Kind() == reflect.Slice && (x.Len() == 0 || x.IsNil() || y.IsNil()) {
		return false
	}
	v := visit{x: x.Pointer(), y: y.Pointer(), t: x.Type()}
	if c.seen[v] {
		return true
	}
	c.seen[v] = true
	return false
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isNumber(v reflect.Value) bool {
	return v.CanInt() || v.CanUint() || v.CanFloat()
}

func isSequence(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

// numbersEqual compares integers exactly. A float only equals an integer
// when it holds that integer's exact value.
func numbersEqual(x, y reflect.Value) bool {
	switch {
	case x.CanFloat() && y.CanFloat():
		return x.Float() == y.Float()
	case x.CanFloat():
		return floatEqualsInteger(x.Float(), y)
	case y.CanFloat():
		return floatEqualsInteger(y.Float(), x)
	case x.CanInt() && y.CanInt():
		return x.Int() == y.Int()
	case x.CanUint() && y.CanUint():
		return x.Uint() == y.Uint()
	case x.CanInt():
		return x.Int() >= 0 && uint64(x.Int()) == y.Uint()
	default:
		return y.Int() >= 0 && uint64(y.Int()) == x.Uint()
	}
}

func floatEqualsInteger(f float64, n reflect.Value) bool {
	if f != math.Trunc(f) {
		return false
	}
	if n.CanInt() {
		return f >= math.MinInt64 && f < math.MaxInt64 && int64(f) == n.Int()
	}
	return f >= 0 && f < math.MaxUint64 && uint64(f) == n.Uint()
}
