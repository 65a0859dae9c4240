// Package format renders values the way they appear in failure messages.
package format

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Value returns the default textual form of v.
//
// nil renders as "null". Slices and arrays render as "[a, b]". Maps whose
// element type is struct{} are treated as sets and render as "{a, b}" with
// members sorted by their rendered form.
func Value(v any) string {
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Map && isSetElem(rv.Type().Elem()):
		return "{" + strings.Join(SortedKeys(rv), ", ") + "}"
	case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return Items(items)
	}
	return fmt.Sprintf("%v", v)
}

// List renders a single element bare and several elements as "[a, b]".
func List(items []any) string {
	if len(items) == 1 {
		return Value(items[0])
	}
	return Items(items)
}

// Items always renders "[a, b]".
func Items(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = Value(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// SortedKeys renders the keys of a map value and sorts them.
func SortedKeys(m reflect.Value) []string {
	keys := make([]string, 0, m.Len())
	for _, k := range m.MapKeys() {
		keys = append(keys, Value(k.Interface()))
	}
	sort.Strings(keys)
	return keys
}

func isSetElem(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}
