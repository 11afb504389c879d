// Package interp implements the chained-environment tree-walking evaluator
// of spec.md §4.6, including the runtime objects of §4.5.
//
// Runtime values are represented as Go's native dynamic type rather than a
// hand-rolled tagged union: nil, bool, float64, string, *Function, *Class,
// *NativeFunction, and *Instance. This mirrors the teacher's preference for
// concrete Go types over interface wrapping wherever the language already
// gives the type safety needed, and matches the Go Lox ports in the example
// pack, which evaluate expressions into plain interface{} values.
package interp

import (
	"strconv"
	"strings"
)

// Callable is implemented by every value that can appear as a Call callee.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []interface{}) (interface{}, error)
}

// isTruthy implements spec.md §4.7: nil and false are falsy, everything else
// (including 0 and "") is truthy.
func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements the equality rule of spec.md §4.7. Numbers compare by
// IEEE-754 rules (so NaN != NaN); instances, classes, and functions compare
// by identity, which Go's == already gives for the pointer types involved.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if an, ok := a.(float64); ok {
		bn, ok := b.(float64)
		return ok && an == bn
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		return ok && ab == bb
	}
	return a == b
}

// stringify implements spec.md §4.7's stringification table.
func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	case *Function:
		return "<fn " + val.Name() + ">"
	case *NativeFunction:
		return "<native fn>"
	case *Class:
		return "<class " + val.Name + ">"
	case *Instance:
		return "<" + val.Class.Name + " instance>"
	default:
		return ""
	}
}

// formatNumber renders a float64 as its shortest decimal representation,
// with integer-valued numbers printed without a trailing ".0" (spec.md §4.7).
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		return s
	}
	if strings.HasSuffix(s, ".0") {
		return strings.TrimSuffix(s, ".0")
	}
	return s
}
