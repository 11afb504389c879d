package interp

import "time"

// NativeFunction wraps a Go function as a callable Lox value, per spec.md §5.
type NativeFunction struct {
	name string
	fn   func(in *Interpreter, args []interface{}) (interface{}, error)
	arity int
}

// Arity returns the declared argument count.
func (n *NativeFunction) Arity() int {
	return n.arity
}

// Call invokes the wrapped Go function.
func (n *NativeFunction) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return n.fn(in, args)
}

// clockNative implements the "clock" global of spec.md §5: seconds elapsed
// since the Unix epoch as a float.
var clockNative = &NativeFunction{
	name:  "clock",
	arity: 0,
	fn: func(in *Interpreter, args []interface{}) (interface{}, error) {
		return float64(time.Now().UnixNano()) / 1e9, nil
	},
}
