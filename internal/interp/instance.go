package interp

import "github.com/cwbudde/go-lox/internal/token"

// Instance is a runtime Lox object: a class plus its own field storage
// (spec.md §4.5). Fields shadow methods of the same name.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

// NewInstance constructs an instance with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]interface{})}
}

// Get resolves a property access: a field wins over a method of the same
// name; a method found via FindMethod is bound to this instance before it
// is returned, so closures inside it see "this".
func (i *Instance) Get(name token.Token) (interface{}, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, newRuntimeError(name, "Undefined property '"+name.Lexeme+"'.")
}

// Set unconditionally assigns a field, creating it if necessary.
func (i *Instance) Set(name token.Token, value interface{}) {
	i.Fields[name.Lexeme] = value
}
