package interp

import "github.com/cwbudde/go-lox/internal/token"

// Environment is a chained name->value scope, per spec.md §3 and §4.3.
type Environment struct {
	values    map[string]interface{}
	enclosing *Environment
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]interface{})}
}

// NewEnclosedEnvironment creates a new scope nested inside enclosing.
func NewEnclosedEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), enclosing: enclosing}
}

// Define unconditionally inserts or overwrites name in this scope.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get walks outward through enclosing scopes until name is found.
func (e *Environment) Get(name token.Token) (interface{}, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, newRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// Assign walks outward to the defining scope and updates it in place.
func (e *Environment) Assign(name token.Token, value interface{}) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return newRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// Ancestor returns the environment exactly distance hops outward; distance
// zero returns e itself, per spec.md §3.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads directly from Ancestor(distance), never walking further.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.Ancestor(distance).values[name]
}

// AssignAt writes directly into Ancestor(distance).
func (e *Environment) AssignAt(distance int, name token.Token, value interface{}) {
	e.Ancestor(distance).values[name.Lexeme] = value
}
