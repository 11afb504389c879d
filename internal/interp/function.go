package interp

import "github.com/cwbudde/go-lox/internal/ast"

// Function is a user-defined function or method, carrying the environment
// active when it was declared (spec.md §4.5, closures).
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps a parsed function declaration as a callable value.
func NewFunction(declaration *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

// Name returns the function's declared name.
func (f *Function) Name() string {
	return f.declaration.Name.Lexeme
}

// Bind returns a copy of f with "this" defined to instance, used when a
// method is looked up off an instance (spec.md §4.5).
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

// Arity returns the declared parameter count.
func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Call executes the function body in a fresh environment enclosing its
// closure, binding parameters positionally. Initializers always return
// "this" regardless of an explicit return statement (spec.md §4.5).
func (f *Function) Call(in *Interpreter, args []interface{}) (result interface{}, err error) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			ret, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.isInitializer {
				result = f.closure.GetAt(0, "this")
			} else {
				result = ret.value
			}
		}
	}()

	if execErr := in.executeBlock(f.declaration.Body, env); execErr != nil {
		return nil, execErr
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}
