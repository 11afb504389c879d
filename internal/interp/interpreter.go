package interp

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/token"
)

// Interpreter walks a resolved AST and evaluates it, per spec.md §4.6.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	depths      map[ast.Expr]int
	stdout      io.Writer
}

// New creates an Interpreter that writes Print output to stdout and
// resolves Variable/This/Super/Assign references via depths, the resolver's
// node-identity -> scope-depth side table.
func New(stdout io.Writer, depths map[ast.Expr]int) *Interpreter {
	globals := NewEnvironment()
	globals.Define("clock", clockNative)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		depths:      depths,
		stdout:      stdout,
	}
}

// Globals returns the top-level environment, for hosts inspecting globals.
func (in *Interpreter) Globals() *Environment {
	return in.globals
}

// SetDepths merges a new resolver side table into the current one, used by a
// REPL host that resolves each line independently but keeps one interpreter
// across lines. Entries from earlier lines are kept, so functions declared on
// an earlier line still find their locals when called later.
func (in *Interpreter) SetDepths(depths map[ast.Expr]int) {
	if in.depths == nil {
		in.depths = make(map[ast.Expr]int, len(depths))
	}
	for expr, depth := range depths {
		in.depths[expr] = depth
	}
}

// Interpret executes a full program, stopping at the first runtime error.
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if stmt == nil {
			continue
		}
		if err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, NewEnclosedEnvironment(in.environment))

	case *ast.ClassStmt:
		return in.execClassStmt(s)

	case *ast.ExpressionStmt:
		_, err := in.eval(s.Expression)
		return err

	case *ast.FunctionStmt:
		fn := NewFunction(s, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.IfStmt:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.exec(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return in.exec(s.ElseBranch)
		}
		return nil

	case *ast.PrintStmt:
		v, err := in.eval(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, stringify(v))
		return nil

	case *ast.ReturnStmt:
		var value interface{}
		if s.Value != nil {
			v, err := in.eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		panic(returnSignal{value: value})

	case *ast.VarStmt:
		var value interface{}
		if s.Initializer != nil {
			v, err := in.eval(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.exec(s.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

// executeBlock runs statements in environment, always restoring the
// interpreter's previous environment afterward, per spec.md §4.6.
func (in *Interpreter) executeBlock(statements []ast.Stmt, environment *Environment) (err error) {
	previous := in.environment
	in.environment = environment
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		if stmt == nil {
			continue
		}
		if err = in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execClassStmt(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, nil)

	if s.Superclass != nil {
		in.environment = NewEnclosedEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := make(map[string]*Function)
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = NewFunction(method, in.environment, method.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)

	if s.Superclass != nil {
		in.environment = in.environment.enclosing
	}

	return in.environment.Assign(s.Name, class)
}

func (in *Interpreter) eval(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.Assign:
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.depths[e]; ok {
			in.environment.AssignAt(distance, e.Name, v)
		} else if err := in.globals.Assign(e.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*Instance)
		if !ok {
			return nil, newRuntimeError(e.Name, "Only instances have properties.")
		}
		return instance.Get(e.Name)

	case *ast.Grouping:
		return in.eval(e.Inner)

	case *ast.Literal:
		return e.Value, nil

	case *ast.Logical:
		left, err := in.eval(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == token.OR {
			if isTruthy(left) {
				return left, nil
			}
		} else if !isTruthy(left) {
			return left, nil
		}
		return in.eval(e.Right)

	case *ast.Set:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*Instance)
		if !ok {
			return nil, newRuntimeError(e.Name, "Only instances have fields.")
		}
		value, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		instance.Set(e.Name, value)
		return value, nil

	case *ast.Super:
		return in.evalSuper(e)

	case *ast.This:
		return in.lookUpVariable(e.Keyword, e)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)
	}
	return nil, nil
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := in.depths[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) evalUnary(e *ast.Unary) (interface{}, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !isTruthy(right), nil
	}
	return nil, nil
}

func (in *Interpreter) evalBinary(e *ast.Binary) (interface{}, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.MINUS:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return l - r, nil

	case token.SLASH:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		if r == 0 {
			return nil, newRuntimeError(e.Op, "Division by zero.")
		}
		return l / r, nil

	case token.STAR:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return l * r, nil

	case token.PLUS:
		if l, ok := left.(float64); ok {
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		}
		if _, lok := left.(string); lok {
			return stringify(left) + stringify(right), nil
		}
		if _, rok := right.(string); rok {
			return stringify(left) + stringify(right), nil
		}
		return nil, newRuntimeError(e.Op, "Operands must be two numbers or at least one string.")

	case token.GREATER:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return l > r, nil

	case token.GREATER_EQUAL:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return l >= r, nil

	case token.LESS:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return l < r, nil

	case token.LESS_EQUAL:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return l <= r, nil

	case token.BANG_EQUAL:
		return !isEqual(left, right), nil

	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	return nil, nil
}

func bothNumbers(a, b interface{}) (float64, float64, bool) {
	an, ok := a.(float64)
	if !ok {
		return 0, 0, false
	}
	bn, ok := b.(float64)
	if !ok {
		return 0, 0, false
	}
	return an, bn, true
}

func (in *Interpreter) evalCall(e *ast.Call) (interface{}, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(e.Args))
	for i, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.ClosingParen, "Can only call functions and classes.")
	}

	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.ClosingParen, fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}

	return callable.Call(in, args)
}

func (in *Interpreter) evalSuper(e *ast.Super) (interface{}, error) {
	distance := in.depths[e]
	superclass, _ := in.environment.GetAt(distance, "super").(*Class)
	instance, _ := in.environment.GetAt(distance-1, "this").(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(instance), nil
}
