// Package resolver performs the static lexical-scope analysis pass of
// spec.md §4.4: it walks the parsed AST, maintains a stack of block scopes,
// and records a depth for every Variable, Assign, This, and Super reference
// into a side table keyed by expression identity, consumed later by
// internal/interp.
package resolver

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver produces the Depths side table for a parsed program.
type Resolver struct {
	scopes          []map[string]bool
	depths          map[ast.Expr]int
	currentFunction functionType
	currentClass    classType
	errors          []*errors.CompilerError
}

// New creates a Resolver.
func New() *Resolver {
	return &Resolver{depths: make(map[ast.Expr]int)}
}

// Errors returns the static errors accumulated during Resolve.
func (r *Resolver) Errors() []*errors.CompilerError {
	return r.errors
}

// Depths returns the resolved node-identity -> scope-depth side table.
// Absence of an entry means the reference is a global (spec.md §3).
func (r *Resolver) Depths() map[ast.Expr]int {
	return r.depths
}

// Resolve walks every statement, skipping nil entries left by parser error
// recovery (spec.md §4.2).
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStatements(statements)
}

func (r *Resolver) resolveStatements(statements []ast.Stmt) {
	for _, stmt := range statements {
		if stmt != nil {
			r.resolveStmt(stmt)
		}
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()

	case *ast.ClassStmt:
		r.resolveClassStmt(s)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.ReturnStmt:
		if r.currentFunction == functionNone {
			r.errors = append(r.errors, errors.NewAtToken(errors.StaticError, s.Keyword, "Can't return from top-level code."))
		}
		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				r.errors = append(r.errors, errors.NewAtToken(errors.StaticError, s.Keyword, "Can't return a value from an initializer."))
			}
			r.resolveExpr(s.Value)
		}

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	}
}

func (r *Resolver) resolveClassStmt(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil && s.Superclass.Name.Lexeme == s.Name.Lexeme {
		r.errors = append(r.errors, errors.NewAtToken(errors.StaticError, s.Superclass.Name, "A class can't inherit from itself."))
	}

	if s.Superclass != nil {
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)
	}

	if s.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		declaration := functionMethod
		if method.Name.Lexeme == "init" {
			declaration = functionInitializer
		}
		r.resolveFunction(method, declaration)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Super:
		if r.currentClass == classNone {
			r.errors = append(r.errors, errors.NewAtToken(errors.StaticError, e.Keyword, "Can't use 'super' outside of a class."))
		} else if r.currentClass != classSubclass {
			r.errors = append(r.errors, errors.NewAtToken(errors.StaticError, e.Keyword, "Can't use 'super' in a class with no superclass."))
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.This:
		if r.currentClass == classNone {
			r.errors = append(r.errors, errors.NewAtToken(errors.StaticError, e.Keyword, "Can't use 'this' outside of a class."))
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.errors = append(r.errors, errors.NewAtToken(errors.StaticError, e.Name, fmt.Sprintf("Can't read local variable '%s' in its own initializer.", e.Name.Lexeme)))
			}
		}
		r.resolveLocal(e, e.Name)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.errors = append(r.errors, errors.NewAtToken(errors.StaticError, name, fmt.Sprintf("Already a variable with name '%s' in this scope.", name.Lexeme)))
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal records expr's depth the first time name is found walking
// outward from the innermost scope; absence leaves expr unresolved (global).
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.depths[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
