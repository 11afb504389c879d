package resolver

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
)

func resolve(t *testing.T, source string) (*Resolver, []ast.Stmt) {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", source, p.Errors())
	}
	r := New()
	r.Resolve(stmts)
	return r, stmts
}

func TestResolveLocalVariableDepth(t *testing.T) {
	r, stmts := resolve(t, `
		var a = "global";
		{
			var a = "local";
			print a;
		}
	`)
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", r.Errors())
	}

	outerBlock := stmts[1].(*ast.BlockStmt)
	printStmt := outerBlock.Statements[1].(*ast.PrintStmt)
	printExpr := printStmt.Expression.(*ast.Variable)

	depth, ok := r.Depths()[printExpr]
	if !ok || depth != 0 {
		t.Errorf("got depth %d (ok=%v), want 0", depth, ok)
	}
}

func TestResolveGlobalHasNoDepth(t *testing.T) {
	r, stmts := resolve(t, `
		var a = 1;
		print a;
	`)
	printStmt := stmts[1].(*ast.PrintStmt)
	printExpr := printStmt.Expression.(*ast.Variable)
	if _, ok := r.Depths()[printExpr]; ok {
		t.Errorf("global variable reference should have no depth entry")
	}
}

func TestResolveSelfReferencingInitializerIsError(t *testing.T) {
	r, _ := resolve(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	if len(r.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(r.Errors()), r.Errors())
	}
	if r.Errors()[0].Message != "Can't read local variable 'a' in its own initializer." {
		t.Errorf("got message %q", r.Errors()[0].Message)
	}
}

func TestResolveDuplicateDeclarationInScope(t *testing.T) {
	r, _ := resolve(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	if len(r.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(r.Errors()), r.Errors())
	}
	if r.Errors()[0].Message != "Already a variable with name 'a' in this scope." {
		t.Errorf("got message %q", r.Errors()[0].Message)
	}
}

func TestResolveTopLevelReturnIsError(t *testing.T) {
	r, _ := resolve(t, `return 1;`)
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't return from top-level code." {
		t.Fatalf("got errors %+v", r.Errors())
	}
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	r, _ := resolve(t, `
		class A {
			init() {
				return 1;
			}
		}
	`)
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't return a value from an initializer." {
		t.Fatalf("got errors %+v", r.Errors())
	}
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	r, _ := resolve(t, `print this;`)
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't use 'this' outside of a class." {
		t.Fatalf("got errors %+v", r.Errors())
	}
}

func TestResolveSuperWithNoSuperclassIsError(t *testing.T) {
	r, _ := resolve(t, `
		class A {
			method() {
				super.method();
			}
		}
	`)
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't use 'super' in a class with no superclass." {
		t.Fatalf("got errors %+v", r.Errors())
	}
}

func TestResolveClassInheritingFromItselfIsError(t *testing.T) {
	r, _ := resolve(t, `class A < A {}`)
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "A class can't inherit from itself." {
		t.Fatalf("got errors %+v", r.Errors())
	}
}
