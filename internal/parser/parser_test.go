package parser

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
)

func parse(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	l := lexer.New(source)
	p := New(l.ScanTokens())
	stmts := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", source, p.Errors())
	}
	return stmts
}

func TestParseExpressionPrecedence(t *testing.T) {
	stmts := parse(t, "1 + 2 * 3;")
	expr := stmts[0].(*ast.ExpressionStmt).Expression
	if ast.Print(expr) != "(+ 1 (* 2 3))" {
		t.Errorf("got %s, want (+ 1 (* 2 3))", ast.Print(expr))
	}
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parse(t, "var x = 1 + 2;")
	v, ok := stmts[0].(*ast.VarStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.VarStmt", stmts[0])
	}
	if v.Name.Lexeme != "x" {
		t.Errorf("got name %q, want x", v.Name.Lexeme)
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	block, ok := stmts[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.BlockStmt", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("got %d statements, want 2 (init, while)", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.VarStmt); !ok {
		t.Errorf("first statement is %T, want *ast.VarStmt", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.WhileStmt", block.Statements[1])
	}
	whileBody, ok := whileStmt.Body.(*ast.BlockStmt)
	if !ok || len(whileBody.Statements) != 2 {
		t.Fatalf("while body is %+v, want a 2-statement block (body, increment)", whileStmt.Body)
	}
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts := parse(t, "class B < A { init() {} }")
	c, ok := stmts[0].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassStmt", stmts[0])
	}
	if c.Superclass == nil || c.Superclass.Name.Lexeme != "A" {
		t.Errorf("got superclass %+v, want A", c.Superclass)
	}
	if len(c.Methods) != 1 || c.Methods[0].Name.Lexeme != "init" {
		t.Errorf("got methods %+v, want one init method", c.Methods)
	}
}

func TestParseInvalidAssignmentTargetReportsButContinues(t *testing.T) {
	l := lexer.New("1 = 2;")
	p := New(l.ScanTokens())
	stmts := p.Parse()
	if len(p.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(p.Errors()))
	}
	if p.Errors()[0].Message != "Invalid assignment target." {
		t.Errorf("got message %q", p.Errors()[0].Message)
	}
	if stmts[0] == nil {
		t.Errorf("got nil statement, want parsing to continue with the left-hand expression")
	}
}

func TestParseMissingSemicolonSynchronizes(t *testing.T) {
	l := lexer.New("var x = 1\nvar y = 2;")
	p := New(l.ScanTokens())
	stmts := p.Parse()
	if len(p.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(p.Errors()))
	}
	if stmts[0] != nil {
		t.Errorf("got non-nil first statement, want nil from failed declaration")
	}
	v, ok := stmts[1].(*ast.VarStmt)
	if !ok || v.Name.Lexeme != "y" {
		t.Errorf("got %+v, want recovered var y declaration", stmts[1])
	}
}

func TestParseTooManyArguments(t *testing.T) {
	source := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			source += ", "
		}
		source += "1"
	}
	source += ");"

	l := lexer.New(source)
	p := New(l.ScanTokens())
	p.Parse()
	if len(p.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(p.Errors()))
	}
	if p.Errors()[0].Message != "Can't have more than 255 arguments." {
		t.Errorf("got message %q", p.Errors()[0].Message)
	}
}
