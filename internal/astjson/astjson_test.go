package astjson

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/tidwall/gjson"
)

func TestMarshalPrintStatement(t *testing.T) {
	l := lexer.New(`print 1 + 2;`)
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}

	doc, err := Marshal(stmts, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !gjson.Valid(doc) {
		t.Fatalf("invalid JSON: %s", doc)
	}

	root := gjson.Parse(doc)
	if root.Get("0.type").String() != "PrintStmt" {
		t.Errorf("got type %q, want PrintStmt", root.Get("0.type").String())
	}
	if root.Get("0.children.0.type").String() != "BinaryExpr" {
		t.Errorf("got child type %q, want BinaryExpr", root.Get("0.children.0.type").String())
	}
	if root.Get("0.children.0.content").String() != "+" {
		t.Errorf("got operator %q, want +", root.Get("0.children.0.content").String())
	}
}

func TestMarshalSkipsNilStatements(t *testing.T) {
	l := lexer.New("var x = 1\nvar y = 2;")
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a parse error from the missing semicolon")
	}

	doc, err := Marshal(stmts, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root := gjson.Parse(doc)
	if len(root.Array()) != 1 {
		t.Fatalf("got %d nodes, want 1 (nil entry skipped)", len(root.Array()))
	}
}

func TestMarshalPrettyIndents(t *testing.T) {
	l := lexer.New(`print 1;`)
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()

	doc, err := Marshal(stmts, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc, "\n") {
		t.Errorf("got %q, want indented multi-line output", doc)
	}
}

func TestNodeCount(t *testing.T) {
	l := lexer.New(`print 1 + 2;`)
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()

	doc, err := Marshal(stmts, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// PrintStmt -> BinaryExpr -> Literal(1), Literal(2): 4 nodes.
	if got := NodeCount(doc); got != 4 {
		t.Errorf("got %d nodes, want 4", got)
	}
}
