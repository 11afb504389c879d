package ast

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/token"
)

func TestPrintBinaryAndGrouping(t *testing.T) {
	// -123 * (45.67)
	expr := &Binary{
		Left: &Unary{
			Op:    token.New(token.MINUS, "-", nil, 1),
			Right: &Literal{Value: 123.0},
		},
		Op: token.New(token.STAR, "*", nil, 1),
		Right: &Grouping{
			Inner: &Literal{Value: 45.67},
		},
	}

	got := Print(expr)
	want := "(* (- 123) (group 45.67))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintNilLiteral(t *testing.T) {
	got := Print(&Literal{Value: nil})
	if got != "nil" {
		t.Errorf("got %q, want nil", got)
	}
}
