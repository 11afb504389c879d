package ast

import (
	"fmt"
	"strings"
)

// Print renders an expression as a fully-parenthesized Lisp-style string,
// useful for debugging and for golden-file tests of the parser stage.
func Print(e Expr) string {
	switch n := e.(type) {
	case *Binary:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *Unary:
		return parenthesize(n.Op.Lexeme, n.Right)
	case *Grouping:
		return parenthesize("group", n.Inner)
	case *Literal:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return parenthesize("assign "+n.Name.Lexeme, n.Value)
	case *Logical:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *Call:
		return parenthesize("call", append([]Expr{n.Callee}, n.Args...)...)
	case *Get:
		return parenthesize("get "+n.Name.Lexeme, n.Object)
	case *Set:
		return parenthesize("set "+n.Name.Lexeme, n.Object, n.Value)
	case *This:
		return "this"
	case *Super:
		return "(super " + n.Method.Lexeme + ")"
	default:
		return fmt.Sprintf("<?%T>", e)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteString(" ")
		sb.WriteString(Print(e))
	}
	sb.WriteString(")")
	return sb.String()
}
