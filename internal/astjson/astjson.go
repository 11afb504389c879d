// Package astjson renders a parsed Lox program as JSON, for the spec.md §6
// "ability to obtain the parsed AST for visualization purposes" requirement.
// It is grounded in original_source/pylox_web/ast_visualizer.py's node shape
// (type, content, children) but emits JSON via sjson/gjson instead of HTML,
// so any host — not just the pylox web UI — can consume it.
package astjson

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-lox/internal/ast"
)

// Marshal renders statements as a JSON array of AST nodes. nil entries left
// by parser error recovery are skipped. When indent is true the output is
// pretty-printed via tidwall/pretty.
func Marshal(statements []ast.Stmt, indent bool) (string, error) {
	doc := "[]"
	for _, stmt := range statements {
		if stmt == nil {
			continue
		}
		node, err := stmtNode(stmt)
		if err != nil {
			return "", err
		}
		doc, err = sjson.SetRaw(doc, "-1", node)
		if err != nil {
			return "", err
		}
	}

	if indent {
		return string(pretty.Pretty([]byte(doc))), nil
	}
	return doc, nil
}

// NodeCount returns how many AST node objects a rendered document contains,
// found by counting "type" keys — useful for callers bounding output size
// the way the pylox visualizer bounds its HTML tree.
func NodeCount(document string) int {
	count := 0
	gjson.Parse(document).ForEach(func(_, value gjson.Result) bool {
		count += countTypes(value)
		return true
	})
	return count
}

func countTypes(value gjson.Result) int {
	if !value.Get("type").Exists() {
		return 0
	}
	count := 1
	value.Get("children").ForEach(func(_, child gjson.Result) bool {
		count += countTypes(child)
		return true
	})
	return count
}

func node(nodeType, content string, children []string) (string, error) {
	doc, err := sjson.Set("{}", "type", nodeType)
	if err != nil {
		return "", err
	}
	if content != "" {
		if doc, err = sjson.Set(doc, "content", content); err != nil {
			return "", err
		}
	}
	for _, child := range children {
		if doc, err = sjson.SetRaw(doc, "children.-1", child); err != nil {
			return "", err
		}
	}
	return doc, nil
}

func stmtNode(stmt ast.Stmt) (string, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		child, err := exprNode(s.Expression)
		if err != nil {
			return "", err
		}
		return node("ExpressionStmt", "", []string{child})

	case *ast.PrintStmt:
		child, err := exprNode(s.Expression)
		if err != nil {
			return "", err
		}
		return node("PrintStmt", "", []string{child})

	case *ast.VarStmt:
		var children []string
		if s.Initializer != nil {
			child, err := exprNode(s.Initializer)
			if err != nil {
				return "", err
			}
			children = append(children, child)
		}
		return node("VarStmt", s.Name.Lexeme, children)

	case *ast.BlockStmt:
		children, err := stmtNodes(s.Statements)
		if err != nil {
			return "", err
		}
		return node("BlockStmt", "", children)

	case *ast.IfStmt:
		cond, err := exprNode(s.Condition)
		if err != nil {
			return "", err
		}
		then, err := stmtNode(s.ThenBranch)
		if err != nil {
			return "", err
		}
		children := []string{cond, then}
		if s.ElseBranch != nil {
			els, err := stmtNode(s.ElseBranch)
			if err != nil {
				return "", err
			}
			children = append(children, els)
		}
		return node("IfStmt", "", children)

	case *ast.WhileStmt:
		cond, err := exprNode(s.Condition)
		if err != nil {
			return "", err
		}
		body, err := stmtNode(s.Body)
		if err != nil {
			return "", err
		}
		return node("WhileStmt", "", []string{cond, body})

	case *ast.FunctionStmt:
		content := s.Name.Lexeme
		children, err := stmtNodes(s.Body)
		if err != nil {
			return "", err
		}
		return node("FunctionStmt", content, children)

	case *ast.ReturnStmt:
		var children []string
		if s.Value != nil {
			child, err := exprNode(s.Value)
			if err != nil {
				return "", err
			}
			children = append(children, child)
		}
		return node("ReturnStmt", "", children)

	case *ast.ClassStmt:
		content := s.Name.Lexeme
		if s.Superclass != nil {
			content += " < " + s.Superclass.Name.Lexeme
		}
		var children []string
		for _, method := range s.Methods {
			child, err := stmtNode(method)
			if err != nil {
				return "", err
			}
			children = append(children, child)
		}
		return node("ClassStmt", content, children)
	}
	return node("UnknownStmt", "", nil)
}

func stmtNodes(statements []ast.Stmt) ([]string, error) {
	var nodes []string
	for _, stmt := range statements {
		if stmt == nil {
			continue
		}
		n, err := stmtNode(stmt)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func exprNode(expr ast.Expr) (string, error) {
	switch e := expr.(type) {
	case *ast.Binary:
		left, err := exprNode(e.Left)
		if err != nil {
			return "", err
		}
		right, err := exprNode(e.Right)
		if err != nil {
			return "", err
		}
		return node("BinaryExpr", e.Op.Lexeme, []string{left, right})

	case *ast.Grouping:
		child, err := exprNode(e.Inner)
		if err != nil {
			return "", err
		}
		return node("GroupingExpr", "", []string{child})

	case *ast.Literal:
		return node("Literal", literalContent(e.Value), nil)

	case *ast.Unary:
		child, err := exprNode(e.Right)
		if err != nil {
			return "", err
		}
		return node("UnaryExpr", e.Op.Lexeme, []string{child})

	case *ast.Variable:
		return node("Variable", e.Name.Lexeme, nil)

	case *ast.Assign:
		child, err := exprNode(e.Value)
		if err != nil {
			return "", err
		}
		return node("AssignExpr", e.Name.Lexeme, []string{child})

	case *ast.Logical:
		left, err := exprNode(e.Left)
		if err != nil {
			return "", err
		}
		right, err := exprNode(e.Right)
		if err != nil {
			return "", err
		}
		return node("LogicalExpr", e.Op.Lexeme, []string{left, right})

	case *ast.Call:
		callee, err := exprNode(e.Callee)
		if err != nil {
			return "", err
		}
		children := []string{callee}
		for _, arg := range e.Args {
			child, err := exprNode(arg)
			if err != nil {
				return "", err
			}
			children = append(children, child)
		}
		return node("CallExpr", "", children)

	case *ast.Get:
		obj, err := exprNode(e.Object)
		if err != nil {
			return "", err
		}
		return node("GetExpr", "."+e.Name.Lexeme, []string{obj})

	case *ast.Set:
		obj, err := exprNode(e.Object)
		if err != nil {
			return "", err
		}
		value, err := exprNode(e.Value)
		if err != nil {
			return "", err
		}
		return node("SetExpr", "."+e.Name.Lexeme, []string{obj, value})

	case *ast.This:
		return node("This", "", nil)

	case *ast.Super:
		return node("Super", "super."+e.Method.Lexeme, nil)
	}
	return node("UnknownExpr", "", nil)
}

func literalContent(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return ""
	}
}
