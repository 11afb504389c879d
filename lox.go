// Package lox is the embedding API for the interpreter (spec.md §6): a host
// constructs a Lox value once and calls Run for each chunk of source,
// inspecting HadError/HadRuntimeError between calls.
package lox

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
)

// Lox is a single interpreter session. A session shares one globals
// environment across every Run call, which is what lets a REPL build up
// state line by line.
type Lox struct {
	stdout io.Writer
	stderr io.Writer

	interpreter *interp.Interpreter

	hadError        bool
	hadRuntimeError bool
	lastProgram     []ast.Stmt
}

// New creates a session writing Print output to stdout and diagnostics to
// stderr.
func New(stdout, stderr io.Writer) *Lox {
	return &Lox{
		stdout: stdout,
		stderr: stderr,
	}
}

// HadError reports whether any Run since New or the last ResetErrors hit a
// scan or static error. Run itself never clears the flag.
func (l *Lox) HadError() bool {
	return l.hadError
}

// HadRuntimeError reports whether any Run since New or the last ResetErrors
// hit a runtime error. Run itself never clears the flag.
func (l *Lox) HadRuntimeError() bool {
	return l.hadRuntimeError
}

// ResetErrors clears both error flags, for REPL use between lines.
func (l *Lox) ResetErrors() {
	l.hadError = false
	l.hadRuntimeError = false
}

// LastProgram returns the statements parsed by the most recent Run, nil
// entries included, for AST inspection by a host (spec.md §6).
func (l *Lox) LastProgram() []ast.Stmt {
	return l.lastProgram
}

// Run scans, parses, and resolves source, reporting every diagnostic the
// three static stages produce (spec.md §5 stages each check in turn, but the
// token stream is always EOF-terminated, so a scan error doesn't stop the
// parser from also surfacing its own errors). Execution only proceeds if
// none of the three stages reported anything. Diagnostics go to stderr;
// HadError/HadRuntimeError record what happened so a CLI driver can choose
// an exit code.
func (l *Lox) Run(source string) {
	l.lastProgram = nil

	lex := lexer.New(source)
	tokens := lex.ScanTokens()
	lexErrs := lex.Errors()
	for _, e := range lexErrs {
		fmt.Fprintf(l.stderr, "[line %d] Error: %s\n", e.Line, e.Message)
	}

	p := parser.New(tokens)
	statements := p.Parse()
	l.lastProgram = statements
	parseErrs := p.Errors()
	if len(parseErrs) > 0 {
		attachSource(parseErrs, source)
		fmt.Fprint(l.stderr, errors.FormatErrors(parseErrs, false))
	}

	res := resolver.New()
	res.Resolve(statements)
	resolveErrs := res.Errors()
	if len(resolveErrs) > 0 {
		attachSource(resolveErrs, source)
		fmt.Fprint(l.stderr, errors.FormatErrors(resolveErrs, false))
	}

	if len(lexErrs) > 0 || len(parseErrs) > 0 || len(resolveErrs) > 0 {
		l.hadError = true
		return
	}

	if l.interpreter == nil {
		l.interpreter = interp.New(l.stdout, res.Depths())
	} else {
		l.interpreter.SetDepths(res.Depths())
	}

	if err := l.interpreter.Interpret(statements); err != nil {
		fmt.Fprintln(l.stderr, err.Error())
		l.hadRuntimeError = true
	}
}

func attachSource(errs []*errors.CompilerError, source string) {
	for _, e := range errs {
		e.Source = source
	}
}
