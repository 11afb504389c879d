package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
)

func run(t *testing.T, source string) (string, error) {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", source, p.Errors())
	}

	res := resolver.New()
	res.Resolve(stmts)
	if len(res.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors for %q: %v", source, res.Errors())
	}

	var out bytes.Buffer
	interpreter := New(&out, res.Depths())
	err := interpreter.Interpret(stmts)
	return out.String(), err
}

func TestInterpretArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\n" {
		t.Errorf("got %q, want %q", out, "7\n")
	}
}

func TestInterpretStringConcatenation(t *testing.T) {
	out, err := run(t, `print "a" + "b";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ab\n" {
		t.Errorf("got %q, want %q", out, "ab\n")
	}
}

func TestInterpretPlusStringifiesNonStringOperand(t *testing.T) {
	out, err := run(t, `print "count: " + 3;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "count: 3\n" {
		t.Errorf("got %q, want %q", out, "count: 3\n")
	}
}

func TestInterpretDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	if err == nil || !strings.Contains(err.Error(), "Division by zero.") {
		t.Fatalf("got %v, want a division-by-zero runtime error", err)
	}
}

func TestInterpretClosures(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun counter() {
				count = count + 1;
				return count;
			}
			return counter;
		}
		var counter = makeCounter();
		print counter();
		print counter();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n" {
		t.Errorf("got %q, want %q", out, "1\n2\n")
	}
}

func TestInterpretClassesAndInheritance(t *testing.T) {
	out, err := run(t, `
		class Animal {
			init(name) {
				this.name = name;
			}
			speak() {
				return this.name + " makes a sound";
			}
		}
		class Dog < Animal {
			speak() {
				return super.speak() + " (bark)";
			}
		}
		var d = Dog("Rex");
		print d.speak();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Rex makes a sound (bark)\n" {
		t.Errorf("got %q, want %q", out, "Rex makes a sound (bark)\n")
	}
}

func TestInterpretWhileLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Errorf("got %q, want %q", out, "0\n1\n2\n")
	}
}

func TestInterpretForLoop(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Errorf("got %q, want %q", out, "0\n1\n2\n")
	}
}

func TestInterpretUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print nope;`)
	if err == nil || !strings.Contains(err.Error(), "Undefined variable 'nope'.") {
		t.Fatalf("got %v", err)
	}
}

func TestInterpretInstanceStringification(t *testing.T) {
	out, err := run(t, `
		class Point {}
		print Point();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "<Point instance>\n" {
		t.Errorf("got %q, want %q", out, "<Point instance>\n")
	}
}

func TestInterpretLogicalOperatorsReturnOperand(t *testing.T) {
	out, err := run(t, `
		print nil or "default";
		print "first" and "second";
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "default\nsecond\n" {
		t.Errorf("got %q, want %q", out, "default\nsecond\n")
	}
}

func TestInterpretCallArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	if err == nil || !strings.Contains(err.Error(), "Expected 2 arguments but got 1.") {
		t.Fatalf("got %v", err)
	}
}
