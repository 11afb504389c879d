package interp

import (
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/token"
)

// newRuntimeError builds a runtime diagnostic carrying the triggering token,
// per spec.md §7 ("Runtime errors carry a trigger token so the line number
// is always available").
func newRuntimeError(tok token.Token, message string) error {
	return errors.NewAtToken(errors.RuntimeErrorClass, tok, message)
}

// returnSignal is the non-local control-flow value used to unwind a Return
// statement up to the enclosing function call, per spec.md §4.6 and §9. It
// is carried by panic/recover rather than a Go error, matching the teacher's
// reuse of panic-based unwinding for other non-local control (parser
// synchronization) and the Go Lox reference ports in the example pack.
type returnSignal struct {
	value interface{}
}
