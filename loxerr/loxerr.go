/*
File   : golox/loxerr/loxerr.go
Package: loxerr

Package loxerr defines the error taxonomy from spec.md §7 and the
three prescribed message formats:

	"[line N] Error at 'lexeme': MESSAGE"   (parse)
	"[line N] Error: MESSAGE"               (lexical)
	"MESSAGE\n[line N]"                     (runtime)

go-mix represents errors as in-band *objects.Error return values
(objects/objects.go) produced by Evaluator.CreateError. spec.md §6
instead mandates host callbacks (lexical_error, parse_error,
resolver_error, runtime_error) rather than in-band error objects, so
golox's RuntimeError is a plain Go error carried back out of the
interpreter's call stack and formatted by the host, not threaded
through every return value the way go-mix's Error type is.
*/
package loxerr

import (
	"fmt"

	"github.com/pan-de-salita/golox/token"
)

// RuntimeError is raised by the interpreter for operand-type
// mismatches, undefined/uninitialized variables, calling a
// non-callable, wrong argument counts, and bad property access. It
// carries the token that was being evaluated when the fault occurred,
// so the host can report a source line.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// NewRuntimeError constructs a RuntimeError with a formatted message.
func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// FormatLexical renders a lexical error per spec.md §7: "[line N] Error: MESSAGE".
func FormatLexical(message string, line int) string {
	return fmt.Sprintf("[line %d] Error: %s", line, message)
}

// FormatParse renders a parse error per spec.md §7: "[line N] Error at 'lexeme': MESSAGE".
func FormatParse(message string, tok token.Token) string {
	where := "'" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = "end"
	}
	return fmt.Sprintf("[line %d] Error at %s: %s", tok.Line, where, message)
}

// FormatResolver renders a static-resolution error; spec.md §7 does
// not prescribe a distinct format for resolver errors, so it reuses
// the parse-error format (same token-anchored shape).
func FormatResolver(message string, tok token.Token) string {
	return FormatParse(message, tok)
}

// FormatRuntime renders a runtime error per spec.md §7: "MESSAGE\n[line N]".
func FormatRuntime(err *RuntimeError) string {
	return fmt.Sprintf("%s\n[line %d]", err.Message, err.Token.Line)
}
