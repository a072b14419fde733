/*
File   : golox/loxcore/loxcore.go
Package: loxcore

Package loxcore wires the lexer, parser, resolver, and interpreter into
a single pipeline, the way go-mix's main/main.go's executeFileWithRecovery
and repl/repl.go's executeWithRecovery each do for their own mode. golox
gives that pipeline its own package instead of duplicating it between
file mode and REPL mode in cmd/golox, and reports diagnostics through
host callbacks (spec.md §6) instead of go-mix's in-band *objects.Error
values.
*/
package loxcore

import (
	"io"

	"github.com/pan-de-salita/golox/interp"
	"github.com/pan-de-salita/golox/lexer"
	"github.com/pan-de-salita/golox/loxerr"
	"github.com/pan-de-salita/golox/parser"
	"github.com/pan-de-salita/golox/resolver"
	"github.com/pan-de-salita/golox/token"
)

// Sinks bundles every diagnostic/output callback the host may supply.
// Any field left nil is replaced with a no-op.
type Sinks struct {
	LexicalError  func(message string, line int)
	ParseError    func(message string, tok token.Token)
	ResolverError func(message string, tok token.Token)
	RuntimeError  func(err *loxerr.RuntimeError)
	Print         io.Writer
}

func (s *Sinks) normalize() {
	if s.LexicalError == nil {
		s.LexicalError = func(string, int) {}
	}
	if s.ParseError == nil {
		s.ParseError = func(string, token.Token) {}
	}
	if s.ResolverError == nil {
		s.ResolverError = func(string, token.Token) {}
	}
	if s.RuntimeError == nil {
		s.RuntimeError = func(*loxerr.RuntimeError) {}
	}
	if s.Print == nil {
		s.Print = io.Discard
	}
}

// Result reports which error taxonomy stage (if any) aborted the run;
// cmd/golox maps this directly onto spec.md §6's exit codes.
type Result struct {
	HadLexicalError bool
	HadParseError   bool
	HadResolveError bool
	HadRuntimeError bool
}

// Runner holds one long-lived Interpreter across multiple Run calls,
// so the REPL keeps variables/functions/classes defined across lines
// the same way go-mix's repl.Repl keeps one *eval.Evaluator alive for
// the whole session.
type Runner struct {
	sinks     Sinks
	in        *interp.Interpreter
	distances map[int]int
	current   *Result
}

// NewRunner constructs a Runner with one long-lived Interpreter.
func NewRunner(sinks Sinks) *Runner {
	sinks.normalize()
	r := &Runner{sinks: sinks, distances: map[int]int{}}
	r.in = interp.New(sinks.Print, func(err *loxerr.RuntimeError) {
		if r.current != nil {
			r.current.HadRuntimeError = true
		}
		r.sinks.RuntimeError(err)
	})
	return r
}

// RegisterNative exposes a host-defined builtin function under name in
// the runner's global scope, for embedders who want to add to golox's
// small builtin set beyond `clock`.
func (r *Runner) RegisterNative(name string, arity int, fn func(in *interp.Interpreter, args []interp.Value) (interp.Value, error)) {
	r.in.Globals.Define(name, &interp.NativeFunction{Name: name, ArityN: arity, Fn: fn}, true)
}

// Run executes source through the full lexer -> parser -> resolver ->
// interpreter pipeline. If isREPL is true, the value of every bare
// expression statement in source is auto-printed, echoing a REPL's
// last-result convention.
func (r *Runner) Run(source string, isREPL bool) Result {
	result := &Result{}
	r.current = result
	defer func() { r.current = nil }()

	lx := lexer.New(source, func(message string, line int) {
		result.HadLexicalError = true
		r.sinks.LexicalError(message, line)
	})
	tokens := lx.ScanTokens()
	if result.HadLexicalError {
		return *result
	}

	p := parser.New(tokens, func(message string, tok token.Token) {
		result.HadParseError = true
		r.sinks.ParseError(message, tok)
	})
	statements := p.Parse()
	if p.HadError() {
		return *result
	}

	res := resolver.New(func(message string, tok token.Token) {
		result.HadResolveError = true
		r.sinks.ResolverError(message, tok)
	})
	// Distances accumulate across calls (rather than replace) so that
	// a closure captured on one REPL line keeps resolving correctly
	// when a later line calls it: each call's AST nodes carry globally
	// unique IDs (ast.newID), so merging never collides.
	for id, distance := range res.Resolve(statements) {
		r.distances[id] = distance
	}
	if res.HadError() {
		return *result
	}
	r.in.SetDistances(r.distances)

	if isREPL {
		r.in.InterpretREPL(statements)
	} else {
		r.in.Interpret(statements)
	}
	return *result
}
