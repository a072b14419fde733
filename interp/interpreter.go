/*
File   : golox/interp/interpreter.go
Package: interp

Interpreter is the tree-walking evaluator from spec.md §4.4. It
consumes the AST produced by parser and the distance table produced by
resolver, and executes directly — no bytecode, no separate compile
step, matching go-mix's eval/evaluator.go shape (a single Eval entry
point type-switching over node kinds) generalized from go-mix's
Pratt-parsed, dynamically-scoped tree onto golox's resolver-annotated
one.
*/
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/pan-de-salita/golox/ast"
	"github.com/pan-de-salita/golox/loxerr"
	"github.com/pan-de-salita/golox/token"
)

// RuntimeErrorFunc receives a fully formatted runtime error to report
// to the user (host callback, per spec.md §6).
type RuntimeErrorFunc func(err *loxerr.RuntimeError)

// Interpreter walks a resolved program and executes it.
type Interpreter struct {
	Globals    *Environment
	env        *Environment
	distances  map[int]int
	out        io.Writer
	onRuntimeErr RuntimeErrorFunc
}

// New creates an Interpreter. out receives `print` output; onRuntimeErr
// receives runtime errors as they propagate out of Interpret or
// InterpretREPL. Either may be nil to use os.Stdout / a no-op
// respectively, but callers normally supply both so loxcore can route
// them.
func New(out io.Writer, onRuntimeErr RuntimeErrorFunc) *Interpreter {
	globals := NewEnvironment(nil)
	registerNatives(globals)
	if out == nil {
		out = os.Stdout
	}
	if onRuntimeErr == nil {
		onRuntimeErr = func(*loxerr.RuntimeError) {}
	}
	return &Interpreter{
		Globals:      globals,
		env:          globals,
		distances:    map[int]int{},
		out:          out,
		onRuntimeErr: onRuntimeErr,
	}
}

// SetDistances installs the resolver's scope-distance side table. Must
// be called (with the table for the statements about to run) before
// Interpret/Run, once per resolved program.
func (in *Interpreter) SetDistances(distances map[int]int) {
	in.distances = distances
}

// Interpret executes a fully parsed and resolved program. It reports
// the first runtime error via onRuntimeErr and stops, per spec.md §7's
// "runtime errors abort the current top-level invocation" rule.
func (in *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if _, err := in.execute(stmt); err != nil {
			if rerr, ok := err.(*loxerr.RuntimeError); ok {
				in.onRuntimeErr(rerr)
			}
			return
		}
	}
}

// InterpretREPL behaves like Interpret but additionally auto-prints
// the value of a bare expression statement, the way a REPL echoes its
// last result.
func (in *Interpreter) InterpretREPL(statements []ast.Stmt) {
	for _, stmt := range statements {
		if exprStmt, ok := stmt.(*ast.Expression); ok {
			v, err := in.evaluate(exprStmt.Expr)
			if err != nil {
				if rerr, ok := err.(*loxerr.RuntimeError); ok {
					in.onRuntimeErr(rerr)
				}
				return
			}
			fmt.Fprintln(in.out, Stringify(v))
			continue
		}
		if _, err := in.execute(stmt); err != nil {
			if rerr, ok := err.(*loxerr.RuntimeError); ok {
				in.onRuntimeErr(rerr)
			}
			return
		}
	}
}

func (in *Interpreter) lookupVariable(name token.Token, node ast.Expr) (Value, error) {
	if distance, ok := in.distances[node.ID()]; ok {
		return in.env.GetAt(distance, name)
	}
	return in.Globals.Get(name)
}
