/*
File   : golox/resolver/resolver.go
Package: resolver

Package resolver is the static pre-pass described in spec.md §4.3: it
walks the statement list once before any evaluation happens, and for
every variable-referencing expression node records how many lexical
scopes outward its binding lives. The interpreter consults this
distance table instead of re-walking the environment chain by name.

No go-mix file does this — go-mix resolves names dynamically at eval
time via scope.LookUp (scope/scope.go) — so the scope-stack shape here
is grounded on spec.md §4.3's algorithm directly, reusing the same
"stack of name->record maps" idea go-mix's Scope.Variables uses for
its single chained map, generalized into a slice of maps that is
popped on block exit rather than linked by a Parent pointer (the
resolver only ever needs the stack, never long-lived storage).
*/
package resolver

import (
	"github.com/pan-de-salita/golox/ast"
	"github.com/pan-de-salita/golox/token"
)

// ErrorFunc receives a resolver error message and the offending token.
type ErrorFunc func(message string, tok token.Token)

type functionKind int

const (
	noFunction functionKind = iota
	inFunction
	inMethod
	inInitializer
)

type classKind int

const (
	noClass classKind = iota
	inClass
)

type localVar struct {
	defined bool
	used    bool
	tok     token.Token
}

// Resolver builds the distance side table consumed by the
// interpreter. Construct with New, call Resolve once per program.
type Resolver struct {
	scopes          []map[string]*localVar
	distances       map[int]int
	currentFunction functionKind
	currentClass    classKind
	onError         ErrorFunc
	hadError        bool
}

// New creates a Resolver. onError may be nil to discard diagnostics
// (HadError still reflects them).
func New(onError ErrorFunc) *Resolver {
	if onError == nil {
		onError = func(string, token.Token) {}
	}
	return &Resolver{distances: make(map[int]int), onError: onError}
}

// HadError reports whether any static error was recorded.
func (r *Resolver) HadError() bool { return r.hadError }

// Resolve walks the whole program once and returns the expression-node
// -> scope-distance table. A nil/empty table entry for a node means
// "not found locally", so the interpreter falls back to the global
// environment, per spec.md §3's invariant.
func (r *Resolver) Resolve(statements []ast.Stmt) map[int]int {
	r.resolveStmts(statements)
	return r.distances
}

func (r *Resolver) error(tok token.Token, message string) {
	r.hadError = true
	r.onError(message, tok)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]*localVar))
}

func (r *Resolver) endScope() {
	top := r.scopes[len(r.scopes)-1]
	for name, v := range top {
		if !v.used {
			r.error(v.tok, "Local variable '"+name+"' is declared but never used.")
		}
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.error(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = &localVar{defined: false, tok: name}
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if v, ok := scope[name.Lexeme]; ok {
		v.defined = true
	}
}

// declareUsed declares and immediately marks a name as both defined
// and used without requiring a real reference — used for function
// parameters (spec.md never asks for an "unused parameter" error, only
// unused locals). resolveClass writes the injected `this` record the
// same way, directly.
func (r *Resolver) declareUsed(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = &localVar{defined: true, used: true, tok: name}
}

// resolveLocal walks the scope stack from innermost outward; on the
// first hit it marks the binding used and records the distance.
// Finding nothing leaves the node absent from the table, meaning
// "resolve as global at runtime" (spec.md §3).
func (r *Resolver) resolveLocal(node ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if v, ok := r.scopes[i][name]; ok {
			v.used = true
			r.distances[node.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}
