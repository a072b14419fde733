/*
File   : golox/interp/environment.go
Package: interp

Environment is the lexical scope chain from spec.md §4.5. Each slot
tracks whether it has been initialized yet, so that `var x;` followed
by a read of `x` before any assignment is distinguishable from a
wholly undeclared name — both are runtime errors, but with different
messages ("Uninitialized variable" versus "Undefined variable").

go-mix's scope/scope.go chains scopes the same way (Scope.Parent,
Scope.Variables map) but never needs get_at/assign_at because go-mix
has no static resolver: every lookup walks the chain by name. Here the
distance-indexed accessors exist specifically so the interpreter can
use the resolver's side table instead of searching.
*/
package interp

import (
	"github.com/pan-de-salita/golox/loxerr"
	"github.com/pan-de-salita/golox/token"
)

type slot struct {
	value       Value
	initialized bool
}

// Environment is one link in the lexical scope chain.
type Environment struct {
	values    map[string]*slot
	enclosing *Environment
}

// NewEnvironment creates a scope. enclosing may be nil for the global scope.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]*slot), enclosing: enclosing}
}

// Define binds name in this scope. Re-declaring an existing name in
// the same scope (permitted at the global level, e.g. the REPL)
// simply overwrites the slot.
func (e *Environment) Define(name string, value Value, initialized bool) {
	e.values[name] = &slot{value: value, initialized: initialized}
}

// Get reads name, walking outward through enclosing scopes.
func (e *Environment) Get(name token.Token) (Value, error) {
	if s, ok := e.values[name.Lexeme]; ok {
		if !s.initialized {
			return nil, loxerr.NewRuntimeError(name, "Uninitialized variable '%s'.", name.Lexeme)
		}
		return s.value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, loxerr.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign writes name if already declared somewhere on the chain.
func (e *Environment) Assign(name token.Token, value Value) error {
	if s, ok := e.values[name.Lexeme]; ok {
		s.value = value
		s.initialized = true
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return loxerr.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// ancestor walks exactly distance scopes outward.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name at exactly distance scopes outward, as recorded by
// the resolver. It never searches, unlike Get, but honors the same
// initialized check so a local `{ var a; print a; }` raises the same
// runtime error the global case does.
func (e *Environment) GetAt(distance int, name token.Token) (Value, error) {
	s := e.ancestor(distance).values[name.Lexeme]
	if !s.initialized {
		return nil, loxerr.NewRuntimeError(name, "Uninitialized variable '%s'.", name.Lexeme)
	}
	return s.value, nil
}

// AssignAt writes name at exactly distance scopes outward.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	s := e.ancestor(distance).values[name]
	s.value = value
	s.initialized = true
}
