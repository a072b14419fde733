/*
File   : golox/interp/function.go
Package: interp

function is the runtime representation shared by named function
declarations, anonymous lambda expressions, and class methods: all
three are "a parameter list plus a body plus a captured environment",
so one type serves all of them rather than three near-duplicate ones.
This mirrors go-mix's function/function.go Function struct (Params,
Body, Env) but adds the isInitializer flag spec.md §4.6 needs for
`init`'s special return-this behavior, and an isGetter flag so Get can
invoke a zero-arg method automatically per spec.md's supplemented
getter syntax.
*/
package interp

import (
	"github.com/pan-de-salita/golox/ast"
	"github.com/pan-de-salita/golox/token"
)

type function struct {
	name          string
	params        []token.Token
	body          []ast.Stmt
	closure       *Environment
	isInitializer bool
	isGetter      bool
}

func newFunction(name string, params []token.Token, body []ast.Stmt, closure *Environment, isInitializer, isGetter bool) *function {
	return &function{
		name:          name,
		params:        params,
		body:          body,
		closure:       closure,
		isInitializer: isInitializer,
		isGetter:      isGetter,
	}
}

func (f *function) Arity() int { return len(f.params) }

func (f *function) String() string {
	if f.name == "" {
		return "<fn lambda>"
	}
	return "<fn " + f.name + ">"
}

// bind returns a new function whose closure has `this` bound to
// instance, used when a method is looked up off an instance so its
// body can refer to `this`.
func (f *function) bind(instance *Instance) *function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance, true)
	return newFunction(f.name, f.params, f.body, env, f.isInitializer, f.isGetter)
}

func (f *function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, p := range f.params {
		env.Define(p.Lexeme, args[i], true)
	}

	sig, err := in.executeBlock(f.body, env)
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		// bind() always defines "this" as initialized, so the error
		// return is unreachable here; the synthetic token only needs
		// a lexeme to key the lookup.
		return f.closure.GetAt(0, token.New(token.This, "this", 0))
	}

	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return nil, nil
}
