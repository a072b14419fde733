/*
File   : golox/resolver/visit.go
Package: resolver

Type-switch dispatch over every statement and expression kind, per
spec.md §4.3's per-node rules.
*/
package resolver

import (
	"github.com/pan-de-salita/golox/ast"
	"github.com/pan-de-salita/golox/token"
)

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Statements)
		r.endScope()

	case *ast.Var:
		r.declare(n.Name)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name)

	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n.Params, n.Body, inFunction)

	case *ast.Class:
		r.resolveClass(n)

	case *ast.Expression:
		r.resolveExpr(n.Expr)

	case *ast.Print:
		r.resolveExpr(n.Expr)

	case *ast.If:
		// Static, not control-flow sensitive: both branches resolve
		// unconditionally regardless of whether the condition could
		// be proven true or false.
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.While:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)

	case *ast.Break:
		// no static error possible here: the parser already rejects
		// break outside of a loop.

	case *ast.Return:
		if r.currentFunction == noFunction {
			r.error(n.Keyword, "Can't return from top-level code.")
		}
		if n.Value != nil {
			if r.currentFunction == inInitializer {
				r.error(n.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(n.Value)
		}

	default:
		panic("resolver: unhandled statement type")
	}
}

// resolveFunction resolves a function/method/lambda body in a fresh
// scope with parameters bound and the given function-state active;
// the previous function-state is restored on return so nesting (a
// function declared inside a method) behaves correctly.
func (r *Resolver) resolveFunction(params []token.Token, body []ast.Stmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, p := range params {
		r.declareUsed(p)
	}
	r.resolveStmts(body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// resolveClass declares the class name, pushes a scope with `this`
// injected, resolves each method body with the appropriate
// function-state (METHOD, or INITIALIZER for a method named "init"),
// then pops. Static methods still resolve with a `this` binding
// available so method bodies look uniform, even though at runtime a
// static method is never invoked with a bound instance.
func (r *Resolver) resolveClass(n *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = inClass

	r.declare(n.Name)
	r.define(n.Name)

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = &localVar{defined: true, used: true, tok: n.Name}

	for _, method := range n.Methods {
		kind := inMethod
		if method.Name.Lexeme == "init" {
			kind = inInitializer
		}
		r.resolveFunction(method.Params, method.Body, kind)
	}

	r.endScope()
	r.currentClass = enclosingClass
}
