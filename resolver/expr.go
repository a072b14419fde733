/*
File   : golox/resolver/expr.go
Package: resolver

Expression-node resolution rules from spec.md §4.3.
*/
package resolver

import "github.com/pan-de-salita/golox/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch n := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if v, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && !v.defined {
				r.error(n.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n, n.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name.Lexeme)

	case *ast.This:
		if r.currentClass == noClass {
			r.error(n.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(n, "this")

	case *ast.Literal:
		// nothing to resolve

	case *ast.Grouping:
		r.resolveExpr(n.Expression)

	case *ast.Unary:
		r.resolveExpr(n.Right)

	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Ternary:
		r.resolveExpr(n.Cond)
		r.resolveExpr(n.Then)
		r.resolveExpr(n.Else)

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, arg := range n.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(n.Object)

	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)

	case *ast.Lambda:
		r.resolveFunction(n.Params, n.Body, inFunction)

	default:
		panic("resolver: unhandled expression type")
	}
}
