package interp

import (
	"fmt"

	"github.com/pan-de-salita/golox/ast"
)

// execute runs one statement, returning any propagating break/return
// signal alongside a runtime error.
func (in *Interpreter) execute(stmt ast.Stmt) (signal, error) {
	switch n := stmt.(type) {
	case *ast.Expression:
		_, err := in.evaluate(n.Expr)
		return noSignal, err

	case *ast.Print:
		v, err := in.evaluate(n.Expr)
		if err != nil {
			return noSignal, err
		}
		fmt.Fprintln(in.out, Stringify(v))
		return noSignal, nil

	case *ast.Var:
		var value Value
		initialized := false
		if n.Initializer != nil {
			v, err := in.evaluate(n.Initializer)
			if err != nil {
				return noSignal, err
			}
			value = v
			initialized = true
		}
		in.env.Define(n.Name.Lexeme, value, initialized)
		return noSignal, nil

	case *ast.Block:
		return in.executeBlock(n.Statements, NewEnvironment(in.env))

	case *ast.If:
		cond, err := in.evaluate(n.Condition)
		if err != nil {
			return noSignal, err
		}
		if IsTruthy(cond) {
			return in.execute(n.Then)
		}
		if n.Else != nil {
			return in.execute(n.Else)
		}
		return noSignal, nil

	case *ast.While:
		for {
			cond, err := in.evaluate(n.Condition)
			if err != nil {
				return noSignal, err
			}
			if !IsTruthy(cond) {
				return noSignal, nil
			}
			sig, err := in.execute(n.Body)
			if err != nil {
				return noSignal, err
			}
			if sig.kind == signalBreak {
				return noSignal, nil
			}
			if sig.kind == signalReturn {
				return sig, nil
			}
		}

	case *ast.Break:
		return breakSignal(), nil

	case *ast.Function:
		fn := newFunction(n.Name.Lexeme, n.Params, n.Body, in.env, false, false)
		in.env.Define(n.Name.Lexeme, fn, true)
		return noSignal, nil

	case *ast.Return:
		var value Value
		if n.Value != nil {
			v, err := in.evaluate(n.Value)
			if err != nil {
				return noSignal, err
			}
			value = v
		}
		return returnSignal(value), nil

	case *ast.Class:
		return noSignal, in.executeClass(n)

	default:
		panic("interpreter: unhandled statement type")
	}
}

// executeBlock runs statements in env without creating a further
// nested scope (env is expected to already be the new scope), saving
// and restoring the interpreter's "current environment" pointer so
// control flow that escapes early (break/return/error) leaves the
// interpreter in the caller's scope.
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) (signal, error) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		sig, err := in.execute(stmt)
		if err != nil {
			return noSignal, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return noSignal, nil
}

func (in *Interpreter) executeClass(n *ast.Class) error {
	methods := map[string]*function{}
	statics := map[string]*function{}
	for _, m := range n.Methods {
		fn := newFunction(m.Name.Lexeme, m.Params, m.Body, in.env, m.Name.Lexeme == "init", m.IsGetter)
		if m.IsStatic {
			statics[m.Name.Lexeme] = fn
		} else {
			methods[m.Name.Lexeme] = fn
		}
	}
	class := newClass(n.Name.Lexeme, methods, statics)
	in.env.Define(n.Name.Lexeme, class, true)
	return nil
}
