package interp

import (
	"math"

	"github.com/pan-de-salita/golox/ast"
	"github.com/pan-de-salita/golox/loxerr"
	"github.com/pan-de-salita/golox/token"
)

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.Grouping:
		return in.evaluate(n.Expression)

	case *ast.Unary:
		right, err := in.evaluate(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Operator.Kind {
		case token.Minus:
			num, err := in.checkNumberOperand(n.Operator, right)
			if err != nil {
				return nil, err
			}
			return -num, nil
		case token.Bang:
			return !IsTruthy(right), nil
		}
		panic("interpreter: unhandled unary operator")

	case *ast.Binary:
		return in.evalBinary(n)

	case *ast.Logical:
		left, err := in.evaluate(n.Left)
		if err != nil {
			return nil, err
		}
		if n.Operator.Kind == token.Or {
			if IsTruthy(left) {
				return left, nil
			}
		} else {
			if !IsTruthy(left) {
				return left, nil
			}
		}
		return in.evaluate(n.Right)

	case *ast.Ternary:
		cond, err := in.evaluate(n.Cond)
		if err != nil {
			return nil, err
		}
		if IsTruthy(cond) {
			return in.evaluate(n.Then)
		}
		return in.evaluate(n.Else)

	case *ast.Variable:
		return in.lookupVariable(n.Name, n)

	case *ast.Assign:
		value, err := in.evaluate(n.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.distances[n.ID()]; ok {
			in.env.AssignAt(distance, n.Name.Lexeme, value)
		} else if err := in.Globals.Assign(n.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Call:
		return in.evalCall(n)

	case *ast.Get:
		obj, err := in.evaluate(n.Object)
		if err != nil {
			return nil, err
		}
		switch o := obj.(type) {
		case *Instance:
			return o.Get(n.Name, in)
		case *Class:
			return o.Get(n.Name)
		default:
			return nil, loxerr.NewRuntimeError(n.Name, "Only instances have properties.")
		}

	case *ast.Set:
		obj, err := in.evaluate(n.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*Instance)
		if !ok {
			return nil, loxerr.NewRuntimeError(n.Name, "Only instances have fields.")
		}
		value, err := in.evaluate(n.Value)
		if err != nil {
			return nil, err
		}
		instance.Set(n.Name, value)
		return value, nil

	case *ast.This:
		return in.lookupVariable(n.Keyword, n)

	case *ast.Lambda:
		return newFunction("", n.Params, n.Body, in.env, false, false), nil

	default:
		panic("interpreter: unhandled expression type")
	}
}

func (in *Interpreter) evalCall(n *ast.Call) (Value, error) {
	callee, err := in.evaluate(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, loxerr.NewRuntimeError(n.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, loxerr.NewRuntimeError(n.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalBinary(n *ast.Binary) (Value, error) {
	left, err := in.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Kind {
	case token.Minus:
		l, r, err := in.checkNumberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.Slash:
		l, r, err := in.checkNumberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		// Division by zero follows host IEEE-754 (inf/nan), not a
		// runtime error.
		return l / r, nil
	case token.Star:
		l, r, err := in.checkNumberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.Percent:
		l, r, err := in.checkNumberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		// Floating remainder, not integer remainder; math.Mod(x, 0)
		// is NaN, consistent with the division-by-zero rule above.
		return math.Mod(l, r), nil
	case token.Plus:
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
			return nil, loxerr.NewRuntimeError(n.Operator, "Operands must be two numbers or two strings.")
		}
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		return nil, loxerr.NewRuntimeError(n.Operator, "Operands must be two numbers or two strings.")
	case token.Greater:
		l, r, err := in.checkNumberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case token.GreaterEqual:
		l, r, err := in.checkNumberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case token.Less:
		l, r, err := in.checkNumberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case token.LessEqual:
		l, r, err := in.checkNumberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case token.BangEqual:
		return !IsEqual(left, right), nil
	case token.EqualEqual:
		return IsEqual(left, right), nil
	}
	panic("interpreter: unhandled binary operator")
}

func (in *Interpreter) checkNumberOperand(operator token.Token, operand Value) (float64, error) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, loxerr.NewRuntimeError(operator, "Operand must be a number.")
}

func (in *Interpreter) checkNumberOperands(operator token.Token, left, right Value) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if lok && rok {
		return ln, rn, nil
	}
	return 0, 0, loxerr.NewRuntimeError(operator, "Operands must be numbers.")
}
