/*
File   : golox/parser/expressions.go
Package: parser

Expression grammar productions, in precedence order from lowest
(assignment) to highest (primary), following spec.md §4.2 exactly:
assignment, logic_or, logic_and, ternary, equality, comparison, term,
factor, unary, call, primary. Binary levels are built by the shared
leftAssoc helper, folding a loop of "op operand" repetitions into a
left-leaning tree; ternary is right-associative via recursing into
itself for the else branch, and assignment is right-associative via
recursing into itself for the value.
*/
package parser

import (
	"github.com/pan-de-salita/golox/ast"
	"github.com/pan-de-salita/golox/token"
)

// expression -> assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment -> (call ".")? IDENT "=" assignment | logic_or
//
// The left-hand side is parsed as a normal expression first; only
// once an '=' is actually seen do we check whether it was a valid
// l-value (a bare Variable, or a Get on an arbitrary object
// expression). Anything else is a reported, non-fatal "invalid
// assignment target" error — the parser does not panic here, since a
// bad assignment target doesn't mean the rest of the expression
// failed to parse.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value)
		default:
			p.error(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

// logic_or -> logic_and ("or" logic_and)*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		operator := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr
}

// logic_and -> ternary ("and" ternary)*
func (p *Parser) and() ast.Expr {
	expr := p.ternary()
	for p.match(token.And) {
		operator := p.previous()
		right := p.ternary()
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr
}

// ternary -> equality ("?" equality ":" ternary)?
func (p *Parser) ternary() ast.Expr {
	expr := p.equality()
	if p.match(token.Question) {
		then := p.equality()
		p.consume(token.Colon, "Expect ':' in ternary expression.")
		els := p.ternary()
		expr = ast.NewTernary(expr, then, els)
	}
	return expr
}

// equality -> comparison (("!="|"==") comparison)*
func (p *Parser) equality() ast.Expr {
	return p.leftAssoc(p.comparison, token.BangEqual, token.EqualEqual)
}

// comparison -> term ((">"|">="|"<"|"<=") term)*
func (p *Parser) comparison() ast.Expr {
	return p.leftAssoc(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

// term -> factor (("-"|"+") factor)*
func (p *Parser) term() ast.Expr {
	return p.leftAssoc(p.factor, token.Minus, token.Plus)
}

// factor -> unary (("/"|"*"|"%") unary)*
func (p *Parser) factor() ast.Expr {
	return p.leftAssoc(p.unary, token.Slash, token.Star, token.Percent)
}

// leftAssoc folds a run of "operand (op operand)*" into a
// left-leaning Binary tree; every binary precedence level above unary
// shares this shape, differing only in which operators and which
// next-higher-precedence operand parser they use.
func (p *Parser) leftAssoc(operand func() ast.Expr, kinds ...token.Kind) ast.Expr {
	expr := operand()
	for p.match(kinds...) {
		operator := p.previous()
		right := operand()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

// unary -> ("!"|"-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		operator := p.previous()
		right := p.unary()
		return ast.NewUnary(operator, right)
	}
	return p.call()
}

// call -> primary ( "(" arguments? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Identifier, "Expect property name after '.'.")
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

const maxArgs = 255

// arguments -> expression ("," expression)*   -- max 255
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.error(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return ast.NewCall(callee, paren, args)
}

// primary -> NUMBER | STRING | "true" | "false" | "nil"
//          | "this" | IDENT | "(" expression ")" | lambda
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return ast.NewLiteral(false)
	case p.match(token.True):
		return ast.NewLiteral(true)
	case p.match(token.Nil):
		return ast.NewLiteral(nil)
	case p.match(token.Number, token.String):
		return ast.NewLiteral(p.previous().Literal)
	case p.match(token.This):
		return ast.NewThis(p.previous())
	case p.match(token.Identifier):
		return ast.NewVariable(p.previous())
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return ast.NewGrouping(expr)
	case p.match(token.Fun):
		return p.lambda()
	default:
		panic(p.error(p.peek(), "Expect expression."))
	}
}

// lambda -> "fun" "(" params? ")" block
func (p *Parser) lambda() ast.Expr {
	p.consume(token.LeftParen, "Expect '(' after 'fun'.")
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxParams {
				p.error(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")
	p.consume(token.LeftBrace, "Expect '{' before lambda body.")
	body := p.block()
	return ast.NewLambda(params, body)
}
