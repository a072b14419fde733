/*
File   : golox/parser/statements.go
Package: parser

Statement and declaration grammar productions, following spec.md
§4.2's `declaration`/`statement` rules in order.
*/
package parser

import (
	"github.com/pan-de-salita/golox/ast"
	"github.com/pan-de-salita/golox/token"
)

// declaration -> classDecl | funDecl | varDecl | statement
//
// Each call is wrapped in its own recover so one bad declaration
// synchronizes and the loop in Parse can keep going.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(token.Class):
		return p.classDeclaration()
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// classDecl -> "class" IDENT "{" function* "}"
func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect class name.")
	p.consume(token.LeftBrace, "Expect '{' before class body.")

	var methods []*ast.Function
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		methods = append(methods, p.method())
	}
	p.consume(token.RightBrace, "Expect '}' after class body.")
	return ast.NewClass(name, methods)
}

// varDecl -> "var" IDENT ("=" expression)? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")
	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return ast.NewVar(name, initializer)
}

// statement -> exprStmt | forStmt | ifStmt | printStmt
//            | returnStmt | whileStmt | breakStmt | block
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.Break):
		return p.breakStatement()
	case p.match(token.LeftBrace):
		return ast.NewBlock(p.block())
	default:
		return p.expressionStatement()
	}
}

// block -> "{" declaration* "}"
func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return statements
}

// ifStmt -> "if" "(" expression ")" statement ("else" statement)?
//
// Dangling else binds to the nearest preceding if, which falls out
// naturally here: the optional else is parsed immediately after the
// then-branch of whichever if call is currently innermost on the Go
// call stack.
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return ast.NewIf(condition, thenBranch, elseBranch)
}

// whileStmt -> "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--
	return ast.NewWhile(condition, body)
}

// forStmt desugars into an equivalent while loop per spec.md §4.2:
//
//	{ initializer?; while (cond) { body; increment?; } }
//
// with a missing condition defaulting to literal true.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.check(token.Var):
		p.advance()
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	if increment != nil {
		body = ast.NewBlock([]ast.Stmt{body, ast.NewExpression(increment)})
	}
	if condition == nil {
		condition = ast.NewLiteral(true)
	}
	body = ast.NewWhile(condition, body)

	if initializer != nil {
		body = ast.NewBlock([]ast.Stmt{initializer, body})
	}
	return body
}

// breakStmt -> "break" ";"     -- only inside a loop
func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.error(keyword, "'break' outside of a loop.")
	}
	p.consume(token.Semicolon, "Expect ';' after 'break'.")
	return ast.NewBreak(keyword)
}

// returnStmt -> "return" expression? ";"
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return ast.NewReturn(keyword, value)
}

// printStmt -> "print" expression ";"
func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return ast.NewPrint(value)
}

// exprStmt -> expression ";"
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return ast.NewExpression(expr)
}

const maxParams = 255

// function   -> IDENT "(" params? ")" block
// params     -> IDENT ("," IDENT)*    -- max 255
//
// kind is "function" or "method", used only in error messages.
func (p *Parser) function(kind string) *ast.Function {
	name := p.consume(token.Identifier, "Expect "+kind+" name.")
	p.consume(token.LeftParen, "Expect '(' after "+kind+" name.")

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
	p.consume(token.LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()

	fn := ast.NewFunction(name, params, body)
	fn.IsGetter = false
	return fn
}
