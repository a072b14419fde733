/*
File   : golox/parser/classes.go
Package: parser

Method parsing for class bodies. spec.md §4.2's grammar only shows
plain `function` productions inside a class body; static methods and
getters are the "late revision, optional feature" spec.md §4.6 and §9
describe, supplemented here per SPEC_FULL.md §C since the AST already
carries IsStatic/IsGetter hooks (spec.md §3).
//
// method -> "class"? IDENT ( "(" params? ")" )? block
//
// A leading "class" keyword marks a static method. A method with no
// parameter list at all (name immediately followed by '{') is a
// getter, invoked on access with no call syntax.
*/
package parser

import (
	"github.com/pan-de-salita/golox/ast"
	"github.com/pan-de-salita/golox/token"
)

func (p *Parser) method() *ast.Function {
	isStatic := p.match(token.Class)

	name := p.consume(token.Identifier, "Expect method name.")

	isGetter := !p.check(token.LeftParen)

	var params []token.Token
	if !isGetter {
		p.consume(token.LeftParen, "Expect '(' after method name.")
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
	}

	p.consume(token.LeftBrace, "Expect '{' before method body.")
	body := p.block()

	fn := ast.NewFunction(name, params, body)
	fn.IsStatic = isStatic
	fn.IsGetter = isGetter
	return fn
}
