/*
File   : golox/parser/parser.go
Package: parser

Package parser implements a recursive-descent parser over the token
stream produced by package lexer, following the grammar in spec.md
§4.2 exactly (go-mix's own parser is a Pratt/precedence-table parser
over a different grammar entirely — C-style operators, no ternary, a
`func` keyword — so only the Parser struct shape and its
error-collection discipline are grounded on it, not the grammar).

Errors are collected rather than raised to the caller directly: on an
unexpected token the parser records a diagnostic via onError and
raises an internal parseError panic, caught by the statement loop in
Parse, which then synchronizes (skips to the next likely statement
boundary) and resumes. This mirrors go-mix's recover-based error
containment in repl.executeWithRecovery, applied here at the
per-declaration granularity spec.md §4.2 and §7 prescribe.
*/
package parser

import (
	"github.com/pan-de-salita/golox/ast"
	"github.com/pan-de-salita/golox/token"
)

// ErrorFunc receives a parse-error message and the offending token.
type ErrorFunc func(message string, tok token.Token)

// parseError is the internal panic sentinel used for synchronization.
// It never escapes Parse.
type parseError struct{}

// Parser consumes a fixed token slice and produces a statement list.
type Parser struct {
	tokens    []token.Token
	current   int
	onError   ErrorFunc
	hadError  bool
	loopDepth int
}

// New creates a Parser over tokens (normally the output of
// lexer.ScanTokens). onError may be nil, in which case errors are
// recorded internally (HadError still reports them) but not surfaced.
func New(tokens []token.Token, onError ErrorFunc) *Parser {
	if onError == nil {
		onError = func(string, token.Token) {}
	}
	return &Parser{tokens: tokens, onError: onError}
}

// HadError reports whether any parse error was recorded during Parse.
func (p *Parser) HadError() bool { return p.hadError }

// Parse consumes the whole token stream and returns the program as a
// list of statements. Declarations that fail to parse are discarded;
// HadError tells the caller whether the result is trustworthy.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// --- token stream primitives ---

func (p *Parser) peek() token.Token  { return p.tokens[p.current] }
func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }
func (p *Parser) isAtEnd() bool      { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// match advances and returns true if the current token is any of
// kinds, otherwise leaves the cursor untouched.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to be kind, advancing past it;
// otherwise it reports message and unwinds via parseError.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

// error records a diagnostic and returns the panic value the caller
// should raise; it does not panic itself so callers can choose to
// report-and-continue instead (used for non-fatal arity-cap errors).
func (p *Parser) error(tok token.Token, message string) parseError {
	p.hadError = true
	p.onError(message, tok)
	return parseError{}
}

// synchronize discards tokens until it reaches a likely statement
// boundary: a semicolon, or a token that starts a new declaration or
// statement. This bounds the damage of one bad declaration to that
// declaration alone.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For,
			token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
