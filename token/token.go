/*
File   : golox/token/token.go
Package: token

Package token defines the lexical token vocabulary shared by the lexer
and the parser. A Token is a tagged record of a Kind, the raw source
Lexeme, an optional Literal value (set only for NUMBER and STRING), and
the source Line it was scanned from.
*/
package token

import "fmt"

// Kind identifies the category of a Token. It is a closed set: every
// punctuator, operator, keyword, and literal category the lexer can
// produce has its own Kind constant.
type Kind int

const (
	// Single-character punctuators.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Percent
	Question
	Colon

	// One or two character operators.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literal categories.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
	Break

	// Sentinel.
	EOF
)

// kindNames gives each Kind a short human-readable name, used by
// String() and by diagnostic messages that name a token's category.
var kindNames = map[Kind]string{
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	Comma: ",", Dot: ".", Minus: "-", Plus: "+", Semicolon: ";",
	Slash: "/", Star: "*", Percent: "%", Question: "?", Colon: ":",
	Bang: "!", BangEqual: "!=", Equal: "=", EqualEqual: "==",
	Greater: ">", GreaterEqual: ">=", Less: "<", LessEqual: "<=",
	Identifier: "IDENTIFIER", String: "STRING", Number: "NUMBER",
	And: "and", Class: "class", Else: "else", False: "false", Fun: "fun",
	For: "for", If: "if", Nil: "nil", Or: "or", Print: "print",
	Return: "return", Super: "super", This: "this", True: "true",
	Var: "var", While: "while", Break: "break", EOF: "EOF",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Keywords maps reserved identifier text to its keyword Kind. The
// lexer consults this after scanning a full identifier run; anything
// absent from the map is an ordinary Identifier.
var Keywords = map[string]Kind{
	"and": And, "class": Class, "else": Else, "false": False,
	"fun": Fun, "for": For, "if": If, "nil": Nil, "or": Or,
	"print": Print, "return": Return, "super": Super, "this": This,
	"true": True, "var": Var, "while": While, "break": Break,
}

// Token is a single lexical token: its Kind, the exact source text it
// came from, an optional decoded Literal (float64 for Number, string
// for String), and the 1-indexed source Line it was scanned on (for a
// string spanning several lines, the line of its closing quote).
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal interface{}
	Line    int
}

// New constructs a Token with no literal value, for punctuators,
// operators, keywords, and identifiers.
func New(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// NewLiteral constructs a Token carrying a decoded literal value, used
// for NUMBER and STRING tokens.
func NewLiteral(kind Kind, lexeme string, literal interface{}, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line}
}

// String renders the token for diagnostics, e.g. `IDENTIFIER "count" (line 3)`.
func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s %q = %v (line %d)", t.Kind, t.Lexeme, t.Literal, t.Line)
	}
	return fmt.Sprintf("%s %q (line %d)", t.Kind, t.Lexeme, t.Line)
}
