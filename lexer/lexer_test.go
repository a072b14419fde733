package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pan-de-salita/golox/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens := New(`( ) { } , . - + ; * % ? :`, nil).ScanTokens()
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.Percent, token.Question, token.Colon, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	tokens := New(`! != = == < <= > >=`, nil).ScanTokens()
	assert.Equal(t, []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_LineComment(t *testing.T) {
	tokens := New("1 // this is ignored\n2", nil).ScanTokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, 1.0, tokens[0].Literal)
	assert.Equal(t, 2.0, tokens[1].Literal)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_NestedBlockComment(t *testing.T) {
	tokens := New("1 /* outer /* inner */ still-outer */ 2", nil).ScanTokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, 1.0, tokens[0].Literal)
	assert.Equal(t, 2.0, tokens[1].Literal)
}

func TestScanTokens_UnterminatedBlockComment(t *testing.T) {
	var msgs []string
	New("1 /* never closed", func(msg string, line int) {
		msgs = append(msgs, msg)
	}).ScanTokens()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Unterminated block comment")
}

func TestScanTokens_String(t *testing.T) {
	tokens := New(`"hello world"`, nil).ScanTokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	var msgs []string
	New(`"never closed`, func(msg string, line int) {
		msgs = append(msgs, msg)
	}).ScanTokens()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Unterminated string")
}

func TestScanTokens_Numbers(t *testing.T) {
	tokens := New(`42 3.14 7.`, nil).ScanTokens()
	require.Len(t, tokens, 5) // 42, 3.14, 7, ., EOF
	assert.Equal(t, 42.0, tokens[0].Literal)
	assert.Equal(t, 3.14, tokens[1].Literal)
	assert.Equal(t, 7.0, tokens[2].Literal)
	assert.Equal(t, token.Dot, tokens[3].Kind)
}

func TestScanTokens_IdentifiersAndKeywords(t *testing.T) {
	tokens := New(`foo _bar if while class fun`, nil).ScanTokens()
	assert.Equal(t, []token.Kind{
		token.Identifier, token.Identifier, token.If, token.While,
		token.Class, token.Fun, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	var msgs []string
	var lines []int
	New("1 @ 2", func(msg string, line int) {
		msgs = append(msgs, msg)
		lines = append(lines, line)
	}).ScanTokens()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Unexpected character.", msgs[0])
	assert.Equal(t, 1, lines[0])
}

func TestScanTokens_EmptySource(t *testing.T) {
	tokens := New("", nil).ScanTokens()
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
}

func TestScanTokens_MethodAccessAfterNumber(t *testing.T) {
	// "obj.method" must not be swallowed by number scanning.
	tokens := New(`2.method()`, nil).ScanTokens()
	assert.Equal(t, []token.Kind{
		token.Number, token.Dot, token.Identifier, token.LeftParen, token.RightParen, token.EOF,
	}, kinds(tokens))
}
