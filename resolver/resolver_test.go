package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pan-de-salita/golox/lexer"
	"github.com/pan-de-salita/golox/parser"
	"github.com/pan-de-salita/golox/token"
)

func messages(t *testing.T, src string) ([]string, bool) {
	t.Helper()
	tokens := lexer.New(src, nil).ScanTokens()
	p := parser.New(tokens, nil)
	stmts := p.Parse()
	require.False(t, p.HadError())

	var msgs []string
	r := New(func(msg string, tok token.Token) { msgs = append(msgs, msg) })
	r.Resolve(stmts)
	return msgs, r.HadError()
}

func TestResolver_UnusedLocalIsError(t *testing.T) {
	msgs, hadError := messages(t, `{ var x = 1; }`)
	require.True(t, hadError)
	assert.Contains(t, msgs[0], "declared but never used")
}

func TestResolver_UsedLocalIsFine(t *testing.T) {
	_, hadError := messages(t, `{ var x = 1; print x; }`)
	assert.False(t, hadError)
}

func TestResolver_OwnInitializerIsError(t *testing.T) {
	msgs, hadError := messages(t, `{ var x = x; }`)
	require.True(t, hadError)
	assert.Contains(t, msgs[0], "own initializer")
}

func TestResolver_DuplicateLocalIsError(t *testing.T) {
	msgs, hadError := messages(t, `{ var x = 1; var x = 2; print x; }`)
	require.True(t, hadError)
	assert.Contains(t, msgs[0], "Already a variable")
}

func TestResolver_ReturnOutsideFunctionIsError(t *testing.T) {
	msgs, hadError := messages(t, `return 1;`)
	require.True(t, hadError)
	assert.Contains(t, msgs[0], "top-level code")
}

func TestResolver_ReturnValueFromInitializerIsError(t *testing.T) {
	msgs, hadError := messages(t, `
		class C {
			init() { return 1; }
		}
	`)
	require.True(t, hadError)
	assert.Contains(t, msgs[0], "return a value from an initializer")
}

func TestResolver_BareReturnFromInitializerIsFine(t *testing.T) {
	_, hadError := messages(t, `
		class C {
			init() { return; }
		}
	`)
	assert.False(t, hadError)
}

func TestResolver_ThisOutsideClassIsError(t *testing.T) {
	msgs, hadError := messages(t, `print this;`)
	require.True(t, hadError)
	assert.Contains(t, msgs[0], "'this' outside of a class")
}

func TestResolver_ThisInsideMethodIsFine(t *testing.T) {
	_, hadError := messages(t, `
		class C {
			identify() { return this; }
		}
	`)
	assert.False(t, hadError)
}

func TestResolver_GlobalUnusedIsNotAnError(t *testing.T) {
	_, hadError := messages(t, `var x = 1;`)
	assert.False(t, hadError)
}

func TestResolver_FunctionParamsNeverFlaggedUnused(t *testing.T) {
	_, hadError := messages(t, `fun f(a, b) { return a; }`)
	assert.False(t, hadError)
}

func TestResolver_RecordsDistanceForClosure(t *testing.T) {
	tokens := lexer.New(`
		{
			var x = 1;
			fun f() { print x; }
		}
	`, nil).ScanTokens()
	p := parser.New(tokens, nil)
	stmts := p.Parse()
	require.False(t, p.HadError())

	r := New(nil)
	distances := r.Resolve(stmts)
	assert.NotEmpty(t, distances)
}
