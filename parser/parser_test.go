package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pan-de-salita/golox/ast"
	"github.com/pan-de-salita/golox/lexer"
	"github.com/pan-de-salita/golox/token"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *Parser) {
	t.Helper()
	tokens := lexer.New(src, nil).ScanTokens()
	p := New(tokens, nil)
	stmts := p.Parse()
	return stmts, p
}

func TestParse_NumberLiteralExpression(t *testing.T) {
	stmts, p := parse(t, `12;`)
	require.False(t, p.HadError())
	require.Len(t, stmts, 1)
	exprStmt, ok := stmts[0].(*ast.Expression)
	require.True(t, ok)
	lit, ok := exprStmt.Expr.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, 12.0, lit.Value)
}

func TestParse_BinaryPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3)
	stmts, p := parse(t, `1 + 2 * 3;`)
	require.False(t, p.HadError())
	exprStmt := stmts[0].(*ast.Expression)
	top, ok := exprStmt.Expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, token.Plus, top.Operator.Kind)
	assert.Equal(t, 1.0, top.Left.(*ast.Literal).Value)
	rhs, ok := top.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, token.Star, rhs.Operator.Kind)
}

func TestParse_TernaryRightAssociative(t *testing.T) {
	stmts, p := parse(t, `true ? 1 : false ? 2 : 3;`)
	require.False(t, p.HadError())
	top := stmts[0].(*ast.Expression).Expr.(*ast.Ternary)
	// else branch should itself be a ternary (right-associative)
	_, ok := top.Else.(*ast.Ternary)
	assert.True(t, ok)
}

func TestParse_AssignmentTarget(t *testing.T) {
	stmts, p := parse(t, `x = 1;`)
	require.False(t, p.HadError())
	exprStmt := stmts[0].(*ast.Expression)
	assign, ok := exprStmt.Expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetReported(t *testing.T) {
	var msgs []string
	tokens := lexer.New(`1 + 2 = 3;`, nil).ScanTokens()
	p := New(tokens, func(msg string, tok token.Token) { msgs = append(msgs, msg) })
	p.Parse()
	require.True(t, p.HadError())
	assert.Contains(t, msgs[0], "Invalid assignment target")
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, p := parse(t, `for (var i = 0; i < 5; i = i + 1) print i;`)
	require.False(t, p.HadError())
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	_, isVar := block.Statements[0].(*ast.Var)
	assert.True(t, isVar)
	whileStmt, ok := block.Statements[1].(*ast.While)
	require.True(t, ok)
	bodyBlock, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, bodyBlock.Statements, 2) // original body + increment
}

func TestParse_ForMissingConditionDefaultsTrue(t *testing.T) {
	stmts, p := parse(t, `for (;;) break;`)
	require.False(t, p.HadError())
	whileStmt := stmts[0].(*ast.While)
	lit, ok := whileStmt.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_DanglingElseBindsToNearestIf(t *testing.T) {
	stmts, p := parse(t, `if (true) if (false) print 1; else print 2;`)
	require.False(t, p.HadError())
	outer := stmts[0].(*ast.If)
	inner, ok := outer.Then.(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, inner.Else)
	assert.Nil(t, outer.Else)
}

func TestParse_BreakOutsideLoopIsError(t *testing.T) {
	var msgs []string
	tokens := lexer.New(`break;`, nil).ScanTokens()
	p := New(tokens, func(msg string, tok token.Token) { msgs = append(msgs, msg) })
	p.Parse()
	require.True(t, p.HadError())
	assert.Contains(t, msgs[0], "outside of a loop")
}

func TestParse_BreakInsideWhileIsAccepted(t *testing.T) {
	_, p := parse(t, `while (true) { break; }`)
	assert.False(t, p.HadError())
}

func TestParse_TooManyParamsReportedButParses(t *testing.T) {
	src := "fun f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "a" + string(rune('A'+i%26))
	}
	src += ") { return 1; }"

	var msgs []string
	tokens := lexer.New(src, nil).ScanTokens()
	p := New(tokens, func(msg string, tok token.Token) { msgs = append(msgs, msg) })
	stmts := p.Parse()
	require.True(t, p.HadError())
	assert.Contains(t, msgs[0], "255 parameters")
	// parsing still produced a function declaration despite the error
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.Function)
	assert.True(t, ok)
}

func TestParse_ClassWithInitAndMethod(t *testing.T) {
	stmts, p := parse(t, `class Point { init(x, y) { this.x = x; this.y = y; } sum() { return this.x + this.y; } }`)
	require.False(t, p.HadError())
	class, ok := stmts[0].(*ast.Class)
	require.True(t, ok)
	assert.Equal(t, "Point", class.Name.Lexeme)
	require.Len(t, class.Methods, 2)
	assert.Equal(t, "init", class.Methods[0].Name.Lexeme)
}

func TestParse_GetterMethodHasNoParams(t *testing.T) {
	stmts, p := parse(t, `class C { answer { return 42; } }`)
	require.False(t, p.HadError())
	class := stmts[0].(*ast.Class)
	assert.True(t, class.Methods[0].IsGetter)
}

func TestParse_StaticMethod(t *testing.T) {
	stmts, p := parse(t, `class C { class make() { return nil; } }`)
	require.False(t, p.HadError())
	class := stmts[0].(*ast.Class)
	assert.True(t, class.Methods[0].IsStatic)
}

func TestParse_Lambda(t *testing.T) {
	stmts, p := parse(t, `var f = fun(a, b) { return a + b; };`)
	require.False(t, p.HadError())
	v := stmts[0].(*ast.Var)
	_, ok := v.Initializer.(*ast.Lambda)
	assert.True(t, ok)
}

func TestParse_EmptyProgram(t *testing.T) {
	stmts, p := parse(t, ``)
	assert.False(t, p.HadError())
	assert.Len(t, stmts, 0)
}

func TestParse_DeeplyNestedBlocks(t *testing.T) {
	src := ""
	for i := 0; i < 200; i++ {
		src += "{"
	}
	src += "print 1;"
	for i := 0; i < 200; i++ {
		src += "}"
	}
	_, p := parse(t, src)
	assert.False(t, p.HadError())
}
