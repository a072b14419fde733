package loxcore

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pan-de-salita/golox/loxerr"
	"github.com/pan-de-salita/golox/token"
)

func TestRunner_PrintsOutput(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(Sinks{Print: &out})
	result := r.Run(`print 1 + 1;`, false)
	assert.False(t, result.HadLexicalError)
	assert.False(t, result.HadParseError)
	assert.False(t, result.HadRuntimeError)
	assert.Equal(t, "2\n", out.String())
}

func TestRunner_LexicalErrorReported(t *testing.T) {
	var out bytes.Buffer
	var msgs []string
	r := NewRunner(Sinks{Print: &out, LexicalError: func(msg string, line int) {
		msgs = append(msgs, msg)
	}})
	result := r.Run(`var x = "unterminated;`, false)
	assert.True(t, result.HadLexicalError)
	require.NotEmpty(t, msgs)
}

func TestRunner_ParseErrorReported(t *testing.T) {
	var out bytes.Buffer
	var msgs []string
	r := NewRunner(Sinks{Print: &out, ParseError: func(msg string, tok token.Token) {
		msgs = append(msgs, msg)
	}})
	result := r.Run(`1 + ;`, false)
	assert.True(t, result.HadParseError)
	require.NotEmpty(t, msgs)
}

func TestRunner_RuntimeErrorReported(t *testing.T) {
	var out bytes.Buffer
	var count int
	r := NewRunner(Sinks{Print: &out, RuntimeError: func(err *loxerr.RuntimeError) { count++ }})
	result := r.Run(`
		var x = 1;
		x();
	`, false)
	assert.True(t, result.HadRuntimeError)
	assert.Equal(t, 1, count)
}

func TestRunner_DivisionByZeroIsNotARuntimeError(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(Sinks{Print: &out})
	result := r.Run(`print 1 / 0;`, false)
	assert.False(t, result.HadRuntimeError)
	assert.Equal(t, "+Inf\n", out.String())
}

func TestRunner_StatePersistsAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(Sinks{Print: &out})
	r.Run(`var counter = 0;`, true)
	// REPL mode auto-prints every bare expression statement's value,
	// including an assignment's, so this line itself echoes "1".
	r.Run(`counter = counter + 1;`, true)
	result := r.Run(`print counter;`, true)
	assert.False(t, result.HadRuntimeError)
	assert.Equal(t, "1\n1\n", out.String())
}

func TestRunner_ClosureAcrossLinesKeepsWorking(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(Sinks{Print: &out})
	r.Run(`
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
	`, true)
	r.Run(`print counter();`, true)
	result := r.Run(`print counter();`, true)
	assert.False(t, result.HadRuntimeError)
	assert.Equal(t, "1\n2\n", out.String())
}

func TestRunner_REPLAutoPrintsBareExpression(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(Sinks{Print: &out})
	r.Run(`1 + 2;`, true)
	assert.Equal(t, "3\n", out.String())
}

func TestRunner_FileModeDoesNotAutoPrintBareExpression(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(Sinks{Print: &out})
	r.Run(`1 + 2;`, false)
	assert.Equal(t, "", out.String())
}
