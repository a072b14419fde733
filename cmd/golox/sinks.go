package main

import (
	"os"

	"github.com/pan-de-salita/golox/cliconfig"
	"github.com/pan-de-salita/golox/loxcore"
	"github.com/pan-de-salita/golox/loxerr"
	"github.com/pan-de-salita/golox/token"
)

// fileSinks reports every diagnostic to stderr in spec.md §7's
// prescribed formats, via loxerr's formatters.
func fileSinks() loxcore.Sinks {
	return loxcore.Sinks{
		Print: os.Stdout,
		LexicalError: func(message string, line int) {
			redColor.Fprintln(os.Stderr, loxerr.FormatLexical(message, line))
		},
		ParseError: func(message string, tok token.Token) {
			redColor.Fprintln(os.Stderr, loxerr.FormatParse(message, tok))
		},
		ResolverError: func(message string, tok token.Token) {
			redColor.Fprintln(os.Stderr, loxerr.FormatResolver(message, tok))
		},
		RuntimeError: func(err *loxerr.RuntimeError) {
			redColor.Fprintln(os.Stderr, loxerr.FormatRuntime(err))
		},
	}
}

// replSinks behaves like fileSinks but writes to stdout instead of
// stderr, matching go-mix's repl.Repl.executeWithRecovery which never
// distinguishes an error stream from the session's own output.
func replSinks(cfg cliconfig.Config) loxcore.Sinks {
	return loxcore.Sinks{
		Print: os.Stdout,
		LexicalError: func(message string, line int) {
			redColor.Println(loxerr.FormatLexical(message, line))
		},
		ParseError: func(message string, tok token.Token) {
			redColor.Println(loxerr.FormatParse(message, tok))
		},
		ResolverError: func(message string, tok token.Token) {
			redColor.Println(loxerr.FormatResolver(message, tok))
		},
		RuntimeError: func(err *loxerr.RuntimeError) {
			redColor.Println(loxerr.FormatRuntime(err))
		},
	}
}
