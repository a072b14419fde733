/*
File   : golox/cmd/golox/main.go

Package main is golox's entry point: a file-mode runner and an
interactive REPL, grounded on go-mix's main/main.go (mode dispatch on
os.Args) and repl/repl.go (readline + fatih/color REPL loop), reworked
around loxcore.Runner instead of go-mix's *eval.Evaluator and reporting
spec.md §6's three exit codes (64 usage, 65 lexical/parse/resolver
error, 70 runtime error) instead of go-mix's
os.Exit(1)-for-everything.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/pan-de-salita/golox/cliconfig"
	"github.com/pan-de-salita/golox/loxcore"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
	blueColor   = color.New(color.FgBlue)
)

const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
)

func main() {
	switch len(os.Args) {
	case 1:
		runREPL()
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(exitUsage)
	}
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return exitUsage
	}

	runner := loxcore.NewRunner(fileSinks())

	result := runner.Run(string(source), false)
	if result.HadLexicalError || result.HadParseError || result.HadResolveError {
		return exitDataErr
	}
	if result.HadRuntimeError {
		return exitSoftware
	}
	return exitOK
}

func runREPL() {
	cfg, err := cliconfig.Load(".golox.yaml")
	if err != nil {
		cfg = cliconfig.Default()
	}
	if !cfg.Color {
		color.NoColor = true
	}

	greenColor.Println(cfg.Banner)
	blueColor.Println(cfg.Line)
	yellowColor.Printf("Version: %s\n", cfg.Version)
	cyanColor.Println("Type your code and press enter. Type '.exit' to quit.")
	blueColor.Println(cfg.Line)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		// readline needs a real terminal; fall back to a plain
		// bufio reader so the REPL still works when stdin is piped.
		runREPLPlain(cfg)
		return
	}
	defer rl.Close()

	runner := loxcore.NewRunner(replSinks(cfg))

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println("Good bye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Println("Good bye!")
			return
		}
		runner.Run(line, true)
	}
}

// runREPLPlain is the fallback path when readline.NewEx fails (e.g.
// stdin is not a TTY, common in test harnesses and CI); it gives up
// line editing and history but keeps the REPL usable.
func runREPLPlain(cfg cliconfig.Config) {
	runner := loxcore.NewRunner(replSinks(cfg))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(cfg.Prompt)
		if !scanner.Scan() {
			fmt.Println("Good bye!")
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Println("Good bye!")
			return
		}
		runner.Run(line, true)
	}
}
