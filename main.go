/*
File    : frostri-lang/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"

	"github.com/FRostri/frostri-lang/eval"
	"github.com/FRostri/frostri-lang/lexer"
	"github.com/FRostri/frostri-lang/objects"
	"github.com/FRostri/frostri-lang/parser"
	"github.com/FRostri/frostri-lang/repl"
	"github.com/fatih/color"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

const (
	VERSION = "1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LICENSE = "MIT"
	LINE    = "----------------------------------------"
	BANNER  = `
	 _
	| |
	| |
	| |___
	|_____| `
	PROMPT = "L >>> "
)

// main dispatches on argv: no arguments starts the REPL, a single file
// argument evaluates that file and exits, and --version/--help print
// metadata. There is no server mode: L has no networking in scope.
func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		r.Start(os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "--version", "-v":
		yellowColor.Println("L " + VERSION)
	case "--help", "-h":
		printUsage()
	default:
		runFile(args[0])
	}
}

func printUsage() {
	yellowColor.Println("Usage:")
	yellowColor.Println("  frostri              start the interactive REPL")
	yellowColor.Println("  frostri <file>        evaluate a source file")
	yellowColor.Println("  frostri --version     print version information")
	yellowColor.Println("  frostri --help        print this message")
}

// runFile evaluates a single source file and exits with a non-zero status
// if lexing/parsing fails or evaluation produces an Error. Unlike the REPL,
// a successful result is not printed; only an Error is written (to stderr).
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "frostri: %v\n", err)
		os.Exit(1)
	}

	lex := lexer.NewLexer(string(src))
	par := parser.New(lex)
	program := par.ParseProgram()

	if errs := par.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	env := objects.NewEnvironment()

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == objects.ErrorObj {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}
}
