/*
File    : frostri-lang/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for L.

Per the external-collaborator contract in spec.md §6, the REPL is not part
of interpretation semantics: it accepts one line at a time, appends it to a
single growing source buffer, and re-lexes/re-parses the WHOLE buffer on
every line. If the buffer has parse errors, they are printed and the REPL
waits for the next line (this lets a function literal or if/else span
several lines before it parses cleanly). Once the buffer parses cleanly, it
is evaluated against one persistent Environment and the result's inspect()
is printed.
*/
package repl

import (
	"io"
	"strings"

	"github.com/FRostri/frostri-lang/eval"
	"github.com/FRostri/frostri-lang/lexer"
	"github.com/FRostri/frostri-lang/objects"
	"github.com/FRostri/frostri-lang/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session: none of
// it affects parsing or evaluation.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner and prompt configuration.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to L!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter. A statement may span several lines.")
	cyanColor.Fprintf(writer, "%s\n", "Type 'exit()' to quit, 'clear()' to clear the screen.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop until the user exits or input ends.
//
// The accumulating buffer means an unfinished function literal or if/else
// is not discarded: its parse errors are printed after each line, and the
// buffer keeps growing until it parses cleanly, at which point it is
// evaluated and reset to empty for the next statement.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	env := objects.NewEnvironment()

	var buf strings.Builder

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		trimmed := strings.Trim(line, " \n\t\r")

		if trimmed == "exit()" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if trimmed == "clear()" {
			clearScreen(writer)
			buf.Reset()
			continue
		}

		if trimmed == "" && buf.Len() == 0 {
			continue
		}

		rl.SaveHistory(line)

		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(line)

		r.executeBuffer(writer, &buf, evaluator, env)
	}
}

// executeBuffer re-lexes and re-parses the entire accumulated buffer. On a
// clean parse it evaluates against env, prints the result, and resets the
// buffer for the next statement; on a parse error it prints the errors and
// leaves the buffer untouched so more lines can be appended.
func (r *Repl) executeBuffer(writer io.Writer, buf *strings.Builder, evaluator *eval.Evaluator, env *objects.Environment) {
	src := buf.String()

	lex := lexer.NewLexer(src)
	par := parser.New(lex)
	program := par.ParseProgram()

	if errs := par.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	buf.Reset()

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == objects.ErrorObj {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}

// clearScreen emits the ANSI sequence that clears a terminal screen.
func clearScreen(writer io.Writer) {
	writer.Write([]byte("\033[H\033[2J"))
}
