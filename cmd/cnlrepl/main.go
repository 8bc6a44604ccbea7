/*
cnlrepl is an interactive sandbox for the demo grammar: it reads a line,
lexes it, runs a chosen production against the token stream, and prints
the resulting cursor or diagnostic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/lab156/cnlcombinator/combinator"
	"github.com/lab156/cnlcombinator/diag"
	"github.com/lab156/cnlcombinator/grammar"
	"github.com/lab156/cnlcombinator/lex"
	"github.com/lab156/cnlcombinator/synonym"
)

// productions lists the named entry points a user may select with
// ":rule <name>" — all taking (sup, reg) and yielding a combinator.Parser.
var productions = map[string]func(combinator.Support, *synonym.Registry) combinator.Parser{
	"assumption": grammar.Assumption,
	"axiom":      grammar.Axiom,
	"let":        grammar.LetAnnotation,
	"byref":      grammar.ByRef,
}

// Intp holds REPL-session state: the shared synonym registry and
// instruction store (both process-wide resources a real CNL reader would
// also thread through), plus the currently selected production.
type Intp struct {
	repl  *readline.Instance
	reg   *synonym.Registry
	store *grammar.Instructions
	rule  string
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func main() {
	initDisplay()
	initf := flag.String("init", "", "Initial load file of CNL lines")
	rule := flag.String("rule", "assumption", "Starting production (assumption|axiom|let|byref)")
	flag.Parse()
	pterm.Info.Println("Welcome to cnlrepl")

	repl, err := readline.New("cnl> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:  repl,
		reg:   synonym.New(),
		store: grammar.NewInstructionStore(),
		rule:  *rule,
	}
	pterm.Info.Println("Quit with <ctrl>D, switch rules with \":rule <name>\"")
	intp.loadInitFile(*initf)
	intp.REPL()
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		pterm.Error.Println("unable to open init file: " + filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := intp.Eval(line); err != nil {
			diag.Errorf("line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		diag.Errorf("reading init file: %v", err)
	}
}

func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":rule ") {
			intp.rule = strings.TrimSpace(strings.TrimPrefix(line, ":rule "))
			pterm.Info.Println("switched to rule " + intp.rule)
			continue
		}
		if err := intp.Eval(line); err != nil {
			diag.Errorf("%v", err)
		}
	}
	pterm.Info.Println("Good bye!")
}

// Eval lexes line in full, then runs the selected production against the
// resulting token stream and reports the resulting cursor position.
func (intp *Intp) Eval(line string) error {
	l, err := lex.New(strings.NewReader(line))
	if err != nil {
		return fmt.Errorf("lex: %w", err)
	}
	toks, err := lex.All(l)
	if err != nil {
		return fmt.Errorf("lex: %w", err)
	}
	build, ok := productions[intp.rule]
	if !ok {
		return fmt.Errorf("unknown rule %q", intp.rule)
	}
	p := build(l, intp.reg)
	c, err := p.Process(combinator.Init(toks))
	if err != nil {
		return err
	}
	pterm.Info.Printfln("%s matched %d/%d tokens, acc=%v", intp.rule, c.Pos, len(toks), c.Acc)
	return nil
}
