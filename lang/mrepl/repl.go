package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	match "github.com/DexerMatters/match-string"
	"github.com/DexerMatters/match-string/cursor"
	"github.com/DexerMatters/match-string/lang"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/

// tracer traces with key 'match.repl'.
func tracer() tracing.Trace {
	return tracing.Select("match.repl")
}

// main() starts an interactive CLI ("M.REPL"), where users may enter match
// pattern source. M.REPL will compile the pattern and print out the
// combinator tree; the ':match' command runs the current pattern against
// sample text and prints verdict, captures and leftover input.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to M.REPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := &Intp{env: lang.Builtins()}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		if err := intp.compile(input); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
	}
	//
	// set up REPL
	repl, err := readline.New("mpat> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	env     lang.Env
	pattern *match.Expr[rune]
	source  string
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.Eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
}

// Eval evaluates one REPL line: either a colon-command or pattern source.
func (intp *Intp) Eval(line string) error {
	if strings.HasPrefix(line, ":") {
		return intp.command(line)
	}
	return intp.compile(line)
}

func (intp *Intp) command(line string) error {
	cmd, arg, _ := strings.Cut(line[1:], " ")
	switch cmd {
	case "match":
		return intp.match(arg)
	case "tree":
		if intp.pattern == nil {
			return fmt.Errorf("no pattern compiled yet")
		}
		pterm.Info.Println(intp.pattern.String())
		return nil
	case "trace":
		tracer().SetTraceLevel(traceLevel(arg))
		return nil
	}
	return fmt.Errorf("unknown command :%s", cmd)
}

func (intp *Intp) compile(src string) error {
	e, err := lang.Compile(src, intp.env)
	if err != nil {
		return err
	}
	intp.pattern = e
	intp.source = src
	pterm.Info.Println(e.String())
	return nil
}

// match runs the current pattern against sample text and prints verdict,
// captures and leftover input.
func (intp *Intp) match(text string) error {
	if intp.pattern == nil {
		return fmt.Errorf("no pattern compiled yet")
	}
	m := match.NewTextMatcher()
	cur := cursor.NewText(text)
	ok := m.Consume(intp.pattern, cur, match.Discard)
	leftover := string(cur.Rest())
	if ok && leftover == "" {
		pterm.Info.Println("matched")
	} else if ok {
		pterm.Info.Printf("matched a prefix, leftover %q\n", leftover)
	} else {
		pterm.Error.Println("no match")
	}
	for _, name := range intp.pattern.CaptureNames() {
		if v, set := m.Captures().Get(name); set {
			pterm.Info.Printf("%s = %v\n", name, v)
		} else {
			pterm.Info.Printf("%s unset\n", name)
		}
	}
	return nil
}
