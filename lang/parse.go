package lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/

import (
	"fmt"

	match "github.com/DexerMatters/match-string"
)

// --- Compilation errors ----------------------------------------------------

// SyntaxError is a terminal compilation error: the pattern source violates
// the surface grammar. It identifies the offending source span and the
// grammar rule that rejected it.
type SyntaxError struct {
	Span match.Span
	Rule string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pattern syntax error in %s at %s: %s", e.Rule, e.Span, e.Msg)
}

// --- Identifier environment ------------------------------------------------

// Env binds the identifiers a pattern source may reference to already-built
// sub-patterns.
type Env map[string]*match.Expr[rune]

// Builtins returns an environment binding the builtin lexical tokens.
func Builtins() Env {
	return Env{
		"NUM":          match.Tok(match.Num),
		"HEX":          match.Tok(match.HexNum),
		"OCT":          match.Tok(match.OctNum),
		"BIN":          match.Tok(match.BinNum),
		"WS":           match.Tok(match.Whitespace),
		"ALPHABETIC":   match.Tok(match.Alphabetic),
		"ALPHANUMERIC": match.Tok(match.Alphanumeric),
	}
}

// With returns a copy of env with name bound to e.
func (env Env) With(name string, e *match.Expr[rune]) Env {
	out := make(Env, len(env)+1)
	for k, v := range env {
		out[k] = v
	}
	out[name] = e
	return out
}

// --- The compiler ----------------------------------------------------------

// Compile turns pattern source text into a combinator tree. Identifiers in
// the source resolve against env; a nil env means only self-contained
// patterns compile. Errors are *SyntaxError values (or a DFA setup error
// from the scanner, which should not happen in practice).
func Compile(src string, env Env) (*match.Expr[rune], error) {
	toks, err := scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, env: env}
	e, err := p.pattern()
	if err != nil {
		return nil, err
	}
	if p.cur().Typ != EOF {
		return nil, p.unexpected("pattern")
	}
	tracer().Debugf("compiled pattern %s", e)
	return e, nil
}

// MustCompile is Compile, panicking on error. Intended for patterns fixed
// at program start.
func MustCompile(src string, env Env) *match.Expr[rune] {
	e, err := Compile(src, env)
	if err != nil {
		panic(err)
	}
	return e
}

// parser is a recursive-descent parser over the scanned token slice, one
// function per precedence level, lowest first.
type parser struct {
	toks []Token
	pos  int
	env  Env
}

func (p *parser) cur() Token {
	return p.toks[p.pos]
}

func (p *parser) peek() Token {
	if p.pos+1 >= len(p.toks) {
		return p.toks[len(p.toks)-1] // the EOF token
	}
	return p.toks[p.pos+1]
}

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) unexpected(rule string) *SyntaxError {
	t := p.cur()
	msg := fmt.Sprintf("unexpected token %q", t.Lexeme)
	if t.Typ == EOF {
		msg = "unexpected end of pattern"
	}
	return &SyntaxError{Span: t.Span, Rule: rule, Msg: msg}
}

// pattern := alt (',' alt)*
func (p *parser) pattern() (*match.Expr[rune], error) {
	first, err := p.alt()
	if err != nil {
		return nil, err
	}
	children := []*match.Expr[rune]{first}
	for p.cur().Typ == TokType(',') {
		p.advance()
		next, err := p.alt()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return first, nil
	}
	return match.Seq(children...), nil
}

// alt := term ('/' term)*
func (p *parser) alt() (*match.Expr[rune], error) {
	first, err := p.term()
	if err != nil {
		return nil, err
	}
	children := []*match.Expr[rune]{first}
	for p.cur().Typ == TokType('/') {
		p.advance()
		next, err := p.term()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return first, nil
	}
	return match.Or(children...), nil
}

// term := atom (quant | sepquant)?
//
// The bracketed separator polarity is inverted against the plain
// quantifier, matching the grammar as observed: '[sep]+' is zero-or-more,
// '[sep]*' is one-or-more.
func (p *parser) term() (*match.Expr[rune], error) {
	atom, err := p.atom()
	if err != nil {
		return nil, err
	}
	switch p.cur().Typ {
	case TokType('['):
		p.advance()
		sep, err := p.alt()
		if err != nil {
			return nil, err
		}
		if p.cur().Typ != TokType(']') {
			return nil, &SyntaxError{
				Span: p.cur().Span,
				Rule: "sepquant",
				Msg:  "unclosed separator bracket",
			}
		}
		p.advance()
		switch p.cur().Typ {
		case TokType('+'):
			p.advance()
			return match.Sep(atom, sep), nil
		case TokType('*'):
			p.advance()
			return match.Sep1(atom, sep), nil
		}
		return nil, &SyntaxError{
			Span: p.cur().Span,
			Rule: "sepquant",
			Msg:  "expected `+` or `*` after bracketed separator",
		}
	case TokType('+'):
		p.advance()
		return match.Plus(atom), nil
	case TokType('*'):
		p.advance()
		return match.Star(atom), nil
	}
	return atom, nil
}

// atom := '(' pattern ')' | ident '@' alt | string | number | ident
func (p *parser) atom() (*match.Expr[rune], error) {
	switch t := p.cur(); t.Typ {
	case TokType('('):
		p.advance()
		inner, err := p.pattern()
		if err != nil {
			return nil, err
		}
		if p.cur().Typ != TokType(')') {
			return nil, &SyntaxError{
				Span: p.cur().Span,
				Rule: "atom",
				Msg:  "unclosed group",
			}
		}
		p.advance()
		return inner, nil
	case ID:
		if p.peek().Typ == TokType('@') {
			p.advance() // the capture name
			p.advance() // '@'
			inner, err := p.alt()
			if err != nil {
				return nil, err
			}
			return match.To(t.Lexeme, inner), nil
		}
		p.advance()
		bound, ok := p.env[t.Lexeme]
		if !ok {
			return nil, &SyntaxError{
				Span: t.Span,
				Rule: "atom",
				Msg:  fmt.Sprintf("unbound identifier %q", t.Lexeme),
			}
		}
		return bound, nil
	case STRING:
		p.advance()
		return match.Str(t.Lexeme[1 : len(t.Lexeme)-1]), nil
	case NUMLIT:
		// a number literal matches its digit characters
		p.advance()
		return match.Str(t.Lexeme), nil
	}
	return nil, p.unexpected("atom")
}
