package lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/

import (
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	match "github.com/DexerMatters/match-string"
)

// tracer traces with key 'match.lang'.
func tracer() tracing.Trace {
	return tracing.Select("match.lang")
}

// TokType is the category of a scanned pattern-source token.
type TokType int

// Token types. Punctuation tokens use their rune value as type.
const (
	EOF    TokType = -1
	ID     TokType = -2
	NUMLIT TokType = -3
	STRING TokType = -4
)

// The tokens representing literal one-char lexemes
var literals = []string{",", "/", "+", "*", "(", ")", "[", "]", "@"}

// Token is a scanned pattern-source token.
type Token struct {
	Typ    TokType
	Lexeme string
	Span   match.Span
}

func (t Token) String() string {
	if t.Typ == EOF {
		return "<eof>"
	}
	return t.Lexeme
}

var lexer *lexmachine.Lexer
var lexerErr error

var initOnce sync.Once // monitors one-time compilation of the DFA

func patternLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`"[^"]*"`), makeToken(STRING))
		lexer.Add([]byte(`'[^']*'`), makeToken(STRING))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(ID))
		lexer.Add([]byte(`[0-9]+`), makeToken(NUMLIT))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lexer.Add([]byte(r), makeToken(TokType(lit[0])))
		}
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("Error compiling DFA: %v", err)
			lexerErr = err
		}
	})
	return lexer, lexerErr
}

func makeToken(typ TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// scan tokenizes the whole pattern source up front; the parser then works
// on the token slice with one token of lookahead. A trailing EOF token is
// always appended. Scan failures are terminal and reported as *SyntaxError.
func scan(src string) ([]Token, error) {
	lx, err := patternLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var toks []Token
	for {
		tok, err, eof := s.Next()
		if eof {
			break
		}
		if err != nil {
			span := match.Span{uint64(len(src)), uint64(len(src))}
			if ui, is := err.(*machines.UnconsumedInput); is {
				span = match.Span{uint64(ui.StartTC), uint64(ui.FailTC)}
			}
			return nil, &SyntaxError{
				Span: span,
				Rule: "scan",
				Msg:  err.Error(),
			}
		}
		if tok == nil {
			continue
		}
		t := tok.(*lexmachine.Token)
		toks = append(toks, Token{
			Typ:    TokType(t.Type),
			Lexeme: string(t.Lexeme),
			Span:   match.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
		})
	}
	toks = append(toks, Token{
		Typ:  EOF,
		Span: match.Span{uint64(len(src)), uint64(len(src))},
	})
	tracer().Debugf("scanned %d pattern tokens", len(toks)-1)
	return toks, nil
}
