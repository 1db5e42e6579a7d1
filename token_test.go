package match

import (
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/DexerMatters/match-string/cursor"
)

func TestNumericTokenBases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	cases := []struct {
		spec  *TokenSpec[rune]
		input string
		want  int
	}{
		{Num, "4711", 4711},
		{HexNum, "ff", 255},
		{HexNum, "1A", 26},
		{OctNum, "17", 15},
		{BinNum, "1011", 11},
	}
	for _, c := range cases {
		m := NewTextMatcher()
		sink := &List{}
		if !m.Consume(Tok(c.spec), cursor.NewText(c.input), sink) {
			t.Errorf("%s: expected %q to scan", c.spec.Name, c.input)
			continue
		}
		if sink.Len() != 1 || sink.Items()[0] != c.want {
			t.Errorf("%s: expected value %d, got %v", c.spec.Name, c.want, sink.Items())
		}
	}
}

func TestTokenMinimumLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	m := NewTextMatcher()
	cur := cursor.NewText("abc")
	if m.Consume(Tok(Num), cur, Discard) {
		t.Errorf("Expected an empty digit run to fail the minimum length")
	}
	if cur.Pos() != 0 {
		t.Errorf("Expected failed token not to consume, cursor at %d", cur.Pos())
	}
}

func TestTokenGreedyRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	// the run is maximal: NUM may not leave digits behind
	m := NewTextMatcher()
	cur := cursor.NewText("123abc")
	if !m.Consume(Tok(Num), cur, Discard) {
		t.Fatalf("Expected digit run to scan")
	}
	if rest := string(cur.Rest()); rest != "abc" {
		t.Errorf("Expected leftover \"abc\", got %q", rest)
	}
}

func TestTokenLeadingSkip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	spec := &TokenSpec[rune]{
		Name:    "PADDEDNUM",
		Pred:    unicode.IsDigit,
		Skip:    unicode.IsSpace,
		AtLeast: 1,
		Parse:   Num.Parse,
	}
	m := NewTextMatcher()
	sink := &List{}
	if !m.Consume(Tok(spec), cursor.NewText("   42"), sink) {
		t.Fatalf("Expected leading whitespace to be skipped")
	}
	if sink.Len() != 1 || sink.Items()[0] != 42 {
		t.Errorf("Expected value 42, got %v", sink.Items())
	}
}

func TestWhitespaceTokenDeliversNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	m := NewTextMatcher()
	sink := &List{}
	cur := cursor.NewText("  \t x")
	if !m.Consume(Tok(Whitespace), cur, sink) {
		t.Fatalf("Expected whitespace run to scan")
	}
	if sink.Len() != 0 {
		t.Errorf("Expected a purely consuming token, got %v", sink.Items())
	}
	if rest := string(cur.Rest()); rest != "x" {
		t.Errorf("Expected leftover \"x\", got %q", rest)
	}
}

func TestLetterTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	m := NewTextMatcher()
	sink := &List{}
	if !m.Consume(Tok(Alphabetic), cursor.NewText("wait42"), sink) {
		t.Fatalf("Expected letter run to scan")
	}
	if sink.Len() != 1 || sink.Items()[0] != "wait" {
		t.Errorf("Expected \"wait\", got %v", sink.Items())
	}
	m = NewTextMatcher()
	sink = &List{}
	if !m.Consume(Tok(Alphanumeric), cursor.NewText("wait42!"), sink) {
		t.Fatalf("Expected alphanumeric run to scan")
	}
	if sink.Len() != 1 || sink.Items()[0] != "wait42" {
		t.Errorf("Expected \"wait42\", got %v", sink.Items())
	}
}
