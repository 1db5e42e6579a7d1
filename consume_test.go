package match

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/DexerMatters/match-string/cursor"
)

func TestLiteralMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	if !MatchString(Str("hello"), "hello") {
		t.Errorf("Expected \"hello\" to match itself")
	}
	if MatchString(Str("hello"), "hellx") {
		t.Errorf("Expected \"hellx\" not to match \"hello\"")
	}
	if MatchString(Str("hello"), "hello!") {
		t.Errorf("Expected trailing input to fail an anchored match")
	}
}

func TestAlternationFirstMatchWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	p := Seq(Or(Str("hello"), Str("hi")), Str(", world!"))
	m := NewTextMatcher()
	cur := cursor.NewText("hi, world!")
	if !m.Match(p, cur) {
		t.Errorf("Expected \"hi, world!\" to match")
	}
	if cur.Remaining() != 0 {
		t.Errorf("Expected cursor to be exhausted, %d elements left", cur.Remaining())
	}
}

func TestSequenceAllOrNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	p := Seq(Str("hi"), Str("ho"), Str("ha"))
	if !MatchString(p, "hihoha") {
		t.Errorf("Expected \"hihoha\" to match")
	}
	m := NewTextMatcher()
	cur := cursor.NewText("hiho")
	if m.Consume(p, cur, Discard) {
		t.Errorf("Expected partial sequence to fail")
	}
	if cur.Pos() != 0 {
		t.Errorf("Expected cursor unchanged at start, is at %d", cur.Pos())
	}
}

func TestNoPartialEffect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	// a pattern that consumes before failing, tried from every position
	p := Seq(To("x", Str("ab")), Str("zz"))
	input := "abababab"
	for i := 0; i <= len(input); i++ {
		m := NewTextMatcher()
		cur := cursor.NewText(input[i:])
		if m.Consume(p, cur, Discard) {
			t.Fatalf("Expected no match at position %d", i)
		}
		if cur.Pos() != 0 {
			t.Errorf("Position %d: cursor drifted to %d", i, cur.Pos())
		}
		if _, set := m.Captures().Get("x"); set {
			t.Errorf("Position %d: failed trial leaked a capture", i)
		}
	}
}

func TestZeroWidthTermination(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	empty := Str("")
	m := NewTextMatcher()
	if !m.Consume(Star(empty), cursor.NewText("aaa"), Discard) {
		t.Errorf("Expected zero-or-more of the empty pattern to succeed")
	}
	if m.Consume(Plus(empty), cursor.NewText("aaa"), Discard) {
		t.Errorf("Expected one-or-more of the empty pattern to fail: no non-empty round")
	}
	if !m.Consume(Sep(empty, Str(",")), cursor.NewText("aaa"), Discard) {
		t.Errorf("Expected separated repetition of the empty pattern to succeed")
	}
}

func TestAnchoredMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	p := Str("wait")
	m := NewTextMatcher()
	cur := cursor.NewText("waiting")
	if !m.Consume(p, cur, Discard) {
		t.Errorf("Expected prefix consume to succeed")
	}
	if MatchString(p, "waiting") {
		t.Errorf("Expected anchored match of a prefix-only pattern to fail")
	}
}

func TestCaptureUnderRepetition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	p := Star(Seq(Star(Str("wait")), To("ing", Str("ing"))))
	m := NewTextMatcher()
	cur := cursor.NewText("waitingwaitingdone")
	if !m.Consume(p, cur, Discard) {
		t.Fatalf("Expected consume to succeed")
	}
	ings := m.Captures().Items("ing")
	if len(ings) != 2 || ings[0] != "ing" || ings[1] != "ing" {
		t.Errorf("Expected captures [ing ing], got %v", ings)
	}
	if rest := string(cur.Rest()); rest != "done" {
		t.Errorf("Expected leftover \"done\", got %q", rest)
	}
}

func TestCaptureTokenValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	p := Star(Seq(Str("a"), To("n", Tok(Num))))
	m := NewTextMatcher()
	cur := cursor.NewText("a1a2a3done")
	if !m.Consume(p, cur, Discard) {
		t.Fatalf("Expected consume to succeed")
	}
	ns := m.Captures().Items("n")
	if len(ns) != 3 || ns[0] != 1 || ns[1] != 2 || ns[2] != 3 {
		t.Errorf("Expected captured values [1 2 3], got %v", ns)
	}
	if rest := string(cur.Rest()); rest != "done" {
		t.Errorf("Expected leftover \"done\", got %q", rest)
	}
}

func TestCaptureFanoutCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	m := NewTextMatcher()
	if !m.Match(Plus(To("w", Str("ab"))), cursor.NewText("ababab")) {
		t.Fatalf("Expected match")
	}
	if n := len(m.Captures().Items("w")); n != 3 {
		t.Errorf("Expected one captured entry per round, got %d", n)
	}
}

func TestAlternationRestoresCaptures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	// candidate 1 commits a capture and then fails; candidate 2 must see
	// the pre-trial state and the slot must stay unset
	p := Or(Seq(To("x", Str("ab")), Str("#")), Str("ab"))
	m := NewTextMatcher()
	if !m.Match(p, cursor.NewText("ab")) {
		t.Fatalf("Expected second candidate to match")
	}
	if _, set := m.Captures().Get("x"); set {
		t.Errorf("Expected capture of the failed candidate to be rolled back")
	}
}

func TestSeparatedRepetition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	p := Sep(Tok(Num), Str(","))
	if !MatchString(p, "12,34,56") {
		t.Errorf("Expected separated number list to match")
	}
	if !MatchString(p, "12,34,") {
		t.Errorf("Expected trailing separator to be absorbed")
	}
	if !MatchString(p, "") {
		t.Errorf("Expected zero occurrences to match")
	}
	if MatchString(Sep1(Tok(Num), Str(",")), "") {
		t.Errorf("Expected mandatory first element to fail on empty input")
	}
	if !MatchString(Sep1(Tok(Num), Str(",")), "7") {
		t.Errorf("Expected single element to match")
	}
}

func TestCheckpointCursorBacktracking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	// a single-pass source forces the rollback log strategy
	p := Seq(Or(Str("hello"), Str("hi")), Str(", world!"))
	m := NewTextMatcher()
	cur := cursor.FromRuneReader(strings.NewReader("hi, world!"))
	if !m.Match(p, cur) {
		t.Errorf("Expected match over a checkpointing cursor")
	}
	if cur.Buffered() != 0 {
		t.Errorf("Expected no buffered elements after the match, got %d", cur.Buffered())
	}
}

func TestMatchSliceOfTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	seq := []int{1, 2, 3}
	if !MatchSlice(Lit(1, 2, 3), seq) {
		t.Errorf("Expected [1 2 3] to match itself")
	}
	if MatchSlice(Lit(1, 2), seq) {
		t.Errorf("Expected anchored slice match to fail on leftover")
	}
}

func TestExprString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.core")
	defer teardown()
	//
	p := Sep(To("n", Tok(Num)), To("s", Or(Str(","), Str("."))))
	got := p.String()
	want := `n @ NUM[s @ ("," / ".")]+`
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
	names := p.CaptureNames()
	if len(names) != 2 || names[0] != "n" || names[1] != "s" {
		t.Errorf("Expected capture names [n s], got %v", names)
	}
}
