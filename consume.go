package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/DexerMatters/match-string/cursor"
)

// tracer traces with key 'match.core'.
func tracer() tracing.Trace {
	return tracing.Select("match.core")
}

// Relation decides whether an actual element satisfies a pattern element.
type Relation[T any] func(pat, actual T) bool

// Equal is the default relation: structural equality.
func Equal[T comparable]() Relation[T] {
	return func(pat, actual T) bool { return pat == actual }
}

// --- Matcher ---------------------------------------------------------------

// Matcher is the per-match execution context: it carries the element
// relation, the capture-slot arena, and the fold used to render element runs
// into captured values. A Matcher (and any cursor it drives) is owned by one
// match attempt at a time; the Expr trees it runs are freely shared.
type Matcher[T any] struct {
	rel  Relation[T]
	caps *Captures
	fold func([]T) interface{}
}

// NewMatcher creates a Matcher with the equality relation.
func NewMatcher[T comparable]() *Matcher[T] {
	return NewMatcherFunc(Equal[T]())
}

// NewMatcherFunc creates a Matcher with a custom element relation.
func NewMatcherFunc[T any](rel Relation[T]) *Matcher[T] {
	return &Matcher[T]{
		rel:  rel,
		caps: NewCaptures(),
		fold: func(elems []T) interface{} { return elems },
	}
}

// NewTextMatcher creates a rune Matcher which folds captured element runs
// into strings.
func NewTextMatcher() *Matcher[rune] {
	m := NewMatcher[rune]()
	m.fold = func(elems []rune) interface{} { return string(elems) }
	return m
}

// Captures returns the matcher's capture arena.
func (m *Matcher[T]) Captures() *Captures {
	return m.caps
}

// Reset clears capture state, keeping declared slot shapes. Call it between
// independent matches on the same Matcher.
func (m *Matcher[T]) Reset() {
	m.caps.Reset()
}

// --- Top-level operations --------------------------------------------------

// Match runs e against the cursor and additionally requires the input to be
// fully consumed: matching is anchored at both ends.
func (m *Matcher[T]) Match(e *Expr[T], cur cursor.Cursor[T]) bool {
	if !m.Consume(e, cur, Discard) {
		tracer().Debugf("match failed at %d", cur.Pos())
		return false
	}
	_, more := cur.Peek()
	return !more
}

// Consume attempts to extend the match at the cursor's current position,
// advancing the cursor and delivering matched values to sink only on
// success. On failure the cursor and all capture slots are left exactly as
// they were before the call. sink may be nil.
func (m *Matcher[T]) Consume(e *Expr[T], cur cursor.Cursor[T], sink Sink) bool {
	cm := cur.Mark()
	km := m.caps.mark()
	ok := m.consume(e, cur, sink)
	if !ok {
		cur.Rollback(cm)
		m.caps.rollbackTo(km)
		return false
	}
	cur.Commit(cm)
	return true
}

// MatchString is a convenience whole-string match with a throwaway text
// Matcher.
func MatchString(e *Expr[rune], input string) bool {
	return NewTextMatcher().Match(e, cursor.NewText(input))
}

// MatchSlice is a convenience whole-slice match under structural equality.
func MatchSlice[T comparable](e *Expr[T], items []T) bool {
	return NewMatcher[T]().Match(e, cursor.NewSlice(items))
}

// --- The interpreter -------------------------------------------------------

// consume dispatches on the node kind. Callers (Consume) have opened a
// cursor mark and a journal mark, so kind algorithms may advance the cursor
// and commit captures freely and fail without cleanup. Delivering into sink
// still must not happen before success, since sinks have no rollback.
func (m *Matcher[T]) consume(e *Expr[T], cur cursor.Cursor[T], sink Sink) bool {
	switch e.kind {
	case Literal:
		return m.literal(e, cur, sink)
	case Sequence:
		return m.sequence(e, cur, sink)
	case Alternation:
		return m.alternation(e, cur, sink)
	case ZeroOrMore:
		m.repeat(e, cur, sink)
		return true
	case OneOrMore:
		return m.repeat(e, cur, sink) > 0
	case SepZeroOrMore:
		m.repeatSep(e, cur, sink)
		return true
	case SepOneOrMore:
		return m.repeatSep(e, cur, sink) > 0
	case Capturing:
		return m.capture(e, cur, sink)
	case Lexical:
		return m.lexical(e, cur, sink)
	}
	return false
}

// literal consumes one element per pattern element, each required to satisfy
// the relation.
func (m *Matcher[T]) literal(e *Expr[T], cur cursor.Cursor[T], sink Sink) bool {
	run := make([]T, 0, len(e.lits))
	for _, pat := range e.lits {
		actual, ok := cur.Peek()
		if !ok || !m.rel(pat, actual) {
			return false
		}
		cur.Next()
		run = append(run, actual)
	}
	for _, item := range run {
		put(sink, item)
	}
	return true
}

// sequence runs each child in order against the shared cursor with a
// per-child temporary destination; values are committed together only if
// the entire chain succeeds.
func (m *Matcher[T]) sequence(e *Expr[T], cur cursor.Cursor[T], sink Sink) bool {
	temps := make([]*List, 0, len(e.children))
	for _, child := range e.children {
		temp := &List{}
		if !m.Consume(child, cur, temp) {
			return false
		}
		temps = append(temps, temp)
	}
	for _, temp := range temps {
		for _, v := range temp.items {
			put(sink, v)
		}
	}
	return true
}

// alternation tries candidates left to right, first match wins. Each failed
// candidate restored its own cursor and capture state, so the next one
// starts from the exact pre-trial snapshot.
func (m *Matcher[T]) alternation(e *Expr[T], cur cursor.Cursor[T], sink Sink) bool {
	for _, cand := range e.children {
		if m.Consume(cand, cur, sink) {
			return true
		}
	}
	return false
}

// repeat loops the inner pattern with a fresh per-round destination and
// returns the number of committed rounds. A round consuming zero elements
// is dropped and ends the loop; this guard is the sole termination
// safeguard against zero-length inner patterns.
func (m *Matcher[T]) repeat(e *Expr[T], cur cursor.Cursor[T], sink Sink) int {
	count := 0
	for {
		km := m.caps.mark()
		start := cur.Pos()
		round := &List{}
		if !m.Consume(e.inner, cur, round) {
			break
		}
		if cur.Pos() == start {
			m.caps.rollbackTo(km)
			break
		}
		for _, v := range round.items {
			put(sink, v)
		}
		count++
	}
	return count
}

// repeatSep loops element-then-separator rounds. The separator is consumed
// greedily after each element but never required, so a trailing separator
// is absorbed silently. Returns the number of committed rounds.
func (m *Matcher[T]) repeatSep(e *Expr[T], cur cursor.Cursor[T], sink Sink) int {
	count := 0
	for {
		km := m.caps.mark()
		start := cur.Pos()
		elem := &List{}
		if !m.Consume(e.inner, cur, elem) {
			break
		}
		sep := &List{}
		m.Consume(e.sep, cur, sep)
		if cur.Pos() == start {
			m.caps.rollbackTo(km)
			break
		}
		for _, v := range elem.items {
			put(sink, v)
		}
		for _, v := range sep.items {
			put(sink, v)
		}
		count++
	}
	return count
}

// capture runs the inner pattern against a fresh private destination; on
// success the reduced value is committed to the node's slot and delivered
// to the caller's sink, so both observe the same final value. On failure
// nothing is mutated.
func (m *Matcher[T]) capture(e *Expr[T], cur cursor.Cursor[T], sink Sink) bool {
	private := &List{}
	if !m.Consume(e.inner, cur, private) {
		return false
	}
	v := m.reduce(private.items)
	m.caps.commit(e.name, v)
	put(sink, v)
	return true
}

// lexical implements the token algorithm: skip leading elements, greedily
// consume the maximal run satisfying the predicate, require the minimum
// length, and deliver the parsed value.
func (m *Matcher[T]) lexical(e *Expr[T], cur cursor.Cursor[T], sink Sink) bool {
	spec := e.tok
	if spec.Skip != nil {
		for {
			actual, ok := cur.Peek()
			if !ok || !spec.Skip(actual) {
				break
			}
			cur.Next()
		}
	}
	var run []T
	for {
		actual, ok := cur.Peek()
		if !ok || !spec.Pred(actual) {
			break
		}
		cur.Next()
		run = append(run, actual)
	}
	if len(run) < spec.AtLeast {
		tracer().Debugf("token %s: run of %d below minimum %d", spec.Name, len(run), spec.AtLeast)
		return false
	}
	if spec.Parse == nil {
		put(sink, m.fold(run))
		return true
	}
	if v := spec.Parse(run); v != nil {
		put(sink, v)
	}
	return true
}

// reduce renders a private accumulation into one captured value: an
// all-element run is folded (a string for text matchers), a single parsed
// value passes through, anything mixed becomes a value list.
func (m *Matcher[T]) reduce(items []interface{}) interface{} {
	elems := make([]T, 0, len(items))
	allElems := true
	for _, it := range items {
		el, ok := it.(T)
		if !ok {
			allElems = false
			break
		}
		elems = append(elems, el)
	}
	if allElems {
		return m.fold(elems)
	}
	if len(items) == 1 {
		return items[0]
	}
	out := make([]interface{}, len(items))
	copy(out, items)
	return out
}
