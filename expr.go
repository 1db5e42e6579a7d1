package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// --- The combinator node set -----------------------------------------------

// Kind enumerates the closed set of combinator nodes. Dispatch happens in a
// single recursive interpreter (see Matcher.Consume); nodes carry no mutable
// match state.
type Kind int8

// The combinator kinds.
const (
	Literal Kind = iota // a fixed run of elements
	Sequence            // ordered children, all-or-nothing
	Alternation         // ordered children, first match wins
	ZeroOrMore          // repetition, trivially succeeds
	OneOrMore           // repetition, at least one non-empty round
	SepZeroOrMore       // repetition interleaved with a separator
	SepOneOrMore        // dito, first element mandatory
	Capturing           // bind the sub-match's value to a named slot
	Lexical             // predicate-driven token run
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Sequence:
		return "Sequence"
	case Alternation:
		return "Alternation"
	case ZeroOrMore:
		return "ZeroOrMore"
	case OneOrMore:
		return "OneOrMore"
	case SepZeroOrMore:
		return "SepZeroOrMore"
	case SepOneOrMore:
		return "SepOneOrMore"
	case Capturing:
		return "Capturing"
	case Lexical:
		return "Lexical"
	}
	return "Unknown"
}

// Expr is a node of an immutable combinator tree over elements of type T.
// Trees are constructed once, either with the constructor functions below or
// by the surface-syntax compiler, and may be reused across many matches and
// shared between goroutines. All mutable state of a match lives in the
// Matcher driving the tree.
type Expr[T any] struct {
	kind     Kind
	lits     []T        // Literal
	children []*Expr[T] // Sequence, Alternation
	inner    *Expr[T]   // quantifiers, Capturing
	sep      *Expr[T]   // SepZeroOrMore, SepOneOrMore
	name     string     // Capturing
	tok      *TokenSpec[T]
}

// Kind returns the node's combinator kind.
func (e *Expr[T]) Kind() Kind {
	return e.kind
}

// Name returns the slot name of a Capturing node, or "".
func (e *Expr[T]) Name() string {
	return e.name
}

// --- Constructors ----------------------------------------------------------

// Lit matches the given elements in order.
func Lit[T any](items ...T) *Expr[T] {
	return &Expr[T]{kind: Literal, lits: items}
}

// Str matches the runes of s in order.
func Str(s string) *Expr[rune] {
	return &Expr[rune]{kind: Literal, lits: []rune(s)}
}

// Seq matches every child in order; it commits consumed input and values
// only if the entire chain succeeds.
func Seq[T any](children ...*Expr[T]) *Expr[T] {
	return &Expr[T]{kind: Sequence, children: children}
}

// Or tries the candidates left to right and stops at the first success.
func Or[T any](candidates ...*Expr[T]) *Expr[T] {
	return &Expr[T]{kind: Alternation, children: candidates}
}

// Star matches inner zero or more times.
func Star[T any](inner *Expr[T]) *Expr[T] {
	return &Expr[T]{kind: ZeroOrMore, inner: inner}
}

// Plus matches inner one or more times.
func Plus[T any](inner *Expr[T]) *Expr[T] {
	return &Expr[T]{kind: OneOrMore, inner: inner}
}

// Sep matches elem zero or more times, each occurrence optionally followed
// by sep. A trailing separator is absorbed silently.
func Sep[T any](elem, sep *Expr[T]) *Expr[T] {
	return &Expr[T]{kind: SepZeroOrMore, inner: elem, sep: sep}
}

// Sep1 is Sep with the first element mandatory.
func Sep1[T any](elem, sep *Expr[T]) *Expr[T] {
	return &Expr[T]{kind: SepOneOrMore, inner: elem, sep: sep}
}

// To binds the value matched by inner to the named capture slot of the
// Matcher running the tree.
func To[T any](name string, inner *Expr[T]) *Expr[T] {
	return &Expr[T]{kind: Capturing, name: name, inner: inner}
}

// Tok matches a lexical token run described by spec.
func Tok[T any](spec *TokenSpec[T]) *Expr[T] {
	return &Expr[T]{kind: Lexical, tok: spec}
}

// --- Introspection ---------------------------------------------------------

// CaptureNames returns the names of all Capturing nodes in the tree, sorted
// and without duplicates.
func (e *Expr[T]) CaptureNames() []string {
	set := treeset.NewWithStringComparator()
	e.walk(func(n *Expr[T]) {
		if n.kind == Capturing {
			set.Add(n.name)
		}
	})
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}

func (e *Expr[T]) walk(visit func(*Expr[T])) {
	visit(e)
	for _, ch := range e.children {
		ch.walk(visit)
	}
	if e.inner != nil {
		e.inner.walk(visit)
	}
	if e.sep != nil {
		e.sep.walk(visit)
	}
}

// String renders the tree in surface syntax, parenthesizing composite
// sub-expressions.
func (e *Expr[T]) String() string {
	switch e.kind {
	case Literal:
		if rs, ok := any(e.lits).([]rune); ok {
			return strconv.Quote(string(rs))
		}
		return fmt.Sprintf("%v", e.lits)
	case Sequence:
		return "(" + joinExprs(e.children, ", ") + ")"
	case Alternation:
		return "(" + joinExprs(e.children, " / ") + ")"
	case ZeroOrMore:
		return e.inner.String() + "*"
	case OneOrMore:
		return e.inner.String() + "+"
	case SepZeroOrMore:
		return e.inner.String() + "[" + e.sep.String() + "]+"
	case SepOneOrMore:
		return e.inner.String() + "[" + e.sep.String() + "]*"
	case Capturing:
		return e.name + " @ " + e.inner.String()
	case Lexical:
		if e.tok.Name != "" {
			return e.tok.Name
		}
		return "<token>"
	}
	return "<invalid>"
}

func joinExprs[T any](es []*Expr[T], sep string) string {
	var b strings.Builder
	for i, e := range es {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(e.String())
	}
	return b.String()
}
