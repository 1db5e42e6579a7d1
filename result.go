package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/

import (
	"fmt"
	"strings"

	"github.com/DexerMatters/match-string/cursor"
)

// --- Result rows -----------------------------------------------------------

// Outcome is the three-way result of one matcher step.
type Outcome int8

// Step outcomes.
const (
	Skipped Outcome = iota // an optional step did not fire
	Errored                // a mandatory step failed
	Matched                // the step matched and produced a value
)

// Step is one slot of a result row: a named, tagged outcome.
type Step struct {
	Name    string
	Outcome Outcome
	Value   interface{}
}

func (s Step) String() string {
	switch s.Outcome {
	case Skipped:
		return "-"
	case Errored:
		return "✗"
	}
	return fmt.Sprintf("%v", s.Value)
}

// Row is an append-only ordered record of per-step outcomes. It answers
// conjunctive ("every mandatory step matched") and disjunctive ("at least
// one step matched") queries over the same step history.
type Row struct {
	steps []Step
}

// Append adds one step outcome. It returns the row for chaining.
func (r *Row) Append(s Step) *Row {
	r.steps = append(r.steps, s)
	return r
}

// All is true iff no step is Errored; Skipped steps do not break a
// conjunctive chain.
func (r *Row) All() bool {
	for _, s := range r.steps {
		if s.Outcome == Errored {
			return false
		}
	}
	return true
}

// Any is true iff at least one step is Matched.
func (r *Row) Any() bool {
	for _, s := range r.steps {
		if s.Outcome == Matched {
			return true
		}
	}
	return false
}

// Len returns the number of steps.
func (r *Row) Len() int {
	return len(r.steps)
}

// At returns the i-th step.
func (r *Row) At(i int) Step {
	return r.steps[i]
}

// Steps returns the ordered step record.
func (r *Row) Steps() []Step {
	return r.steps
}

func (r *Row) String() string {
	parts := make([]string, len(r.steps))
	for i, s := range r.steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// --- Step chains -----------------------------------------------------------

// Chain drives a sequence of matcher steps over one shared cursor, building
// a result row as it goes. A mandatory step that fails records Errored and
// leaves the cursor where it was; an optional step that fails records
// Skipped. Later steps continue from wherever the previous ones ended.
type Chain[T any] struct {
	m   *Matcher[T]
	cur cursor.Cursor[T]
	row Row
}

// NewChain creates a step chain running on m over cur.
func NewChain[T any](m *Matcher[T], cur cursor.Cursor[T]) *Chain[T] {
	return &Chain[T]{m: m, cur: cur}
}

// Step runs a mandatory step.
func (c *Chain[T]) Step(name string, e *Expr[T]) *Chain[T] {
	return c.step(name, e, false)
}

// Opt runs an optional step.
func (c *Chain[T]) Opt(name string, e *Expr[T]) *Chain[T] {
	return c.step(name, e, true)
}

func (c *Chain[T]) step(name string, e *Expr[T], optional bool) *Chain[T] {
	sink := &List{}
	if c.m.Consume(e, c.cur, sink) {
		c.row.Append(Step{Name: name, Outcome: Matched, Value: c.m.reduce(sink.items)})
	} else if optional {
		c.row.Append(Step{Name: name, Outcome: Skipped})
	} else {
		c.row.Append(Step{Name: name, Outcome: Errored})
	}
	return c
}

// Row returns the accumulated result row.
func (c *Chain[T]) Row() *Row {
	return &c.row
}
