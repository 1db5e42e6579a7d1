/*
Package cursor provides positions over input sequences, supporting
peek-without-consuming, consume-one, and backtracking restoration.

Two implementations are provided: (1) Slice (and its rune specialization
created by NewText), which duplicates its position cheaply and restores it
wholesale, and (2) Checkpoint, a begin/commit/rollback log over a
single-pass pull source which cannot be cheaply duplicated.

Both guarantee the same contract: after a Rollback, the sequence of
yet-to-be-consumed elements is bit-for-bit identical, in order, to the
state at the time of the Mark, including the consumed-element count.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/
package cursor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'match.cursor'.
func tracer() tracing.Trace {
	return tracing.Select("match.cursor")
}

// Mark is an opaque snapshot handle for a trial match. Marks nest: the
// interpreter opens a mark per trial and closes it with either Rollback or
// Commit, innermost first.
type Mark struct {
	pos   uint64
	depth int
}

// Pos returns the consumed-element count at the time the mark was taken.
func (m Mark) Pos() uint64 {
	return m.pos
}

// Cursor is a position over a sequence of elements of type T. A cursor is
// owned exclusively by one match attempt; none of its methods are safe for
// concurrent use.
type Cursor[T any] interface {
	// Peek returns the next element without consuming it.
	Peek() (T, bool)
	// Next consumes and returns the next element.
	Next() (T, bool)
	// Pos returns the number of elements consumed so far.
	Pos() uint64
	// Mark begins a trial.
	Mark() Mark
	// Rollback restores the cursor to the state at the mark.
	Rollback(Mark)
	// Commit ends a trial, keeping everything consumed since the mark.
	Commit(Mark)
}
