package cursor

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/

import (
	"io"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Checkpoint is a cursor over a single-pass pull source, i.e. one that
// cannot be cheaply duplicated. Backtracking is implemented as a
// begin/commit/rollback log: every element newly pulled while a mark is
// open is recorded in a trail, and Rollback pushes the trail suffix back
// onto a front deque so subsequent reads reproduce the elements in their
// original order.
//
// The trail never holds more than was consumed since the outermost open
// mark; committing the outermost mark discards it entirely.
type Checkpoint[T any] struct {
	pull   func() (T, bool)
	front  *doublylinkedlist.List // pushed-back elements, in reading order
	trail  []T
	frames []frame
	pos    uint64
}

type frame struct {
	trailLen int
	pos      uint64
}

var _ Cursor[rune] = (*Checkpoint[rune])(nil)

// NewCheckpoint creates a checkpointing cursor over a pull function. The
// function is called once per element and reports false when the source is
// exhausted; it is never called again after that.
func NewCheckpoint[T any](pull func() (T, bool)) *Checkpoint[T] {
	return &Checkpoint[T]{
		pull:  pull,
		front: doublylinkedlist.New(),
	}
}

// FromRuneReader creates a checkpointing rune cursor over a stream.
func FromRuneReader(r io.RuneReader) *Checkpoint[rune] {
	return NewCheckpoint(func() (rune, bool) {
		ch, _, err := r.ReadRune()
		if err != nil {
			if err != io.EOF {
				tracer().Errorf("rune source: %v", err)
			}
			return 0, false
		}
		return ch, true
	})
}

// Peek is part of the Cursor interface. A peeked element is parked on the
// front deque; it is not recorded in the trail until actually consumed.
func (c *Checkpoint[T]) Peek() (T, bool) {
	if c.front.Size() > 0 {
		item, _ := c.front.Get(0)
		return item.(T), true
	}
	item, ok := c.pull()
	if !ok {
		var zero T
		return zero, false
	}
	c.front.Prepend(item)
	return item, true
}

// Next is part of the Cursor interface.
func (c *Checkpoint[T]) Next() (T, bool) {
	var item T
	if c.front.Size() > 0 {
		v, _ := c.front.Get(0)
		c.front.Remove(0)
		item = v.(T)
	} else {
		var ok bool
		item, ok = c.pull()
		if !ok {
			var zero T
			return zero, false
		}
	}
	if len(c.frames) > 0 {
		c.trail = append(c.trail, item)
	}
	c.pos++
	return item, true
}

// Pos is part of the Cursor interface.
func (c *Checkpoint[T]) Pos() uint64 {
	return c.pos
}

// Mark begins buffering.
func (c *Checkpoint[T]) Mark() Mark {
	c.frames = append(c.frames, frame{trailLen: len(c.trail), pos: c.pos})
	return Mark{pos: c.pos, depth: len(c.frames)}
}

// Rollback pushes buffered elements back in original order, so subsequent
// reads reproduce them. Marks opened after m are discarded with it.
func (c *Checkpoint[T]) Rollback(m Mark) {
	f := c.frames[m.depth-1]
	suffix := c.trail[f.trailLen:]
	if len(suffix) > 0 {
		back := make([]interface{}, len(suffix))
		for i, item := range suffix {
			back[i] = item
		}
		c.front.Prepend(back...)
	}
	c.trail = c.trail[:f.trailLen]
	c.frames = c.frames[:m.depth-1]
	c.pos = f.pos
}

// Commit discards the buffer for m (the trial succeeded). Elements recorded
// since an enclosing mark stay buffered, so an outer Rollback remains
// correct across committed inner trials.
func (c *Checkpoint[T]) Commit(m Mark) {
	c.frames = c.frames[:m.depth-1]
	if len(c.frames) == 0 {
		c.trail = c.trail[:0]
	}
}

// Buffered returns the number of elements currently recorded for rollback.
func (c *Checkpoint[T]) Buffered() int {
	return len(c.trail)
}
