package cursor

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/

// Slice is a cursor over an in-memory slice. Since the underlying sequence
// supports O(1) positional duplication, backtracking is clone-and-restore:
// a Mark records the position and Rollback replaces it wholesale.
type Slice[T any] struct {
	items []T
	pos   int
}

var _ Cursor[rune] = (*Slice[rune])(nil)

// NewSlice creates a cursor over items. The slice is not copied; callers
// must not mutate it while a match is running.
func NewSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

// NewText creates a rune cursor over fixed text.
func NewText(text string) *Slice[rune] {
	return &Slice[rune]{items: []rune(text)}
}

// Peek is part of the Cursor interface.
func (s *Slice[T]) Peek() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[s.pos], true
}

// Next is part of the Cursor interface.
func (s *Slice[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	item := s.items[s.pos]
	s.pos++
	return item, true
}

// Pos is part of the Cursor interface.
func (s *Slice[T]) Pos() uint64 {
	return uint64(s.pos)
}

// Remaining returns the count of yet-to-be-consumed elements.
func (s *Slice[T]) Remaining() int {
	return len(s.items) - s.pos
}

// Rest returns the yet-to-be-consumed elements. The result aliases the
// cursor's underlying slice.
func (s *Slice[T]) Rest() []T {
	return s.items[s.pos:]
}

// Mark is part of the Cursor interface.
func (s *Slice[T]) Mark() Mark {
	return Mark{pos: uint64(s.pos)}
}

// Rollback is part of the Cursor interface.
func (s *Slice[T]) Rollback(m Mark) {
	s.pos = int(m.pos)
}

// Commit is part of the Cursor interface. It is a no-op for slices.
func (s *Slice[T]) Commit(Mark) {}
