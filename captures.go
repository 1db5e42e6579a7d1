package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/

// Capture slots. Instead of destination cells aliased across the tree, all
// named capture state lives in one arena owned by the Matcher; Capturing
// nodes reach their slot by name at commit time.

import "sort"

type shape int8

const (
	singular shape = iota // commit overwrites the slot value
	series                // commit appends to the slot sequence
)

// Slot is a named capture destination. Its shape decides the collector
// rule: a singular slot IS the captured value and is overwritten on every
// commit, a list slot is a sequence the captured value is appended to.
// The shape is a property of the declared destination, never of the inner
// pattern.
type Slot struct {
	name  string
	shape shape
	value interface{}
	items []interface{}
	set   bool
}

// Name returns the slot name.
func (s *Slot) Name() string {
	return s.name
}

// Value returns the committed value: the last value for a singular slot,
// the accumulated sequence for a list slot.
func (s *Slot) Value() interface{} {
	if s.shape == series {
		return s.items
	}
	return s.value
}

// IsSet reports whether anything has been committed to the slot.
func (s *Slot) IsSet() bool {
	return s.set
}

// Captures is an arena of capture slots, owned by one Matcher. Slots may be
// declared up front with Single or List; a name committed to without a
// declaration becomes a list slot (repetitions then accumulate naturally).
type Captures struct {
	slots map[string]*Slot
	undo  []func()
}

// NewCaptures creates an empty arena.
func NewCaptures() *Captures {
	return &Captures{slots: make(map[string]*Slot)}
}

// Single declares name as an overwrite slot and returns it. Finds the slot
// in the arena, inserts a new one if not present.
func (c *Captures) Single(name string) *Slot {
	return c.declare(name, singular)
}

// List declares name as an append slot and returns it.
func (c *Captures) List(name string) *Slot {
	return c.declare(name, series)
}

func (c *Captures) declare(name string, sh shape) *Slot {
	if s, ok := c.slots[name]; ok {
		s.shape = sh
		return s
	}
	s := &Slot{name: name, shape: sh}
	c.slots[name] = s
	return s
}

// Get returns the committed value for name, and whether anything has been
// committed to it.
func (c *Captures) Get(name string) (interface{}, bool) {
	s, ok := c.slots[name]
	if !ok || !s.set {
		return nil, false
	}
	return s.Value(), true
}

// Items returns the sequence of a list slot, or nil.
func (c *Captures) Items(name string) []interface{} {
	s, ok := c.slots[name]
	if !ok || s.shape != series {
		return nil
	}
	return s.items
}

// Names returns the names of all slots, sorted.
func (c *Captures) Names() []string {
	names := make([]string, 0, len(c.slots))
	for name := range c.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears all slot values and the undo journal. Declared shapes are
// kept.
func (c *Captures) Reset() {
	for _, s := range c.slots {
		s.value = nil
		s.items = nil
		s.set = false
	}
	c.undo = c.undo[:0]
}

// commit merges a captured value into the named slot per its collector
// rule, journaling an undo entry so enclosing failed trials can revert it.
func (c *Captures) commit(name string, v interface{}) {
	s, ok := c.slots[name]
	if !ok {
		s = c.declare(name, series)
	}
	switch s.shape {
	case singular:
		prev, wasSet := s.value, s.set
		c.undo = append(c.undo, func() {
			s.value, s.set = prev, wasSet
		})
		s.value, s.set = v, true
	case series:
		n, wasSet := len(s.items), s.set
		c.undo = append(c.undo, func() {
			s.items, s.set = s.items[:n], wasSet
		})
		s.items = append(s.items, v)
		s.set = true
	}
}

// mark returns the current journal position.
func (c *Captures) mark() int {
	return len(c.undo)
}

// rollbackTo reverts every commit made since the journal position, in
// reverse order.
func (c *Captures) rollbackTo(m int) {
	for i := len(c.undo) - 1; i >= m; i-- {
		c.undo[i]()
	}
	c.undo = c.undo[:m]
}
