package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/

import "strings"

// --- Destinations ----------------------------------------------------------

// Sink is a destination for matched values. Nodes deliver into a sink only
// after they have succeeded, so a failed trial never leaks partial writes.
type Sink interface {
	// Put absorbs one matched value.
	Put(v interface{})
}

// Text accumulates matched runes (and strings) into a string. Values of
// other types are ignored.
type Text struct {
	b strings.Builder
}

// Put is part of the Sink interface.
func (t *Text) Put(v interface{}) {
	switch x := v.(type) {
	case rune:
		t.b.WriteRune(x)
	case string:
		t.b.WriteString(x)
	}
}

func (t *Text) String() string {
	return t.b.String()
}

// List accumulates matched values in order.
type List struct {
	items []interface{}
}

// Put is part of the Sink interface.
func (l *List) Put(v interface{}) {
	l.items = append(l.items, v)
}

// Items returns the accumulated values.
func (l *List) Items() []interface{} {
	return l.items
}

func (l *List) Len() int {
	return len(l.items)
}

// Tee fans every value out to all member sinks.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

type tee []Sink

func (t tee) Put(v interface{}) {
	for _, s := range t {
		s.Put(v)
	}
}

// Discard is the anonymous destination: values are dropped.
var Discard Sink = discard{}

type discard struct{}

func (discard) Put(interface{}) {}

func put(sink Sink, v interface{}) {
	if sink != nil {
		sink.Put(v)
	}
}
