package gamestate

import (
	"strconv"
	"strings"
)

// Pebbles is a fixed-length pebble configuration: Pebbles[i] is the
// node the i-th pebble sits on, or -1 if that pebble is off the graph.
type Pebbles []int

// Clone returns an independent copy of p.
func (p Pebbles) Clone() Pebbles {
	out := make(Pebbles, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and other have the same length and entries.
func (p Pebbles) Equal(other Pebbles) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// StateID is a stable, monotonically increasing identifier assigned
// to a (Pebbles, CC, Tag) triple on first interning. Once issued, a
// StateID's meaning never changes. StateID values start at 0.
type StateID int

// State is the full triple a StateID represents: a pebble
// configuration, a selected CC index (-1 = none selected), and an
// opaque tag grouping states into client-defined move categories.
type State struct {
	Pebbles Pebbles
	CC      int
	Tag     int
}

// key returns a canonical string encoding of s, suitable as a map key.
// Offsetting pebble values by one lets -1 ("off") and non-negative
// node ids share an unambiguous textual representation.
func (s State) key() string {
	var b strings.Builder
	for _, p := range s.Pebbles {
		b.WriteString(strconv.Itoa(p + 1))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(s.CC))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(s.Tag))
	return b.String()
}

// Table interns (Pebbles, CC, Tag) triples into StateIDs and tracks
// per-state visitation metadata.
type Table struct {
	numPebbles int
	byKey      map[string]StateID
	states     []State
	visited    []bool
}

// NewTable returns an empty Table for a fixed pebble count.
func NewTable(numPebbles int) *Table {
	return &Table{
		numPebbles: numPebbles,
		byKey:      make(map[string]StateID),
	}
}

// NumPebbles returns the fixed pebble count K.
func (t *Table) NumPebbles() int { return t.numPebbles }

// Len returns the number of distinct states interned so far.
func (t *Table) Len() int { return len(t.states) }

// Intern returns the StateID for (p, cc, tag), assigning a fresh one
// if this is the first time the triple is seen. The second return
// value is true iff a new id was assigned. p is copied; the caller's
// slice is never aliased by the table.
func (t *Table) Intern(p Pebbles, cc, tag int) (StateID, bool) {
	s := State{Pebbles: p, CC: cc, Tag: tag}
	k := s.key()
	if id, ok := t.byKey[k]; ok {
		return id, false
	}
	id := StateID(len(t.states))
	s.Pebbles = p.Clone()
	t.states = append(t.states, s)
	t.visited = append(t.visited, false)
	t.byKey[k] = id
	return id, true
}

// Lookup returns the (Pebbles, CC, Tag) triple for id. The returned
// Pebbles is a copy. ok is false if id was never issued by this table.
func (t *Table) Lookup(id StateID) (State, bool) {
	if id < 0 || int(id) >= len(t.states) {
		return State{}, false
	}
	s := t.states[id]
	s.Pebbles = s.Pebbles.Clone()
	return s, true
}

// MarkVisited sets id's visited flag. No-op if id is invalid.
func (t *Table) MarkVisited(id StateID) {
	if id < 0 || int(id) >= len(t.visited) {
		return
	}
	t.visited[id] = true
}

// HasVisited reports id's visited flag. Invalid ids report false.
func (t *Table) HasVisited(id StateID) bool {
	if id < 0 || int(id) >= len(t.visited) {
		return false
	}
	return t.visited[id]
}
