// Package bidimap implements a bidirectional associative container. A Map
// tracks an injective mapping between keys of two types and answers lookups
// in either direction at the cost of the backing index on that side. Both
// orientations of one Map share the same pair of indices, so every mutation
// is visible through both views. A Map is not safe for concurrent use.
package bidimap

import (
	"cmp"
	"iter"

	"github.com/Timmifixedit/BidirectionalMap/index"
)

// An Entry is one left-right pairing held by a Map.
type Entry[L, R comparable] struct {
	Left  L
	Right R
}

// Map is a bidirectional mapping between keys of type L and keys of type R.
// The zero value is not usable; construct with New, NewSorted, NewWithIndexes,
// Of or Collect.
type Map[L, R comparable] struct {
	fwd index.Index[L, R]
	inv index.Index[R, L]

	// inverse is the opposite-orientation view over the same two indices.
	// The root constructor allocates it exactly once; both views back-link
	// to each other.
	inverse *Map[R, L]
}

// New returns an empty Map with hash indices on both sides.
func New[L, R comparable](opts ...Option) *Map[L, R] {
	cfg := newConfig(opts)
	return NewWithIndexes[L, R](index.NewHashed[L, R](cfg.capacity), index.NewHashed[R, L](cfg.capacity))
}

// NewSorted returns an empty Map whose forward index keeps keys in ascending
// order, enabling From, Tail, Backward, Min and Max. The inverse side stays
// hash-based.
func NewSorted[L cmp.Ordered, R comparable]() *Map[L, R] {
	return NewWithIndexes[L, R](index.NewSorted[L, R](), index.NewHashed[R, L](0))
}

// NewWithIndexes returns an empty Map over the provided backing indices. Both
// indices must be empty. A multi-valued index on either side relaxes that
// side's uniqueness check during Put and disables At for that orientation.
func NewWithIndexes[L, R comparable](fwd index.Index[L, R], inv index.Index[R, L]) *Map[L, R] {
	m := &Map[L, R]{fwd: fwd, inv: inv}
	m.inverse = &Map[R, L]{fwd: inv, inv: fwd, inverse: m}
	return m
}

// Of returns a hash-based Map holding the given entries. Entries that share a
// left or right key with an earlier entry are dropped; the first one wins.
func Of[L, R comparable](entries ...Entry[L, R]) *Map[L, R] {
	m := New[L, R](WithCapacity(len(entries)))
	for _, e := range entries {
		m.Put(e.Left, e.Right)
	}
	return m
}

// Collect returns a hash-based Map holding the pairs of seq, with the same
// duplicate policy as Of.
func Collect[L, R comparable](seq iter.Seq2[L, R]) *Map[L, R] {
	m := New[L, R]()
	m.Insert(seq)
	return m
}

// Put inserts the pair (l, r). If l or r already participates in a mapping on
// a unique side, nothing changes and the pre-existing conflicting entry is
// returned along with false. Otherwise both indices are updated and the new
// entry is returned along with true.
func (m *Map[L, R]) Put(l L, r R) (Entry[L, R], bool) {
	if m.fwd.Unique() {
		if storedL, storedR, ok := m.fwd.GetEntry(l); ok {
			return Entry[L, R]{Left: storedL, Right: storedR}, false
		}
	}
	if m.inv.Unique() {
		if storedR, storedL, ok := m.inv.GetEntry(r); ok {
			return Entry[L, R]{Left: storedL, Right: storedR}, false
		}
	}
	if !m.inv.Unique() {
		if !m.fwd.Unique() && m.fwd.Has(l, r) {
			// with both sides multi-valued only the exact pair counts as a duplicate
			storedL, _, _ := m.fwd.GetEntry(l)
			return Entry[L, R]{Left: storedL, Right: r}, false
		}
		// exercise the inverse lookup before mutating anything so a
		// comparator failure cannot leave a half-inserted pair
		m.inv.Has(r, l)
	}
	m.fwd.Put(l, r)
	m.inv.Put(r, l)
	return Entry[L, R]{Left: l, Right: r}, true
}

// Insert adds every pair from seq via Put and returns the number inserted.
func (m *Map[L, R]) Insert(seq iter.Seq2[L, R]) int {
	n := 0
	for l, r := range seq {
		if _, inserted := m.Put(l, r); inserted {
			n++
		}
	}
	return n
}

// Get returns the right key mapped to l. On a multi-valued forward index the
// first value in the index's native order is returned.
func (m *Map[L, R]) Get(l L) (R, bool) {
	return m.fwd.Get(l)
}

// GetAll iterates every right key mapped to l, in the forward index's native
// order. The sequence is a snapshot; the Map may be mutated while consuming it.
func (m *Map[L, R]) GetAll(l L) iter.Seq[R] {
	return m.fwd.AllOf(l)
}

// At returns the right key mapped to l, or an error wrapping ErrNotFound when
// l is absent. It returns ErrMultiValued when the forward index admits
// duplicate keys.
func (m *Map[L, R]) At(l L) (R, error) {
	var zero R
	if !m.fwd.Unique() {
		return zero, ErrMultiValued
	}
	r, ok := m.fwd.Get(l)
	if !ok {
		return zero, notFound(l)
	}
	return r, nil
}

// Contains reports whether l participates in a mapping.
func (m *Map[L, R]) Contains(l L) bool {
	_, ok := m.fwd.Get(l)
	return ok
}

// Delete removes every pair whose left key equals l, together with the mirror
// entries, and returns the number of pairs removed.
func (m *Map[L, R]) Delete(l L) int {
	n := 0
	for r := range m.fwd.AllOf(l) {
		m.inv.DeletePair(r, l)
		n++
	}
	if n > 0 {
		m.fwd.Delete(l)
	}
	return n
}

// DeletePair removes the exact pair (l, r) from both orientations, reporting
// whether it was present.
func (m *Map[L, R]) DeletePair(l L, r R) bool {
	if !m.fwd.DeletePair(l, r) {
		return false
	}
	m.inv.DeletePair(r, l)
	return true
}

// DeleteFunc removes every pair for which del returns true and returns the
// number removed.
func (m *Map[L, R]) DeleteFunc(del func(l L, r R) bool) int {
	n := 0
	for l, r := range m.All() {
		if del(l, r) {
			m.DeletePair(l, r)
			n++
		}
	}
	return n
}

// Inverse returns the opposite-orientation view of this Map. The view is
// fully functional, shares all state with the receiver, and is stable for the
// Map's lifetime; Inverse of the view returns the receiver itself.
func (m *Map[L, R]) Inverse() *Map[R, L] {
	return m.inverse
}

// Len returns the number of pairs.
func (m *Map[L, R]) Len() int {
	return m.fwd.Len()
}

// IsEmpty reports whether the Map holds no pairs.
func (m *Map[L, R]) IsEmpty() bool {
	return m.fwd.Len() == 0
}

// Clear removes all pairs from both orientations.
func (m *Map[L, R]) Clear() {
	m.fwd.Clear()
	m.inv.Clear()
}

// Equal reports whether both Maps hold exactly the same pairs, regardless of
// backing index kind.
func (m *Map[L, R]) Equal(other *Map[L, R]) bool {
	if other == nil || m.Len() != other.Len() {
		return false
	}
	for l, r := range m.All() {
		if !other.fwd.Has(l, r) {
			return false
		}
	}
	return true
}

// All iterates every pair in the forward index's native order. Deleting the
// current or any already-yielded pair during iteration is allowed.
func (m *Map[L, R]) All() iter.Seq2[L, R] {
	return m.fwd.All()
}

// Clone returns a deep, fully independent copy using fresh backing indices of
// the same kinds.
func (m *Map[L, R]) Clone() *Map[L, R] {
	c := NewWithIndexes(m.fwd.CloneEmpty(), m.inv.CloneEmpty())
	for l, r := range m.All() {
		c.fwd.Put(l, r)
		c.inv.Put(r, l)
	}
	return c
}

// Swap exchanges the contents of two Maps in O(1) by exchanging their index
// handles and repairing both paired views.
func (m *Map[L, R]) Swap(other *Map[L, R]) {
	m.fwd, other.fwd = other.fwd, m.fwd
	m.inv, other.inv = other.inv, m.inv
	m.inverse.fwd, m.inverse.inv = m.inv, m.fwd
	other.inverse.fwd, other.inverse.inv = other.inv, other.fwd
}

// Take moves the contents into a freshly constructed Map in O(1), leaving the
// receiver valid, empty and reusable.
func (m *Map[L, R]) Take() *Map[L, R] {
	out := NewWithIndexes(m.fwd.CloneEmpty(), m.inv.CloneEmpty())
	m.Swap(out)
	return out
}

// From iterates pairs with left keys >= l in ascending order. The forward
// index must be ordered.
func (m *Map[L, R]) From(l L) iter.Seq2[L, R] {
	return m.ordered("From").From(l)
}

// Tail iterates pairs with left keys strictly greater than l in ascending
// order. The forward index must be ordered.
func (m *Map[L, R]) Tail(l L) iter.Seq2[L, R] {
	return m.ordered("Tail").Tail(l)
}

// Backward iterates every pair in descending left-key order. The forward
// index must be ordered.
func (m *Map[L, R]) Backward() iter.Seq2[L, R] {
	return m.ordered("Backward").Backward()
}

// Min returns the pair with the smallest left key. The forward index must be
// ordered.
func (m *Map[L, R]) Min() (Entry[L, R], bool) {
	l, r, ok := m.ordered("Min").Min()
	return Entry[L, R]{Left: l, Right: r}, ok
}

// Max returns the pair with the largest left key. The forward index must be
// ordered.
func (m *Map[L, R]) Max() (Entry[L, R], bool) {
	l, r, ok := m.ordered("Max").Max()
	return Entry[L, R]{Left: l, Right: r}, ok
}

func (m *Map[L, R]) ordered(op string) index.Ordered[L, R] {
	oi, ok := m.fwd.(index.Ordered[L, R])
	if !ok {
		panic("bidimap: " + op + " requires an ordered forward index")
	}
	return oi
}
