// Package index provides the backing key tables a bidirectional map is built
// from. An index stores keys of one orientation together with the mirror key
// of the other, and the map core stays generic over the Index contract so the
// hash-based and tree-based tables are interchangeable.
package index

import "iter"

// An Index is a single-orientation key table. Implementations are not safe
// for concurrent use.
type Index[K, V comparable] interface {
	// Len returns the number of stored pairs.
	Len() int

	// Unique reports whether this index rejects duplicate keys. Callers use
	// it to pick a conflict policy before inserting.
	Unique() bool

	// Get returns the first value stored under k in the index's native order.
	Get(k K) (V, bool)

	// GetEntry returns the stored key together with the first value under k.
	// The stored key may differ from k when a comparator treats distinct
	// values as equal.
	GetEntry(k K) (K, V, bool)

	// Has reports whether the exact pair (k, v) is present.
	Has(k K, v V) bool

	// Put stores v under k. On a unique index any existing value under k is
	// replaced; callers that need first-writer-wins must check beforehand.
	Put(k K, v V)

	// Delete removes every value stored under k and returns the number removed.
	Delete(k K) int

	// DeletePair removes the first pair matching (k, v) in the index's native
	// order, reporting whether anything was removed.
	DeletePair(k K, v V) bool

	// Clear removes all pairs.
	Clear()

	// All iterates pairs in the index's native order. Implementations must
	// tolerate deletion of the current or any already-yielded key while the
	// sequence is being consumed.
	All() iter.Seq2[K, V]

	// AllOf iterates the values stored under k in native order. The sequence
	// is a snapshot; the index may be mutated while it is consumed.
	AllOf(k K) iter.Seq[V]

	// CloneEmpty returns a new empty index of the same kind and configuration.
	CloneEmpty() Index[K, V]
}

// Ordered is implemented by indices that keep keys sorted. The extra
// traversals follow the same mutate-while-iterating rules as All.
type Ordered[K, V comparable] interface {
	Index[K, V]

	// From iterates pairs with keys >= k in ascending order.
	From(k K) iter.Seq2[K, V]

	// Tail iterates pairs with keys strictly greater than k in ascending order.
	Tail(k K) iter.Seq2[K, V]

	// Backward iterates all pairs in descending key order.
	Backward() iter.Seq2[K, V]

	// Min returns the pair with the smallest key.
	Min() (K, V, bool)

	// Max returns the pair with the largest key.
	Max() (K, V, bool)
}
