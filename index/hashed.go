package index

import (
	"iter"
	"maps"
)

// Hashed is a unique hash index backed by the built-in map. Lookup, insert
// and delete are O(1); iteration order is unspecified.
type Hashed[K, V comparable] struct {
	m        map[K]V
	capacity int
}

// NewHashed returns an empty hash index pre-sized for capacity pairs.
func NewHashed[K, V comparable](capacity int) *Hashed[K, V] {
	return &Hashed[K, V]{
		m:        make(map[K]V, capacity),
		capacity: capacity,
	}
}

func (h *Hashed[K, V]) Len() int {
	return len(h.m)
}

func (h *Hashed[K, V]) Unique() bool {
	return true
}

func (h *Hashed[K, V]) Get(k K) (V, bool) {
	v, ok := h.m[k]
	return v, ok
}

func (h *Hashed[K, V]) GetEntry(k K) (K, V, bool) {
	// map keys compare by ==, so the argument is the stored key
	v, ok := h.m[k]
	return k, v, ok
}

func (h *Hashed[K, V]) Has(k K, v V) bool {
	got, ok := h.m[k]
	return ok && got == v
}

func (h *Hashed[K, V]) Put(k K, v V) {
	h.m[k] = v
}

func (h *Hashed[K, V]) Delete(k K) int {
	if _, ok := h.m[k]; !ok {
		return 0
	}
	delete(h.m, k)
	return 1
}

func (h *Hashed[K, V]) DeletePair(k K, v V) bool {
	if got, ok := h.m[k]; !ok || got != v {
		return false
	}
	delete(h.m, k)
	return true
}

func (h *Hashed[K, V]) Clear() {
	clear(h.m)
}

func (h *Hashed[K, V]) All() iter.Seq2[K, V] {
	// the built-in map permits deleting the current key mid-range
	return maps.All(h.m)
}

func (h *Hashed[K, V]) AllOf(k K) iter.Seq[V] {
	return func(yield func(V) bool) {
		if v, ok := h.m[k]; ok {
			yield(v)
		}
	}
}

func (h *Hashed[K, V]) CloneEmpty() Index[K, V] {
	return NewHashed[K, V](h.capacity)
}
