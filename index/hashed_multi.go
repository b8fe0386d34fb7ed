package index

import (
	"iter"

	mapset "github.com/deckarep/golang-set/v2"
)

// HashedMulti is a hash index that admits several values per key. Exact
// duplicate pairs collapse; each (key, value) pair is stored at most once.
type HashedMulti[K, V comparable] struct {
	m    map[K]mapset.Set[V]
	size int
}

// NewHashedMulti returns an empty multi-valued hash index.
func NewHashedMulti[K, V comparable]() *HashedMulti[K, V] {
	return &HashedMulti[K, V]{m: make(map[K]mapset.Set[V])}
}

func (h *HashedMulti[K, V]) Len() int {
	return h.size
}

func (h *HashedMulti[K, V]) Unique() bool {
	return false
}

func (h *HashedMulti[K, V]) Get(k K) (V, bool) {
	var got V
	found := false
	if s, ok := h.m[k]; ok {
		s.Each(func(v V) bool {
			got, found = v, true
			return true // stop after the first
		})
	}
	return got, found
}

func (h *HashedMulti[K, V]) GetEntry(k K) (K, V, bool) {
	v, ok := h.Get(k)
	return k, v, ok
}

func (h *HashedMulti[K, V]) Has(k K, v V) bool {
	s, ok := h.m[k]
	return ok && s.Contains(v)
}

func (h *HashedMulti[K, V]) Put(k K, v V) {
	s, ok := h.m[k]
	if !ok {
		s = mapset.NewThreadUnsafeSet[V]()
		h.m[k] = s
	}
	if s.Add(v) {
		h.size++
	}
}

func (h *HashedMulti[K, V]) Delete(k K) int {
	s, ok := h.m[k]
	if !ok {
		return 0
	}
	n := s.Cardinality()
	delete(h.m, k)
	h.size -= n
	return n
}

func (h *HashedMulti[K, V]) DeletePair(k K, v V) bool {
	s, ok := h.m[k]
	if !ok || !s.Contains(v) {
		return false
	}
	s.Remove(v)
	h.size--
	if s.Cardinality() == 0 {
		delete(h.m, k)
	}
	return true
}

func (h *HashedMulti[K, V]) Clear() {
	clear(h.m)
	h.size = 0
}

func (h *HashedMulti[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, s := range h.m {
			// snapshot so the caller may delete pairs mid-iteration
			for _, v := range s.ToSlice() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

func (h *HashedMulti[K, V]) AllOf(k K) iter.Seq[V] {
	return func(yield func(V) bool) {
		s, ok := h.m[k]
		if !ok {
			return
		}
		for _, v := range s.ToSlice() {
			if !yield(v) {
				return
			}
		}
	}
}

func (h *HashedMulti[K, V]) CloneEmpty() Index[K, V] {
	return NewHashedMulti[K, V]()
}
