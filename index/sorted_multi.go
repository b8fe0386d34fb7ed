package index

import (
	"cmp"
	"iter"

	"github.com/emirpasic/gods/v2/sets/linkedhashset"
	"github.com/emirpasic/gods/v2/trees/redblacktree"
	"github.com/emirpasic/gods/v2/utils"
)

// SortedMulti is an ordered index that admits several values per key. Values
// under one key keep their insertion order, which makes the "first matching
// pair" rule of DeletePair deterministic. Exact duplicate pairs collapse.
type SortedMulti[K, V comparable] struct {
	cmp  utils.Comparator[K]
	tree *redblacktree.Tree[K, *linkedhashset.Set[V]]
	size int
}

// NewSortedMulti returns an empty multi-valued ordered index using the
// natural key order.
func NewSortedMulti[K cmp.Ordered, V comparable]() *SortedMulti[K, V] {
	return NewSortedMultiWith[K, V](cmp.Compare[K])
}

// NewSortedMultiWith returns an empty multi-valued ordered index using the
// given comparator.
func NewSortedMultiWith[K, V comparable](comparator utils.Comparator[K]) *SortedMulti[K, V] {
	return &SortedMulti[K, V]{
		cmp:  comparator,
		tree: redblacktree.NewWith[K, *linkedhashset.Set[V]](comparator),
	}
}

func (s *SortedMulti[K, V]) Len() int {
	return s.size
}

func (s *SortedMulti[K, V]) Unique() bool {
	return false
}

func (s *SortedMulti[K, V]) Get(k K) (V, bool) {
	if set, ok := s.tree.Get(k); ok {
		if vals := set.Values(); len(vals) > 0 {
			return vals[0], true
		}
	}
	var zero V
	return zero, false
}

func (s *SortedMulti[K, V]) GetEntry(k K) (K, V, bool) {
	var zk K
	var zv V
	node, ok := s.tree.Ceiling(k)
	if !ok || s.cmp(node.Key, k) != 0 {
		return zk, zv, false
	}
	vals := node.Value.Values()
	if len(vals) == 0 {
		return zk, zv, false
	}
	return node.Key, vals[0], true
}

func (s *SortedMulti[K, V]) Has(k K, v V) bool {
	set, ok := s.tree.Get(k)
	return ok && set.Contains(v)
}

func (s *SortedMulti[K, V]) Put(k K, v V) {
	set, ok := s.tree.Get(k)
	if !ok {
		set = linkedhashset.New[V]()
		s.tree.Put(k, set)
	}
	if !set.Contains(v) {
		set.Add(v)
		s.size++
	}
}

func (s *SortedMulti[K, V]) Delete(k K) int {
	set, ok := s.tree.Get(k)
	if !ok {
		return 0
	}
	n := set.Size()
	s.tree.Remove(k)
	s.size -= n
	return n
}

func (s *SortedMulti[K, V]) DeletePair(k K, v V) bool {
	set, ok := s.tree.Get(k)
	if !ok || !set.Contains(v) {
		return false
	}
	set.Remove(v)
	s.size--
	if set.Size() == 0 {
		s.tree.Remove(k)
	}
	return true
}

func (s *SortedMulti[K, V]) Clear() {
	s.tree.Clear()
	s.size = 0
}

func (s *SortedMulti[K, V]) All() iter.Seq2[K, V] {
	return s.ascend(s.tree.Left())
}

func (s *SortedMulti[K, V]) AllOf(k K) iter.Seq[V] {
	return func(yield func(V) bool) {
		set, ok := s.tree.Get(k)
		if !ok {
			return
		}
		for _, v := range set.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *SortedMulti[K, V]) CloneEmpty() Index[K, V] {
	return NewSortedMultiWith[K, V](s.cmp)
}

func (s *SortedMulti[K, V]) From(k K) iter.Seq2[K, V] {
	node, _ := s.tree.Ceiling(k)
	return s.ascend(node)
}

func (s *SortedMulti[K, V]) Tail(k K) iter.Seq2[K, V] {
	return s.ascend(s.after(k))
}

func (s *SortedMulti[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		node := s.tree.Right()
		for node != nil {
			k := node.Key
			vals := node.Value.Values()
			for i := len(vals) - 1; i >= 0; i-- {
				if !yield(k, vals[i]) {
					return
				}
			}
			node = s.before(k)
		}
	}
}

func (s *SortedMulti[K, V]) Min() (K, V, bool) {
	return s.boundary(s.tree.Left())
}

func (s *SortedMulti[K, V]) Max() (K, V, bool) {
	return s.boundary(s.tree.Right())
}

func (s *SortedMulti[K, V]) boundary(node *redblacktree.Node[K, *linkedhashset.Set[V]]) (K, V, bool) {
	var zk K
	var zv V
	if node == nil {
		return zk, zv, false
	}
	vals := node.Value.Values()
	if len(vals) == 0 {
		return zk, zv, false
	}
	return node.Key, vals[0], true
}

func (s *SortedMulti[K, V]) ascend(start *redblacktree.Node[K, *linkedhashset.Set[V]]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		node := start
		for node != nil {
			k := node.Key
			// snapshot so the caller may delete pairs mid-iteration
			for _, v := range node.Value.Values() {
				if !yield(k, v) {
					return
				}
			}
			node = s.after(k)
		}
	}
}

func (s *SortedMulti[K, V]) after(k K) *redblacktree.Node[K, *linkedhashset.Set[V]] {
	node, ok := s.tree.Ceiling(k)
	if !ok {
		return nil
	}
	if s.cmp(node.Key, k) == 0 {
		return successor(node)
	}
	return node
}

func (s *SortedMulti[K, V]) before(k K) *redblacktree.Node[K, *linkedhashset.Set[V]] {
	node, ok := s.tree.Floor(k)
	if !ok {
		return nil
	}
	if s.cmp(node.Key, k) == 0 {
		return predecessor(node)
	}
	return node
}
