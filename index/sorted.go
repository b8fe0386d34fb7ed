package index

import (
	"cmp"
	"iter"

	"github.com/emirpasic/gods/v2/trees/redblacktree"
	"github.com/emirpasic/gods/v2/utils"
)

// Sorted is a unique ordered index backed by a red-black tree. Lookup, insert
// and delete are O(log n); iteration yields keys in comparator order.
//
// Traversal re-seeks by key on every step, so removing the current entry
// while iterating is permitted at O(log n) per step.
type Sorted[K, V comparable] struct {
	cmp  utils.Comparator[K]
	tree *redblacktree.Tree[K, V]
}

// NewSorted returns an empty ordered index using the natural key order.
func NewSorted[K cmp.Ordered, V comparable]() *Sorted[K, V] {
	return NewSortedWith[K, V](cmp.Compare[K])
}

// NewSortedWith returns an empty ordered index using the given comparator.
// Anything the comparator panics with surfaces unmodified to the caller of
// the operation that invoked it.
func NewSortedWith[K, V comparable](comparator utils.Comparator[K]) *Sorted[K, V] {
	return &Sorted[K, V]{
		cmp:  comparator,
		tree: redblacktree.NewWith[K, V](comparator),
	}
}

func (s *Sorted[K, V]) Len() int {
	return s.tree.Size()
}

func (s *Sorted[K, V]) Unique() bool {
	return true
}

func (s *Sorted[K, V]) Get(k K) (V, bool) {
	return s.tree.Get(k)
}

func (s *Sorted[K, V]) GetEntry(k K) (K, V, bool) {
	node, ok := s.tree.Ceiling(k)
	if !ok || s.cmp(node.Key, k) != 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	return node.Key, node.Value, true
}

func (s *Sorted[K, V]) Has(k K, v V) bool {
	got, ok := s.tree.Get(k)
	return ok && got == v
}

func (s *Sorted[K, V]) Put(k K, v V) {
	s.tree.Put(k, v)
}

func (s *Sorted[K, V]) Delete(k K) int {
	if _, ok := s.tree.Get(k); !ok {
		return 0
	}
	s.tree.Remove(k)
	return 1
}

func (s *Sorted[K, V]) DeletePair(k K, v V) bool {
	if got, ok := s.tree.Get(k); !ok || got != v {
		return false
	}
	s.tree.Remove(k)
	return true
}

func (s *Sorted[K, V]) Clear() {
	s.tree.Clear()
}

func (s *Sorted[K, V]) All() iter.Seq2[K, V] {
	return s.ascend(s.tree.Left())
}

func (s *Sorted[K, V]) AllOf(k K) iter.Seq[V] {
	return func(yield func(V) bool) {
		if v, ok := s.tree.Get(k); ok {
			yield(v)
		}
	}
}

func (s *Sorted[K, V]) CloneEmpty() Index[K, V] {
	return NewSortedWith[K, V](s.cmp)
}

func (s *Sorted[K, V]) From(k K) iter.Seq2[K, V] {
	node, _ := s.tree.Ceiling(k)
	return s.ascend(node)
}

func (s *Sorted[K, V]) Tail(k K) iter.Seq2[K, V] {
	return s.ascend(s.after(k))
}

func (s *Sorted[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		node := s.tree.Right()
		for node != nil {
			k := node.Key
			if !yield(k, node.Value) {
				return
			}
			node = s.before(k)
		}
	}
}

func (s *Sorted[K, V]) Min() (K, V, bool) {
	return nodePair(s.tree.Left())
}

func (s *Sorted[K, V]) Max() (K, V, bool) {
	return nodePair(s.tree.Right())
}

func (s *Sorted[K, V]) ascend(start *redblacktree.Node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		node := start
		for node != nil {
			k := node.Key
			if !yield(k, node.Value) {
				return
			}
			node = s.after(k)
		}
	}
}

// after returns the node with the smallest key strictly greater than k,
// re-seeking from the root so callers may remove entries between steps.
func (s *Sorted[K, V]) after(k K) *redblacktree.Node[K, V] {
	node, ok := s.tree.Ceiling(k)
	if !ok {
		return nil
	}
	if s.cmp(node.Key, k) == 0 {
		return successor(node)
	}
	return node
}

// before mirrors after for descending traversal.
func (s *Sorted[K, V]) before(k K) *redblacktree.Node[K, V] {
	node, ok := s.tree.Floor(k)
	if !ok {
		return nil
	}
	if s.cmp(node.Key, k) == 0 {
		return predecessor(node)
	}
	return node
}

func nodePair[K comparable, V any](n *redblacktree.Node[K, V]) (K, V, bool) {
	if n == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	return n.Key, n.Value, true
}

func successor[K comparable, V any](n *redblacktree.Node[K, V]) *redblacktree.Node[K, V] {
	if n.Right != nil {
		n = n.Right
		for n.Left != nil {
			n = n.Left
		}
		return n
	}
	for n.Parent != nil && n.Parent.Right == n {
		n = n.Parent
	}
	return n.Parent
}

func predecessor[K comparable, V any](n *redblacktree.Node[K, V]) *redblacktree.Node[K, V] {
	if n.Left != nil {
		n = n.Left
		for n.Right != nil {
			n = n.Right
		}
		return n
	}
	for n.Parent != nil && n.Parent.Left == n {
		n = n.Parent
	}
	return n.Parent
}
