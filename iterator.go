package bidimap

import "iter"

// An Iterator is an explicit cursor over a Map's pairs in the forward index's
// native order. It starts positioned before the first pair; each call to Next
// advances it. Left, Right and Entry panic unless the most recent Next
// returned true; Delete off a valid position is a no-op.
type Iterator[L, R comparable] struct {
	m     *Map[L, R]
	next  func() (L, R, bool)
	stop  func()
	cur   Entry[L, R]
	valid bool
}

// Iterator returns a cursor over m. Call Close when abandoning the cursor
// before exhausting it.
func (m *Map[L, R]) Iterator() *Iterator[L, R] {
	next, stop := iter.Pull2(m.All())
	return &Iterator[L, R]{m: m, next: next, stop: stop}
}

// Next advances to the following pair, reporting false once the cursor is
// exhausted.
func (it *Iterator[L, R]) Next() bool {
	l, r, ok := it.next()
	if !ok {
		it.valid = false
		it.stop()
		return false
	}
	it.cur = Entry[L, R]{Left: l, Right: r}
	it.valid = true
	return true
}

// Left returns the left key at the current position.
func (it *Iterator[L, R]) Left() L {
	it.check()
	return it.cur.Left
}

// Right returns the right key at the current position.
func (it *Iterator[L, R]) Right() R {
	it.check()
	return it.cur.Right
}

// Entry returns the pair at the current position.
func (it *Iterator[L, R]) Entry() Entry[L, R] {
	it.check()
	return it.cur
}

// Delete removes the pair at the current position from both orientations.
// The position becomes invalid; the following call to Next resumes with the
// next pair. Without a valid position, before the first Next, after
// exhaustion or after a prior Delete, it does nothing.
func (it *Iterator[L, R]) Delete() {
	if !it.valid {
		return
	}
	it.m.DeletePair(it.cur.Left, it.cur.Right)
	it.valid = false
}

// Close releases the cursor. It is safe to call multiple times and after
// exhaustion.
func (it *Iterator[L, R]) Close() {
	it.stop()
}

func (it *Iterator[L, R]) check() {
	if !it.valid {
		panic("bidimap: iterator used without a preceding successful Next")
	}
}
