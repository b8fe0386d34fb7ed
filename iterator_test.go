package bidimap_test

import (
	"testing"

	bidimap "github.com/Timmifixedit/BidirectionalMap"
	"github.com/Timmifixedit/BidirectionalMap/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestIterator(t *testing.T) {
	m := bidimap.Of(
		bidimap.Entry[string, int]{Left: "Item1", Right: 123},
		bidimap.Entry[string, int]{Left: "Item2", Right: 456},
		bidimap.Entry[string, int]{Left: "Item3", Right: 789},
	)
	expected := map[string]int{"Item1": 123, "Item2": 456, "Item3": 789}

	it := m.Iterator()
	for it.Next() {
		want, ok := expected[it.Left()]
		assert.True(t, ok)
		assert.Equal(t, want, it.Right())
		assert.Equal(t, bidimap.Entry[string, int]{Left: it.Left(), Right: it.Right()}, it.Entry())
		delete(expected, it.Left())
	}
	assert.Empty(t, expected)
}

func TestIterator_Empty(t *testing.T) {
	m := bidimap.New[string, int]()
	it := m.Iterator()
	assert.False(t, it.Next())
}

func TestIterator_Delete(t *testing.T) {
	m := bidimap.NewSorted[string, int]()
	m.Put("Item1", 123)
	m.Put("Item2", 456)
	m.Put("Item3", 789)

	var visited []string
	it := m.Iterator()
	for it.Next() {
		visited = append(visited, it.Left())
		if it.Left() == "Item2" {
			it.Delete()
		}
	}
	assert.Equal(t, []string{"Item1", "Item2", "Item3"}, visited)
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Contains("Item2"))
	assert.False(t, m.Inverse().Contains(456))
	testutils.AssertMirrored(t, m)
}

func TestIterator_DerefPanics(t *testing.T) {
	m := bidimap.Of(bidimap.Entry[string, int]{Left: "Test", Right: 123})

	fresh := m.Iterator()
	assert.Panics(t, func() { fresh.Left() }, "deref before Next")
	fresh.Close()

	it := m.Iterator()
	assert.True(t, it.Next())
	it.Delete()
	assert.Panics(t, func() { it.Entry() }, "deref after Delete")
	it.Close()

	exhausted := bidimap.New[string, int]().Iterator()
	assert.False(t, exhausted.Next())
	assert.Panics(t, func() { exhausted.Right() }, "deref after exhaustion")
}

func TestIterator_DeleteOffPositionIsNoOp(t *testing.T) {
	m := bidimap.Of(
		bidimap.Entry[string, int]{Left: "Test", Right: 123},
		bidimap.Entry[string, int]{Left: "NewItem", Right: 456},
	)

	fresh := m.Iterator()
	assert.NotPanics(t, func() { fresh.Delete() }, "delete before the first Next")
	assert.Equal(t, 2, m.Len())
	fresh.Close()

	it := m.Iterator()
	for it.Next() {
		it.Delete()
		// repeated erase at the same position removes nothing further
		assert.NotPanics(t, func() { it.Delete() })
	}
	assert.Equal(t, 0, m.Len())

	// erase at the end position is a no-op as well
	assert.NotPanics(t, func() { it.Delete() })
	assert.False(t, it.Next())
	testutils.AssertMirrored(t, m)
}

func TestIterator_Close(t *testing.T) {
	m := bidimap.Of(
		bidimap.Entry[string, int]{Left: "Item1", Right: 123},
		bidimap.Entry[string, int]{Left: "Item2", Right: 456},
	)
	it := m.Iterator()
	assert.True(t, it.Next())
	it.Close()
	it.Close() // idempotent
	assert.False(t, it.Next())
}
