package testutils

import (
	"cmp"
	"slices"
	"testing"

	bidimap "github.com/Timmifixedit/BidirectionalMap"
	"github.com/stretchr/testify/assert"
)

// SortedEntries lists every pair of m ordered by left key, for stable
// comparison against expected contents.
func SortedEntries[L cmp.Ordered, R comparable](m *bidimap.Map[L, R]) []bidimap.Entry[L, R] {
	var out []bidimap.Entry[L, R]
	for l, r := range m.All() {
		out = append(out, bidimap.Entry[L, R]{Left: l, Right: r})
	}
	slices.SortFunc(out, func(a, b bidimap.Entry[L, R]) int {
		return cmp.Compare(a.Left, b.Left)
	})
	return out
}

// AssertMirrored fails the test unless both orientations of m agree
// pair-for-pair and report the same size.
func AssertMirrored[L, R comparable](t *testing.T, m *bidimap.Map[L, R]) {
	t.Helper()
	inv := m.Inverse()
	assert.True(t, inv.Inverse() == m, "inverse back-link broken")
	assert.Equal(t, m.Len(), inv.Len())
	for l, r := range m.All() {
		assert.True(t, containsPair(inv, r, l), "inverse entry missing for (%v, %v)", r, l)
	}
	for r, l := range inv.All() {
		assert.True(t, containsPair(m, l, r), "forward entry missing for (%v, %v)", l, r)
	}
}

func containsPair[L, R comparable](m *bidimap.Map[L, R], l L, r R) bool {
	for got := range m.GetAll(l) {
		if got == r {
			return true
		}
	}
	return false
}
