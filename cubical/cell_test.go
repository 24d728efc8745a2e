package cubical

import (
	"container/heap"
	"sort"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestCellLess(t *testing.T) {
	a := Cell{Birth: 1.0, Index: 5}
	b := Cell{Birth: 2.0, Index: 1}
	c := Cell{Birth: 1.0, Index: 9}
	expect.True(t, less(a, b))
	expect.False(t, less(b, a))
	expect.True(t, less(a, c))
	expect.True(t, greater(b, a))
}

func TestCellIsNil(t *testing.T) {
	expect.True(t, noPivot.isNil())
	expect.False(t, Cell{Index: 0}.isNil())
}

func TestCellsByPrimaryOrder(t *testing.T) {
	cells := []Cell{
		{Birth: 3, Index: 0},
		{Birth: 1, Index: 9},
		{Birth: 1, Index: 2},
		{Birth: 2, Index: 4},
	}
	sort.Sort(cellsByPrimaryOrder(cells))
	want := []float64{1, 1, 2, 3}
	for i, c := range cells {
		expect.EQ(t, c.Birth, want[i])
	}
	expect.EQ(t, cells[0].Index, Index(2))
	expect.EQ(t, cells[1].Index, Index(9))
}

func TestCellHeapIsMaxHeap(t *testing.T) {
	h := &cellHeap{}
	for _, c := range []Cell{
		{Birth: 1, Index: 0},
		{Birth: 5, Index: 1},
		{Birth: 3, Index: 2},
		{Birth: 5, Index: 0},
	} {
		heap.Push(h, c)
	}
	var popped []Cell
	for h.Len() > 0 {
		popped = append(popped, heap.Pop(h).(Cell))
	}
	// Largest birth first; among birth==5, largest Index first.
	expect.EQ(t, popped[0].Birth, 5.0)
	expect.EQ(t, popped[0].Index, Index(1))
	expect.EQ(t, popped[1].Birth, 5.0)
	expect.EQ(t, popped[1].Index, Index(0))
	expect.EQ(t, popped[2].Birth, 3.0)
	expect.EQ(t, popped[3].Birth, 1.0)
}
