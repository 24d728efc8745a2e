package cubical

import (
	"container/heap"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestPivotTableSetHasGet(t *testing.T) {
	p := newPivotTable(1<<14, 4)
	idx := packIndex(5, 5, 0)

	expect.False(t, p.has(idx))
	_, ok := p.get(idx)
	expect.False(t, ok)

	p.set(idx, 3)
	expect.True(t, p.has(idx))
	col, ok := p.get(idx)
	expect.True(t, ok)
	expect.EQ(t, col, int32(3))

	// An unrelated index must not be reported as claimed.
	expect.False(t, p.has(packIndex(6, 6, 0)))
}

func TestPopPivotCancelsMatchingIndexPairs(t *testing.T) {
	var wc cellHeap
	heap.Push(&wc, Cell{Birth: 2, Index: 10})
	heap.Push(&wc, Cell{Birth: 2, Index: 10})
	heap.Push(&wc, Cell{Birth: 1, Index: 20})

	got := popPivot(&wc)
	expect.EQ(t, got.Index, Index(20))
	expect.EQ(t, wc.Len(), 0)
}

func TestPopPivotEmptiesOnFullCancellation(t *testing.T) {
	var wc cellHeap
	heap.Push(&wc, Cell{Birth: 1, Index: 10})
	heap.Push(&wc, Cell{Birth: 1, Index: 10})

	got := popPivot(&wc)
	expect.True(t, got.isNil())
	expect.EQ(t, wc.Len(), 0)
}

func TestGetPivotLeavesSurvivorOnHeap(t *testing.T) {
	var wc cellHeap
	heap.Push(&wc, Cell{Birth: 1, Index: 10})
	heap.Push(&wc, Cell{Birth: 2, Index: 20})

	got := getPivot(&wc)
	expect.EQ(t, got.Index, Index(20))
	expect.EQ(t, wc.Len(), 2)
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	var wc cellHeap
	heap.Push(&wc, Cell{Birth: 1, Index: 1})
	snap := snapshot(wc)
	heap.Push(&wc, Cell{Birth: 2, Index: 2})

	expect.EQ(t, len(snap), 1)
	expect.EQ(t, wc.Len(), 2)
}

func TestAssembleColumnsExcludesClaimedPivots(t *testing.T) {
	g, err := NewGrid(Matrix{{1, 2}, {3, 4}}, 9)
	expect.NoError(t, err)

	pivots := newPivotTable(g.indexBound(), 4)
	claimed := packIndex(1, 1, 0)
	pivots.set(claimed, 0)

	cs := assembleColumns(g, pivots)
	for _, c := range cs.Columns {
		expect.True(t, c.Index != claimed)
	}
	// The other three of the four sub-threshold edges counted in
	// TestDimension1EdgesExcludesThresholdEdges must all still be present.
	expect.EQ(t, len(cs.Columns), 3)
}

func TestReduceColumnEmitsFiniteDim0Pair(t *testing.T) {
	g, err := NewGrid(Matrix{{1, 2}, {3, 4}}, 9)
	expect.NoError(t, err)

	columns := NewColumnSet(g)
	r := newReducer(g, g.indexBound(), 8)

	pairs := r.reduceColumn(columns, 0, int8(columns.Dim))
	expect.EQ(t, len(pairs), 1)
	expect.EQ(t, pairs[0].Dim, int8(0))
	expect.EQ(t, pairs[0].Birth, 1.0)
	expect.EQ(t, pairs[0].Death, 3.0)
}
