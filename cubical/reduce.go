package cubical

import (
	"container/heap"
	"sort"

	"github.com/grailbio/base/bitset"
	"github.com/grailbio/base/log"
)

// pivotTable tracks which cell indexes have been claimed as a column's
// pivot, and by which column. The authoritative store is columnOf, a
// map[Index]int32; seen is a bitset front end (grounded on circular.Bitmap's
// wordPops/exact-store pairing) that lets the hot apparent-pair check below
// skip the map probe entirely for the overwhelming majority of cofaces that
// are not pivots.
type pivotTable struct {
	columnOf map[Index]int32
	seen     []uintptr
}

func newPivotTable(indexBound Index, sizeHint int) *pivotTable {
	return &pivotTable{
		columnOf: make(map[Index]int32, sizeHint),
		seen:     make([]uintptr, (int(indexBound)+bitset.BitsPerWord)/bitset.BitsPerWord),
	}
}

func (p *pivotTable) has(idx Index) bool {
	if !bitset.Test(p.seen, int(idx)) {
		return false
	}
	_, ok := p.columnOf[idx]
	return ok
}

func (p *pivotTable) get(idx Index) (int32, bool) {
	j, ok := p.columnOf[idx]
	return j, ok
}

// set registers idx as column's pivot. The bit is set by hand (rather than
// through a bitset setter) because, as in circular.Bitmap, that's a single
// word read-mask-or with no function call in the way.
func (p *pivotTable) set(idx Index, column int32) {
	p.columnOf[idx] = column
	wordIdx := int(idx) / bitset.BitsPerWord
	p.seen[wordIdx] |= uintptr(1) << (uint(idx) % uint(bitset.BitsPerWord))
}

// reducer holds the state of one matrix-reduction pass: the pivot table
// built up as columns are reduced, and the recorded working coboundaries
// saved for columns that get revisited as donors. A reducer is used for
// exactly one dimension of one computation.
type reducer struct {
	grid   *Grid
	pivots *pivotTable
	// recordedWC[j] is a snapshot of column j's working coboundary, saved
	// when column j claims a pivot through the full reduction (a column that
	// claims an apparent pair records nothing). It is copied (never mutated in
	// place) on reuse, matching the original's pass-by-value priority_queue
	// semantics: recorded_wc[j] survives being "poured" into a later column's
	// working coboundary.
	recordedWC map[int32][]Cell
}

func newReducer(grid *Grid, indexBound Index, sizeHint int) *reducer {
	return &reducer{
		grid:       grid,
		pivots:     newPivotTable(indexBound, sizeHint),
		recordedWC: make(map[int32][]Cell, sizeHint),
	}
}

// reduce runs matrix reduction over columns, emitting one pair per column
// (subject to the drop/essential-recode rules in pair.go's emit), and
// returns them in column order.
func (r *reducer) reduce(columns *ColumnSet) Pairs {
	var pairs Pairs
	dim := int8(columns.Dim)
	if log.At(log.Debug) {
		log.Debug.Printf("reducing dim %d: %d columns", dim, len(columns.Columns))
	}
	for i := range columns.Columns {
		pairs = append(pairs, r.reduceColumn(columns, int32(i), dim)...)
	}
	return pairs
}

// reduceColumn reduces columns.Columns[i], returning 0 or 1 pairs (0 if the
// column's class is suppressed by emit's zero-length rule, which is always
// the case for an apparent pair found on the column's own cofaces, since
// the apparent-pair check requires the coface's birth to equal the
// column's).
func (r *reducer) reduceColumn(columns *ColumnSet, i int32, dim int8) Pairs {
	birth := columns.Columns[i].Birth
	threshold := r.grid.threshold

	j := i
	var wc cellHeap
	mightBeApparentPair := true

	for {
		simplex := columns.Columns[j]
		enum := NewCoboundaryEnumerator(r.grid, simplex)

		var cofaceEntries []Cell
		var apparentPivot Cell
		foundApparentPair := false
		for {
			coface, ok := enum.Next()
			if !ok {
				break
			}
			cofaceEntries = append(cofaceEntries, coface)
			if mightBeApparentPair && simplex.Birth == coface.Birth {
				if !r.pivots.has(coface.Index) {
					apparentPivot = coface
					foundApparentPair = true
					break
				}
				mightBeApparentPair = false
			}
		}

		if foundApparentPair {
			r.pivots.set(apparentPivot.Index, i)
			var out Pairs
			emit(&out, dim, birth, apparentPivot.Birth, threshold)
			return out
		}

		if donor, ok := r.recordedWC[j]; ok {
			for _, e := range donor {
				heap.Push(&wc, e)
			}
		} else {
			for _, e := range cofaceEntries {
				heap.Push(&wc, e)
			}
		}

		pivot := getPivot(&wc)
		if pivot.isNil() {
			var out Pairs
			emit(&out, -1, birth, threshold, threshold)
			return out
		}

		if jp, ok := r.pivots.get(pivot.Index); ok {
			j = jp
			continue
		}

		r.recordedWC[i] = snapshot(wc)
		r.pivots.set(pivot.Index, i)
		var out Pairs
		emit(&out, dim, birth, pivot.Birth, threshold)
		return out
	}
}

// popPivot pops the heap's top entry, then cancels it mod 2 against any
// further top entries that share its Index (two cofaces of the same index
// in a coboundary over GF(2) annihilate each other). It returns the
// surviving top entry, or noPivot if the column empties out.
func popPivot(wc *cellHeap) Cell {
	if wc.Len() == 0 {
		return noPivot
	}
	pivot := heap.Pop(wc).(Cell)
	for wc.Len() > 0 && (*wc)[0].Index == pivot.Index {
		heap.Pop(wc)
		if wc.Len() == 0 {
			return noPivot
		}
		pivot = heap.Pop(wc).(Cell)
	}
	return pivot
}

// getPivot is popPivot, but leaves the surviving entry on the heap so later
// callers (including a subsequent reduceColumn iteration that keeps adding
// to the same wc) still see it.
func getPivot(wc *cellHeap) Cell {
	pivot := popPivot(wc)
	if !pivot.isNil() {
		heap.Push(wc, pivot)
	}
	return pivot
}

func snapshot(wc cellHeap) []Cell {
	out := make([]Cell, len(wc))
	copy(out, wc)
	return out
}

// assembleColumns builds the dimension-1 column set after a dimension-0
// reduction pass: every 1-cell not already claimed as a pivot by that pass,
// sorted ascending in the primary order.
func assembleColumns(g *Grid, pivots *pivotTable) *ColumnSet {
	cs := &ColumnSet{Dim: 1, MaxOfIndex: int32(MaxX) * int32(g.AY()+2)}
	for y := 1; y <= g.AY(); y++ {
		for x := 1; x <= g.AX(); x++ {
			for m := 0; m < 2; m++ {
				idx := packIndex(x, y, m)
				if pivots.has(idx) {
					continue
				}
				birth := g.Birth(idx, 1)
				if birth != g.threshold {
					cs.Columns = append(cs.Columns, Cell{Birth: birth, Index: idx, Dim: 1})
				}
			}
		}
	}
	sort.Sort(cellsByPrimaryOrder(cs.Columns))
	return cs
}
