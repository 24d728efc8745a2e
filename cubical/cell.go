package cubical

// Cell is a filtration cell recorded by birth, packed index, and dimension —
// the "birthday index" (BI) triple of the original algorithm. Cells compare
// by birth first and Index second, which is the only tie-break the
// filtration ever needs: two distinct cells of the same dimension never
// share both birth and Index.
type Cell struct {
	Birth float64
	Index Index
	Dim   int8
}

// noPivot is the sentinel returned by reduction when a column's pivot is
// exhausted (equivalent to the original's BirthdayIndex(0, -1, 0)).
var noPivot = Cell{Birth: 0, Index: -1, Dim: 0}

func (c Cell) isNil() bool {
	return c.Index == -1
}

// less implements the filtration's primary order: ascending birth, ties
// broken by ascending Index. This is the order columns-to-reduce and the
// dimension-1 column set are sorted in.
func less(a, b Cell) bool {
	if a.Birth != b.Birth {
		return a.Birth < b.Birth
	}
	return a.Index < b.Index
}

// greater is the strict reverse of less, used to sort the joint-pairs edge
// scan in decreasing birth order.
func greater(a, b Cell) bool {
	return less(b, a)
}

// cellsByPrimaryOrder sorts ascending by (Birth, Index).
type cellsByPrimaryOrder []Cell

func (s cellsByPrimaryOrder) Len() int           { return len(s) }
func (s cellsByPrimaryOrder) Less(i, j int) bool { return less(s[i], s[j]) }
func (s cellsByPrimaryOrder) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// cellsByReverseOrder sorts descending by (Birth, Index).
type cellsByReverseOrder []Cell

func (s cellsByReverseOrder) Len() int           { return len(s) }
func (s cellsByReverseOrder) Less(i, j int) bool { return greater(s[i], s[j]) }
func (s cellsByReverseOrder) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// cellHeap is a max-priority-queue keyed by the primary order: the top is
// always the cell with the largest birth, ties broken by largest Index. This
// is the "working coboundary" queue the reduction engine pushes cofaces into
// and pops pivots from (container/heap.Interface, inverted so Pop returns the
// maximum rather than the minimum element).
type cellHeap []Cell

func (h cellHeap) Len() int            { return len(h) }
func (h cellHeap) Less(i, j int) bool  { return greater(h[i], h[j]) }
func (h cellHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cellHeap) Push(x interface{}) { *h = append(*h, x.(Cell)) }
func (h *cellHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
