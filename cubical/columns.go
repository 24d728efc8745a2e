package cubical

import "sort"

// ColumnSet is the ordered list of candidate columns ("CTR" in the original
// algorithm) the reduction engine walks for one dimension, plus the bound
// used to size the dimension-0/1 union-find.
type ColumnSet struct {
	Columns []Cell
	Dim     int
	// MaxOfIndex upper-bounds any legal 0-cell Index value (and any
	// horizontal 1-cell's, which packs with m = 0) under this package's
	// codec; it sizes unionfind.DSU. Vertical 1-cells carry the type bit and
	// lie above it.
	MaxOfIndex int32
}

// NewColumnSet builds the dimension-0 column set: every non-threshold 0-cell
// of g, sorted ascending in the primary order.
func NewColumnSet(g *Grid) *ColumnSet {
	cs := &ColumnSet{
		Dim:        0,
		MaxOfIndex: int32(MaxX) * int32(g.AY()+2),
	}
	for y := g.AY(); y > 0; y-- {
		for x := g.AX(); x > 0; x-- {
			idx := packIndex(x, y, 0)
			birth := g.Birth(idx, 0)
			if birth != g.threshold {
				cs.Columns = append(cs.Columns, Cell{Birth: birth, Index: idx, Dim: 0})
			}
		}
	}
	sort.Sort(cellsByPrimaryOrder(cs.Columns))
	return cs
}
