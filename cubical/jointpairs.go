package cubical

import (
	"math"
	"sort"

	"github.com/grailbio/topology/cubical/unionfind"
)

// jointPairs computes dimension-0 persistence via the "link-find" dual
// algorithm: scan every 1-cell in decreasing birth order, and use a
// birth/time_max-aware union-find to decide, for each edge, whether it joins
// two still-separate components (emitting a pair, unless the merge is a
// zero-length interval) or closes a loop within an already-joined component
// (in which case it becomes a candidate dimension-1 column).
//
// It returns the finite and essential dimension-0 pairs, plus the
// dimension-1 column set (sorted ascending in the primary order, ready for
// the reduction engine).
func jointPairs(g *Grid, dim0 *ColumnSet) (pairs Pairs, dim1 *ColumnSet) {
	dset := unionfind.New(int(dim0.MaxOfIndex), func(i int32) float64 {
		return g.Birth(Index(i), 0)
	})

	edges := dimension1Edges(g)
	sort.Sort(cellsByReverseOrder(edges))

	// Seed min_birth from every dimension-0 column's own birth, not only from
	// the components an edge happens to touch. A component with no sub-
	// threshold incident edge at all (e.g. a single-pixel grid, or two
	// components that never reconnect) would otherwise never update
	// min_birth past the initial threshold, reporting an essential class
	// born at threshold instead of at its true minimum.
	minBirth := g.threshold
	for _, c := range dim0.Columns {
		if c.Birth < minBirth {
			minBirth = c.Birth
		}
	}
	dim1 = &ColumnSet{Dim: 1, MaxOfIndex: dim0.MaxOfIndex}

	for _, e := range edges {
		u0, v0 := edgeEndpoints(e.Index)
		u := dset.Find(int32(u0))
		v := dset.Find(int32(v0))
		minBirth = math.Min(minBirth, math.Min(dset.Birthtime(u), dset.Birthtime(v)))

		if u != v {
			birth := math.Max(dset.Birthtime(u), dset.Birthtime(v))
			death := math.Max(dset.TimeMax(u), dset.TimeMax(v))
			emit(&pairs, 0, birth, death, g.threshold)
			dset.Link(u, v)
		} else {
			// u == v: this edge would close a loop in the sub-level set formed so
			// far, so it's a candidate dimension-1 column instead of a dimension-0
			// merge.
			dim1.Columns = append(dim1.Columns, e)
		}
	}

	emit(&pairs, -1, minBirth, g.threshold, g.threshold)
	sort.Sort(cellsByPrimaryOrder(dim1.Columns))
	return pairs, dim1
}

// dimension1Edges returns every legal 1-cell of g whose birth is below
// threshold.
func dimension1Edges(g *Grid) []Cell {
	var edges []Cell
	for x := 1; x <= g.AX(); x++ {
		for y := 1; y <= g.AY(); y++ {
			for m := 0; m < 2; m++ {
				idx := packIndex(x, y, m)
				birth := g.Birth(idx, 1)
				if birth < g.threshold {
					edges = append(edges, Cell{Birth: birth, Index: idx, Dim: 1})
				}
			}
		}
	}
	return edges
}

// edgeEndpoints decodes the two 0-cell indexes bounding the 1-cell idx.
func edgeEndpoints(idx Index) (u, v Index) {
	x, y, m := idx.unpack()
	u = packIndex(x, y, 0)
	if m == 0 {
		v = packIndex(x+1, y, 0)
	} else {
		v = packIndex(x, y+1, 0)
	}
	return
}
