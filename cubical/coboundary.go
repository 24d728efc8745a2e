package cubical

import "math"

// CoboundaryEnumerator walks the (dim+1)-cofaces of a single cell s, in a
// fixed order: for a 0-cell, (y+, y-, x+, x-); for a 1-cell, the two squares
// sharing the edge, upper/right before lower/left.
// That order matters because the reduction engine's apparent-pair shortcut
// only inspects cofaces as they stream out of Next, in order.
//
// A CoboundaryEnumerator is single-use: construct one per cell via
// NewCoboundaryEnumerator, then call Next until it returns ok == false.
type CoboundaryEnumerator struct {
	grid    *Grid
	simplex Cell
	cx, cy, cm int
	count   int
}

// NewCoboundaryEnumerator returns an enumerator over the cofaces of s within
// grid.
func NewCoboundaryEnumerator(grid *Grid, s Cell) *CoboundaryEnumerator {
	x, y, m := s.Index.unpack()
	return &CoboundaryEnumerator{grid: grid, simplex: s, cx: x, cy: y, cm: m}
}

// Next returns the next coface of the enumerated cell whose birth is not the
// grid's threshold, or ok == false once the cofaces are exhausted. 2-cells
// have no cofaces in a 2-D filtration, so Next always returns false
// immediately for them.
func (e *CoboundaryEnumerator) Next() (coface Cell, ok bool) {
	switch e.simplex.Dim {
	case 0:
		return e.next0()
	case 1:
		return e.next1()
	default:
		return Cell{}, false
	}
}

// next0 tries, in order, the y+, y-, x+, x- directional 1-cell cofaces of a
// 0-cell, resuming from where the previous call left off.
func (e *CoboundaryEnumerator) next0() (Cell, bool) {
	g := e.grid
	bt := e.simplex.Birth
	for i := e.count; i < 4; i++ {
		var idx Index
		var birth float64
		switch i {
		case 0: // y+
			idx = packIndex(e.cx, e.cy, 1)
			birth = math.Max(bt, g.at(e.cx, e.cy+1))
		case 1: // y-
			idx = packIndex(e.cx, e.cy-1, 1)
			birth = math.Max(bt, g.at(e.cx, e.cy-1))
		case 2: // x+
			idx = packIndex(e.cx, e.cy, 0)
			birth = math.Max(bt, g.at(e.cx+1, e.cy))
		case 3: // x-
			idx = packIndex(e.cx-1, e.cy, 0)
			birth = math.Max(bt, g.at(e.cx-1, e.cy))
		}
		if birth != g.threshold {
			e.count = i + 1
			return Cell{Birth: birth, Index: idx, Dim: 1}, true
		}
	}
	return Cell{}, false
}

// next1 tries the two 2-cell cofaces of an edge: for a horizontal edge
// (cm=0), upper square then lower square; for a vertical edge (cm=1), right
// square then left square.
func (e *CoboundaryEnumerator) next1() (Cell, bool) {
	g := e.grid
	bt := e.simplex.Birth
	switch e.cm {
	case 0:
		for ; e.count < 2; e.count++ {
			switch e.count {
			case 0: // upper
				idx := packIndex(e.cx, e.cy, 0)
				birth := math.Max(math.Max(bt, g.at(e.cx, e.cy+1)), g.at(e.cx+1, e.cy+1))
				if birth != g.threshold {
					e.count++
					return Cell{Birth: birth, Index: idx, Dim: 2}, true
				}
			case 1: // lower
				idx := packIndex(e.cx, e.cy-1, 0)
				birth := math.Max(math.Max(bt, g.at(e.cx, e.cy-1)), g.at(e.cx+1, e.cy-1))
				if birth != g.threshold {
					e.count++
					return Cell{Birth: birth, Index: idx, Dim: 2}, true
				}
			}
		}
		return Cell{}, false
	case 1:
		for ; e.count < 2; e.count++ {
			switch e.count {
			case 0: // right
				idx := packIndex(e.cx, e.cy, 0)
				birth := math.Max(math.Max(bt, g.at(e.cx+1, e.cy)), g.at(e.cx+1, e.cy+1))
				if birth != g.threshold {
					e.count++
					return Cell{Birth: birth, Index: idx, Dim: 2}, true
				}
			case 1: // left
				idx := packIndex(e.cx-1, e.cy, 0)
				birth := math.Max(math.Max(bt, g.at(e.cx-1, e.cy)), g.at(e.cx-1, e.cy+1))
				if birth != g.threshold {
					e.count++
					return Cell{Birth: birth, Index: idx, Dim: 2}, true
				}
			}
		}
		return Cell{}, false
	}
	return Cell{}, false
}
