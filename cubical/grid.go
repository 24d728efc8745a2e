package cubical

import (
	"fmt"
	"math"

	"github.com/grailbio/base/errors"
)

// Matrix is a caller-supplied grayscale image, rows major (Matrix[x][y] is
// the pixel at column x, row y). ax = len(Matrix), ay = len(Matrix[0]).
type Matrix [][]float64

// Grid owns the padded pixel buffer for one persistence computation and
// answers birth queries for cells of any dimension. It is built once per
// computation and is immutable afterwards, so Birth is safe to call from
// multiple goroutines concurrently (it touches no mutable state).
type Grid struct {
	ax, ay    int
	threshold float64
	// dense is the (ax+2) x (ay+2) padded grid, dense[x][y]. Border cells (x
	// == 0, x == ax+1, y == 0, y == ay+1) always hold threshold, so a cell
	// born at exactly threshold never enters the filtration.
	dense [][]float64
}

// NewGrid pads image with a one-cell threshold border on every side and
// returns the resulting Grid. It returns an error if the image exceeds the
// index encoding's bounds or contains a non-finite pixel.
func NewGrid(image Matrix, threshold float64) (*Grid, error) {
	ax := len(image)
	if ax == 0 {
		return nil, errors.E("cubical: image has zero rows")
	}
	ay := len(image[0])
	if ay == 0 {
		return nil, errors.E("cubical: image has zero columns")
	}
	if ax >= MaxX {
		return nil, errors.E(fmt.Sprintf("cubical: image width %d must be < %d", ax, MaxX))
	}
	if ay >= MaxY {
		return nil, errors.E(fmt.Sprintf("cubical: image height %d must be < %d", ay, MaxY))
	}
	if !isFinite(threshold) {
		return nil, errors.E("cubical: threshold must be finite")
	}

	dense := make([][]float64, ax+2)
	for x := range dense {
		dense[x] = make([]float64, ay+2)
		for y := range dense[x] {
			dense[x][y] = threshold
		}
	}
	for x := 0; x < ax; x++ {
		row := image[x]
		if len(row) != ay {
			return nil, errors.E("cubical: image is not rectangular")
		}
		for y := 0; y < ay; y++ {
			v := row[y]
			if !isFinite(v) {
				return nil, errors.E(fmt.Sprintf("cubical: pixel (%d, %d) is not finite", x, y))
			}
			dense[x+1][y+1] = v
		}
	}
	return &Grid{ax: ax, ay: ay, threshold: threshold, dense: dense}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AX returns the (unpadded) image width.
func (g *Grid) AX() int { return g.ax }

// AY returns the (unpadded) image height.
func (g *Grid) AY() int { return g.ay }

// Threshold returns the filtration's ceiling value.
func (g *Grid) Threshold() float64 { return g.threshold }

// indexBound upper-bounds any packed Index any cell of g (of any dimension)
// can take. It sizes the reduction engine's pivot bitset.
//
// This must not be computed by calling packIndex with padded coordinates:
// packIndex masks each field to its bit width, so for an image near the
// documented MaxX/MaxY bounds, ax+2/ay+2 wrap around and silently produce an
// undersized bound. Plain arithmetic, the same way NewColumnSet's
// MaxOfIndex already avoids packIndex for an analogous bound, never wraps.
func (g *Grid) indexBound() Index {
	return Index(MaxX*MaxY + MaxX*(g.ay+2) + (g.ax + 2))
}

// at returns the padded grid's value at (x, y), or Threshold if out of
// bounds (which happens for some coboundary/enumerator computations at the
// padded edge, where the formula intentionally reads one cell past ax/ay and
// relies on the padding sentinel).
func (g *Grid) at(x, y int) float64 {
	if x < 0 || x >= len(g.dense) || y < 0 || y >= len(g.dense[0]) {
		return g.threshold
	}
	return g.dense[x][y]
}

// Birth returns the birth value of the cell packed as idx in dimension dim:
//
//   dim 0: grid[x][y]
//   dim 1: max(grid[x][y], grid[x+1][y])   (m=0, horizontal edge)
//          max(grid[x][y], grid[x][y+1])   (m=1, vertical edge)
//   dim 2: max of the pixel square's four corners
//
// dim must be 0, 1, or 2. An out-of-range type tag in idx falls through to
// Threshold, matching the original's behavior. Birth is pure and safe for
// concurrent use.
func (g *Grid) Birth(idx Index, dim int) float64 {
	x, y, m := idx.unpack()
	switch dim {
	case 0:
		return g.at(x, y)
	case 1:
		switch m {
		case 0:
			return math.Max(g.at(x, y), g.at(x+1, y))
		case 1:
			return math.Max(g.at(x, y), g.at(x, y+1))
		default:
			return g.threshold
		}
	case 2:
		return math.Max(math.Max(g.at(x, y), g.at(x+1, y)), math.Max(g.at(x, y+1), g.at(x+1, y+1)))
	default:
		return g.threshold
	}
}
