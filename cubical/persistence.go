package cubical

// Method selects which algorithm computes dimension-0 persistence. Both are
// expected to agree on the resulting pair multiset; Method lets a caller
// pick based on which is faster for a given image, or cross-check one
// against the other.
type Method int

const (
	// LinkFind computes dimension-0 pairs with the union-find-based joint-pairs
	// algorithm, then reduces the resulting dimension-1 column set.
	LinkFind Method = 0
	// ComputePairs computes both dimensions by matrix reduction: dimension 0
	// first, then dimension 1 over the reassembled column set.
	ComputePairs Method = 1
)

// Persistence2D computes the persistent homology of the lower-star
// filtration of image's cubical complex, up to threshold, using method.
// image[x][y] must be finite for all x, y; threshold must be finite; and
// image's dimensions must satisfy 1 <= len(image) < MaxX and
// 1 <= len(image[0]) < MaxY. Violating any of these is a precondition error,
// and Persistence2D returns before doing any work.
func Persistence2D(image Matrix, threshold float64, method Method) (Pairs, error) {
	g, err := NewGrid(image, threshold)
	if err != nil {
		return nil, err
	}

	dim0 := NewColumnSet(g)
	bound := g.indexBound()

	switch method {
	case LinkFind:
		pairs0, dim1 := jointPairs(g, dim0)
		r := newReducer(g, bound, len(dim1.Columns))
		pairs1 := r.reduce(dim1)
		return append(pairs0, pairs1...), nil

	default: // ComputePairs
		r0 := newReducer(g, bound, len(dim0.Columns))
		pairs0 := r0.reduce(dim0)
		dim1 := assembleColumns(g, r0.pivots)
		r1 := newReducer(g, bound, len(dim1.Columns))
		pairs1 := r1.reduce(dim1)
		return append(pairs0, pairs1...), nil
	}
}
