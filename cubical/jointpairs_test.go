package cubical

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestDimension1EdgesExcludesThresholdEdges(t *testing.T) {
	g, err := NewGrid(Matrix{{1, 2}, {3, 4}}, 9)
	expect.NoError(t, err)

	edges := dimension1Edges(g)
	// Only the four interior edges qualify; every edge touching the padding
	// border sits exactly at threshold and is excluded.
	expect.EQ(t, len(edges), 4)
	for _, e := range edges {
		expect.True(t, e.Birth < g.Threshold())
	}
}

func TestEdgeEndpointsHorizontalAndVertical(t *testing.T) {
	u, v := edgeEndpoints(packIndex(2, 3, 0))
	expect.EQ(t, u, packIndex(2, 3, 0))
	expect.EQ(t, v, packIndex(3, 3, 0))

	u, v = edgeEndpoints(packIndex(2, 3, 1))
	expect.EQ(t, u, packIndex(2, 3, 0))
	expect.EQ(t, v, packIndex(2, 4, 0))
}

func TestJointPairsSinglePixelYieldsOnlyEssential(t *testing.T) {
	g, err := NewGrid(Matrix{{1.0}}, 9.0)
	expect.NoError(t, err)

	dim0 := NewColumnSet(g)
	pairs, dim1 := jointPairs(g, dim0)

	expect.EQ(t, len(pairs), 1)
	expect.EQ(t, pairs[0].Dim, int8(-1))
	expect.EQ(t, pairs[0].Birth, 1.0)
	expect.EQ(t, pairs[0].Death, 9.0)
	expect.EQ(t, len(dim1.Columns), 0)
}

func TestJointPairsIsolatedComponentsYieldGlobalMinimum(t *testing.T) {
	// Both diagonal pixels' incident edges sit exactly at threshold, so they
	// never merge; min_birth must still be seeded from the grid's true
	// minimum (0), not stall at threshold for want of a qualifying edge.
	g, err := NewGrid(Matrix{{0, 9}, {9, 0}}, 9.0)
	expect.NoError(t, err)

	dim0 := NewColumnSet(g)
	pairs, dim1 := jointPairs(g, dim0)

	expect.EQ(t, len(pairs), 1)
	expect.EQ(t, pairs[0].Dim, int8(-1))
	expect.EQ(t, pairs[0].Birth, 0.0)
	expect.EQ(t, pairs[0].Death, 9.0)
	expect.EQ(t, len(dim1.Columns), 0)
}

func TestJointPairsMergeProducesFinitePair(t *testing.T) {
	// image {{1,2},{3,4}}, edges scanned by decreasing birth: the birth-4
	// edge between pixels 2 and 4 joins singleton 2 to the {3,4} component
	// (birth 3, time_max 4), giving the genuine (non-suppressed) pair (3, 4);
	// the birth-3 edge then gives (2, 4), and the birth-2 edge closes a loop.
	g, err := NewGrid(Matrix{{1, 2}, {3, 4}}, 9.0)
	expect.NoError(t, err)

	dim0 := NewColumnSet(g)
	pairs, _ := jointPairs(g, dim0)

	var finite, essential int
	for _, p := range pairs {
		if p.Dim == -1 {
			essential++
			expect.EQ(t, p.Birth, 1.0)
			expect.EQ(t, p.Death, 9.0)
		} else {
			finite++
		}
	}
	expect.EQ(t, essential, 1)
	expect.True(t, finite >= 1)
}
