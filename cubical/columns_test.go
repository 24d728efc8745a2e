package cubical

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestNewColumnSetExcludesThresholdCells(t *testing.T) {
	g, err := NewGrid(Matrix{{1, 9}, {9, 4}}, 9)
	expect.NoError(t, err)

	cs := NewColumnSet(g)
	expect.EQ(t, cs.Dim, 0)
	// Only (1,1)=1 and (2,2)=4 are below threshold; the other two corners sit
	// exactly at threshold and never enter the filtration.
	expect.EQ(t, len(cs.Columns), 2)
	expect.EQ(t, cs.Columns[0].Birth, 1.0)
	expect.EQ(t, cs.Columns[0].Index, packIndex(1, 1, 0))
	expect.EQ(t, cs.Columns[1].Birth, 4.0)
	expect.EQ(t, cs.Columns[1].Index, packIndex(2, 2, 0))
}

func TestNewColumnSetIsSortedAscending(t *testing.T) {
	g, err := NewGrid(Matrix{{3, 1}, {2, 4}}, 9)
	expect.NoError(t, err)

	cs := NewColumnSet(g)
	for i := 1; i < len(cs.Columns); i++ {
		expect.True(t, !less(cs.Columns[i], cs.Columns[i-1]))
	}
}
