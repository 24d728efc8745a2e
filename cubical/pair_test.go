package cubical

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestEmitDropsZeroLengthInterval(t *testing.T) {
	var pairs Pairs
	emit(&pairs, 0, 5, 5, 9)
	expect.EQ(t, len(pairs), 0)
}

func TestEmitRecodesSurvivorsAsEssential(t *testing.T) {
	var pairs Pairs
	emit(&pairs, 1, 2, 9, 9)
	expect.EQ(t, len(pairs), 1)
	expect.EQ(t, pairs[0].Dim, int8(-1))
	expect.EQ(t, pairs[0].Birth, 2.0)
	expect.EQ(t, pairs[0].Death, 9.0)
}

func TestEmitKeepsFiniteInterval(t *testing.T) {
	var pairs Pairs
	emit(&pairs, 0, 1, 3, 9)
	expect.EQ(t, len(pairs), 1)
	expect.EQ(t, pairs[0].Dim, int8(0))
	expect.EQ(t, pairs[0].Birth, 1.0)
	expect.EQ(t, pairs[0].Death, 3.0)
}

func TestPairsToRows(t *testing.T) {
	pairs := Pairs{{Dim: -1, Birth: 0, Death: 9}, {Dim: 1, Birth: 2, Death: 5}}
	rows := pairs.ToRows()
	expect.EQ(t, len(rows), 2)
	expect.EQ(t, rows[0], [3]float64{-1, 0, 9})
	expect.EQ(t, rows[1], [3]float64{1, 2, 5})
}
