package cubical

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestPackUnpackIndex(t *testing.T) {
	tests := []struct {
		x, y, m int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2047, 1023, 1},
		{5, 0, 1},
		{0, 5, 0},
	}
	for _, test := range tests {
		idx := packIndex(test.x, test.y, test.m)
		gotX, gotY, gotM := idx.unpack()
		expect.EQ(t, gotX, test.x)
		expect.EQ(t, gotY, test.y)
		expect.EQ(t, gotM, test.m)
	}
}

func TestMaxBounds(t *testing.T) {
	expect.EQ(t, MaxX, 2048)
	expect.EQ(t, MaxY, 1024)
}
