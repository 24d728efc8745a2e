package cubical

// Index packs a cell's (x, y, type) coordinates into a single 32-bit integer.
// Bits 0-10 hold x (0..2047), bits 11-20 hold y (0..1023), and bits 21-28
// hold the cell's type tag m:
//
//   0-cell: m is unused (always packed as 0).
//   1-cell: m = 0 for a horizontal edge (x,y)-(x+1,y), m = 1 for a vertical
//            edge (x,y)-(x,y+1).
//   2-cell: m is unused (always packed as 0).
//
// The layout bounds the supported image to width < 2048, height < 1024; an
// implementation that needs larger images must widen Index to 64 bits and
// lift MaxX/MaxY uniformly across this codec, unionfind.DSU sizing, and the
// coboundary formulas in coboundary.go.
type Index int32

const (
	xBits = 11
	yBits = 10

	xMask = (1 << xBits) - 1
	yMask = (1 << yBits) - 1

	yShift = xBits
	mShift = xBits + yBits

	// MaxX is the exclusive upper bound on image width this codec supports.
	MaxX = 1 << xBits
	// MaxY is the exclusive upper bound on image height this codec supports.
	MaxY = 1 << yBits
)

// packIndex encodes (x, y, m) as an Index, matching the original
// CubicalRipser bit layout used by dipha/perseus-compatible hosts.
func packIndex(x, y, m int) Index {
	return Index(x&xMask | (y&yMask)<<yShift | m<<mShift)
}

// unpack decodes an Index into its (x, y, m) coordinates.
func (idx Index) unpack() (x, y, m int) {
	v := int(idx)
	x = v & xMask
	y = (v >> yShift) & yMask
	m = (v >> mShift) & 0xff
	return
}
