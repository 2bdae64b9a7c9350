package geometry

// Cube8 is the 8x8x8 layout: cube[z][y] bit x.
type Cube8 struct{}

func (Cube8) Size() uint8     { return 8 }
func (Cube8) RowBytes() uint8 { return 8 }

func (Cube8) Voxel(x, y uint8) (uint8, byte) {
	return y, 1 << x
}

func (Cube8) Span(y, x1, x2 uint8) (uint8, byte) {
	return y, Byteline(x1, x2)
}

func (Cube8) MirrorRow(b byte) byte {
	return Bitswap(b)
}
