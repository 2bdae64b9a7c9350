package geometry

// Cube4 is the 4x4x4 layout. Each layer is two bytes and every byte carries two
// rows: row y lives in byte y/2, shifted by 4 when y is odd.
type Cube4 struct{}

func (Cube4) Size() uint8     { return 4 }
func (Cube4) RowBytes() uint8 { return 2 }

func (Cube4) Voxel(x, y uint8) (uint8, byte) {
	return y / 2, 1 << (x + (y%2)*4)
}

func (Cube4) Span(y, x1, x2 uint8) (uint8, byte) {
	return y / 2, Byteline(x1, x2) << ((y % 2) * 4)
}

// MirrorRow reverses both nibbles in place. A plain bit reversal would also
// swap the two rows sharing the byte.
func (Cube4) MirrorRow(b byte) byte {
	r := Bitswap(b)
	return r<<4 | r>>4
}
