// Package geometry maps logical voxel coordinates onto the packed cube buffer.
//
// Two packings exist. Cube8 stores one byte per row (bit x of byte y). Cube4 packs
// two rows into one byte: even rows use the low nibble, odd rows the high nibble.
// Callers above this package only ever see (x, y, z).
package geometry

import "math/bits"

const (
	// MaxSize is the largest supported edge length.
	MaxSize = 8
	// MaxRowBytes is the largest number of row bytes in a single layer.
	MaxRowBytes = 8
)

// Axis selects one of the three cube axes.
type Axis uint8

const (
	AxisX Axis = 1
	AxisY Axis = 2
	AxisZ Axis = 3
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "invalid"
}

// Next returns the axis that follows a in the Z -> Y -> X -> Z cycle.
func (a Axis) Next() Axis {
	switch a {
	case AxisZ:
		return AxisY
	case AxisY:
		return AxisX
	default:
		return AxisZ
	}
}

// Layout describes how a layer of N*N voxels is packed into row bytes.
// Implementations are zero-size types so the choice is made at compile time.
type Layout interface {
	// Size is the edge length N.
	Size() uint8
	// RowBytes is the number of bytes that hold one layer.
	RowBytes() uint8
	// Voxel returns the row byte and bit mask addressing (x, y) within a layer.
	Voxel(x, y uint8) (row uint8, mask byte)
	// Span returns the row byte and mask covering x1..x2 (inclusive) on row y.
	Span(y, x1, x2 uint8) (row uint8, mask byte)
	// MirrorRow reverses the x order of every row packed in b.
	MirrorRow(b byte) byte
}

// InRange reports whether all components are below n.
// Components are unsigned so only the upper bound needs checking.
func InRange(n, x, y, z uint8) bool {
	return x < n && y < n && z < n
}

// Byteline returns a byte with bits start..end (inclusive) set.
// Byteline(2, 5) gives 0b00111100. Requires start <= end <= 7.
func Byteline(start, end uint8) byte {
	return byte(0xff<<start) & ^byte(0xff<<(end+1))
}

// Bitswap reverses the bit order of value.
func Bitswap(value byte) byte {
	return bits.Reverse8(value)
}

// Order returns a and b in ascending order.
func Order(a, b uint8) (uint8, uint8) {
	if a > b {
		return b, a
	}
	return a, b
}
