// Package cube owns the packed voxel buffer and the drawing primitives that
// operate on it. Every mutating primitive silently ignores out-of-range input.
package cube

import (
	"github.com/cespare/xxhash/v2"

	"github.com/coreman2200/voxelcube/internal/geometry"
)

// Box styles.
const (
	BoxFilled uint8 = 1
	BoxWalls  uint8 = 2
	BoxFrame  uint8 = 3
)

// Canvas is the drawing surface the effects work against.
type Canvas interface {
	Size() uint8
	SetVoxel(x, y, z uint8)
	ClrVoxel(x, y, z uint8)
	ToggleVoxel(x, y, z uint8)
	GetVoxel(x, y, z uint8) uint8
	Fill(pattern byte)
	SetPlane(axis geometry.Axis, pos uint8)
	ClrPlane(axis geometry.Axis, pos uint8)
	Shift(axis geometry.Axis, direction int8)
}

// Cube is a single cube framebuffer packed according to L.
// It is not safe for concurrent use; one control flow owns it.
type Cube[L geometry.Layout] struct {
	layout L
	layers [geometry.MaxSize][geometry.MaxRowBytes]byte
}

// New returns an empty cube.
func New[L geometry.Layout]() *Cube[L] {
	return &Cube[L]{}
}

func (c *Cube[L]) Size() uint8 { return c.layout.Size() }

// InRange reports whether (x, y, z) addresses a voxel of this cube.
func (c *Cube[L]) InRange(x, y, z uint8) bool {
	return geometry.InRange(c.layout.Size(), x, y, z)
}

// Layer returns the row bytes of layer z, or nil when z is out of range.
// The slice aliases the buffer.
func (c *Cube[L]) Layer(z uint8) []byte {
	if z >= c.layout.Size() {
		return nil
	}
	return c.layers[z][:c.layout.RowBytes()]
}

// Bytes returns a copy of the packed buffer, layer after layer.
func (c *Cube[L]) Bytes() []byte {
	n, rb := c.layout.Size(), c.layout.RowBytes()
	out := make([]byte, 0, int(n)*int(rb))
	for z := uint8(0); z < n; z++ {
		out = append(out, c.layers[z][:rb]...)
	}
	return out
}

// Count returns the number of lit voxels.
func (c *Cube[L]) Count() int {
	n := 0
	size := c.layout.Size()
	for z := uint8(0); z < size; z++ {
		for y := uint8(0); y < size; y++ {
			for x := uint8(0); x < size; x++ {
				n += int(c.GetVoxel(x, y, z))
			}
		}
	}
	return n
}

// Sum64 hashes the buffer content; equal frames give equal sums.
func (c *Cube[L]) Sum64() uint64 {
	return xxhash.Sum64(c.Bytes())
}
