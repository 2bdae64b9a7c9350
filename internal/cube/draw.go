package cube

import "github.com/coreman2200/voxelcube/internal/geometry"

// SetVoxel turns on a single voxel.
func (c *Cube[L]) SetVoxel(x, y, z uint8) {
	if c.InRange(x, y, z) {
		row, mask := c.layout.Voxel(x, y)
		c.layers[z][row] |= mask
	}
}

// ClrVoxel turns off a single voxel.
func (c *Cube[L]) ClrVoxel(x, y, z uint8) {
	if c.InRange(x, y, z) {
		row, mask := c.layout.Voxel(x, y)
		c.layers[z][row] &^= mask
	}
}

// AlterVoxel clears the voxel when state is zero and sets it otherwise.
func (c *Cube[L]) AlterVoxel(x, y, z uint8, state uint8) {
	if state == 0 {
		c.ClrVoxel(x, y, z)
	} else {
		c.SetVoxel(x, y, z)
	}
}

func (c *Cube[L]) ToggleVoxel(x, y, z uint8) {
	if c.InRange(x, y, z) {
		row, mask := c.layout.Voxel(x, y)
		c.layers[z][row] ^= mask
	}
}

// GetVoxel returns 1 for a lit voxel, 0 otherwise (including out of range).
func (c *Cube[L]) GetVoxel(x, y, z uint8) uint8 {
	if !c.InRange(x, y, z) {
		return 0
	}
	row, mask := c.layout.Voxel(x, y)
	if c.layers[z][row]&mask != 0 {
		return 1
	}
	return 0
}

// Fill stores pattern into every row byte. 0x00 clears the cube, 0xff lights it.
// Other patterns are raw byte stores and depend on the packing.
func (c *Cube[L]) Fill(pattern byte) {
	n, rb := c.layout.Size(), c.layout.RowBytes()
	for z := uint8(0); z < n; z++ {
		for r := uint8(0); r < rb; r++ {
			c.layers[z][r] = pattern
		}
	}
}

// SetPlaneX sets the Y/Z plane at x.
func (c *Cube[L]) SetPlaneX(x uint8) {
	if !c.InRange(x, 0, 0) {
		return
	}
	n := c.layout.Size()
	for z := uint8(0); z < n; z++ {
		for y := uint8(0); y < n; y++ {
			row, mask := c.layout.Voxel(x, y)
			c.layers[z][row] |= mask
		}
	}
}

func (c *Cube[L]) ClrPlaneX(x uint8) {
	if !c.InRange(x, 0, 0) {
		return
	}
	n := c.layout.Size()
	for z := uint8(0); z < n; z++ {
		for y := uint8(0); y < n; y++ {
			row, mask := c.layout.Voxel(x, y)
			c.layers[z][row] &^= mask
		}
	}
}

// SetPlaneY sets the X/Z plane at y.
func (c *Cube[L]) SetPlaneY(y uint8) {
	if !c.InRange(0, y, 0) {
		return
	}
	n := c.layout.Size()
	row, mask := c.layout.Span(y, 0, n-1)
	for z := uint8(0); z < n; z++ {
		c.layers[z][row] |= mask
	}
}

func (c *Cube[L]) ClrPlaneY(y uint8) {
	if !c.InRange(0, y, 0) {
		return
	}
	n := c.layout.Size()
	row, mask := c.layout.Span(y, 0, n-1)
	for z := uint8(0); z < n; z++ {
		c.layers[z][row] &^= mask
	}
}

// SetPlaneZ sets the X/Y plane at z.
func (c *Cube[L]) SetPlaneZ(z uint8) {
	if !c.InRange(0, 0, z) {
		return
	}
	for r := uint8(0); r < c.layout.RowBytes(); r++ {
		c.layers[z][r] = 0xff
	}
}

func (c *Cube[L]) ClrPlaneZ(z uint8) {
	if !c.InRange(0, 0, z) {
		return
	}
	for r := uint8(0); r < c.layout.RowBytes(); r++ {
		c.layers[z][r] = 0x00
	}
}

// SetPlane sets the plane at pos perpendicular to axis.
func (c *Cube[L]) SetPlane(axis geometry.Axis, pos uint8) {
	switch axis {
	case geometry.AxisX:
		c.SetPlaneX(pos)
	case geometry.AxisY:
		c.SetPlaneY(pos)
	case geometry.AxisZ:
		c.SetPlaneZ(pos)
	}
}

// ClrPlane clears the plane at pos perpendicular to axis.
func (c *Cube[L]) ClrPlane(axis geometry.Axis, pos uint8) {
	switch axis {
	case geometry.AxisX:
		c.ClrPlaneX(pos)
	case geometry.AxisY:
		c.ClrPlaneY(pos)
	case geometry.AxisZ:
		c.ClrPlaneZ(pos)
	}
}

// MirrorX flips the whole cube along the X axis.
func (c *Cube[L]) MirrorX() {
	n, rb := c.layout.Size(), c.layout.RowBytes()
	for z := uint8(0); z < n; z++ {
		for r := uint8(0); r < rb; r++ {
			c.layers[z][r] = c.layout.MirrorRow(c.layers[z][r])
		}
	}
}
