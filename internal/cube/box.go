package cube

import "github.com/coreman2200/voxelcube/internal/geometry"

// Box draws an axis aligned box between two corners.
//
//	BoxFilled sets every voxel inside the box.
//	BoxWalls  draws the six faces; voxels inside keep their state.
//	BoxFrame  draws only the twelve edges.
//
// Walls and frame write whole rows for the X runs, so other voxels sharing
// those row bytes are overwritten.
func (c *Cube[L]) Box(style uint8, x1, y1, z1, x2, y2, z2 uint8) {
	if !c.InRange(x1, y1, z1) || !c.InRange(x2, y2, z2) {
		return
	}
	x1, x2 = geometry.Order(x1, x2)
	y1, y2 = geometry.Order(y1, y2)
	z1, z2 = geometry.Order(z1, z2)

	switch style {
	case BoxFilled:
		for z := z1; z <= z2; z++ {
			for y := y1; y <= y2; y++ {
				row, mask := c.layout.Span(y, x1, x2)
				c.layers[z][row] |= mask
			}
		}
	case BoxWalls:
		for z := z1; z <= z2; z++ {
			for y := y1; y <= y2; y++ {
				if y == y1 || y == y2 || z == z1 || z == z2 {
					row, mask := c.layout.Span(y, x1, x2)
					c.layers[z][row] = mask
				} else {
					row, m1 := c.layout.Voxel(x1, y)
					_, m2 := c.layout.Voxel(x2, y)
					c.layers[z][row] |= m1 | m2
				}
			}
		}
	case BoxFrame:
		// X edges
		for _, z := range [2]uint8{z1, z2} {
			for _, y := range [2]uint8{y1, y2} {
				row, mask := c.layout.Span(y, x1, x2)
				c.layers[z][row] = mask
			}
		}
		// Y edges
		for y := y1; y <= y2; y++ {
			c.SetVoxel(x1, y, z1)
			c.SetVoxel(x1, y, z2)
			c.SetVoxel(x2, y, z1)
			c.SetVoxel(x2, y, z2)
		}
		// Z edges
		for z := z1; z <= z2; z++ {
			c.SetVoxel(x1, y1, z)
			c.SetVoxel(x1, y2, z)
			c.SetVoxel(x2, y1, z)
			c.SetVoxel(x2, y2, z)
		}
	}
}
