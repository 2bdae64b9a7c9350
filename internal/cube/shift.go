package cube

import "github.com/coreman2200/voxelcube/internal/geometry"

// Shift scrolls the cube content one voxel along axis. direction -1 moves
// content toward index 0, +1 toward index N-1. The vacated edge plane is
// cleared. Work is done in place, so layers are visited starting at the
// destination edge to read each source before it is overwritten.
func (c *Cube[L]) Shift(axis geometry.Axis, direction int8) {
	if direction != -1 && direction != 1 {
		return
	}
	if axis != geometry.AxisX && axis != geometry.AxisY && axis != geometry.AxisZ {
		return
	}
	n := c.layout.Size()

	for i := uint8(0); i < n-1; i++ {
		var cur, prev uint8
		if direction == -1 {
			cur, prev = i, i+1
		} else {
			cur, prev = n-1-i, n-2-i
		}

		for j := uint8(0); j < n; j++ {
			for k := uint8(0); k < n; k++ {
				switch axis {
				case geometry.AxisZ:
					c.AlterVoxel(j, k, cur, c.GetVoxel(j, k, prev))
				case geometry.AxisY:
					c.AlterVoxel(j, cur, k, c.GetVoxel(j, prev, k))
				case geometry.AxisX:
					c.AlterVoxel(cur, k, j, c.GetVoxel(prev, k, j))
				}
			}
		}
	}

	edge := n - 1
	if direction == 1 {
		edge = 0
	}
	c.ClrPlane(axis, edge)
}
