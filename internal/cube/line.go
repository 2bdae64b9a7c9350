package cube

import (
	"math"

	"github.com/coreman2200/voxelcube/internal/geometry"
)

// Line draws a line between two points by stepping along X and interpolating
// Y and Z. Interpolated values round half up. A line with no extent along X
// only sets its start voxel.
func (c *Cube[L]) Line(x1, y1, z1, x2, y2, z2 uint8) {
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
		z1, z2 = z2, z1
	}
	if x1 == x2 {
		c.SetVoxel(x1, y1, z1)
		return
	}

	run := float64(x2 - x1)
	dy, sy := slope(y1, y2, run)
	dz, sz := slope(z1, z2, run)

	for x := x1; ; x++ {
		k := float64(x - x1)
		y := roundHalfUp(float64(y1) + sy*dy*k)
		z := roundHalfUp(float64(z1) + sz*dz*k)
		c.SetVoxel(x, y, z)
		if x == x2 {
			// x2 may be 255; don't let x wrap.
			break
		}
	}
}

// slope returns the per-step magnitude and direction from a to b.
func slope(a, b uint8, run float64) (float64, float64) {
	lo, hi := geometry.Order(a, b)
	d := float64(hi-lo) / run
	if b < a {
		return d, -1
	}
	return d, 1
}

func roundHalfUp(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	r := math.Floor(v + 0.5)
	if r > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(r)
}
