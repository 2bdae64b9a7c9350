package effects

import "github.com/coreman2200/voxelcube/internal/geometry"

const rainInterval = 1000

// rain drops random voxels from the top layer and lets them fall. When asked
// to finish it stops spawning and ends once the cube has drained.
type rain struct {
	drained uint8
}

func (r *rain) Name() string { return "rain" }
func (r *rain) Reset()       { *r = rain{} }

func (r *rain) Step(f *Frame) Result {
	if f.Elapsed < rainInterval {
		return Wait
	}
	n := f.Cube.Size()
	f.Cube.Shift(geometry.AxisZ, -1)

	if !f.Finish {
		for drops := f.Rand.Intn(4); drops > 0; drops-- {
			x := uint8(f.Rand.Intn(int(n)))
			y := uint8(f.Rand.Intn(int(n)))
			f.Cube.SetVoxel(x, y, n-1)
		}
	} else {
		r.drained++
	}

	if r.drained == n {
		return Done
	}
	return Stepped
}
