package effects

import "github.com/coreman2200/voxelcube/internal/geometry"

// sticky sweeps a plane across the cube leaving it lit behind, then sweeps
// again clearing it. Each full fill+clear cycle moves to the next axis.
type sticky struct {
	axis     geometry.Axis
	pos      uint8
	clearing bool
}

func (s *sticky) Name() string { return "sticky-bounce" }

func (s *sticky) Reset() {
	*s = sticky{axis: geometry.AxisZ}
}

func (s *sticky) Step(f *Frame) Result {
	if f.Elapsed < bounceInterval {
		return Wait
	}
	n := f.Cube.Size()

	if !s.clearing {
		f.Cube.SetPlane(s.axis, s.pos)
	} else {
		f.Cube.ClrPlane(s.axis, s.pos)
	}

	if s.pos == n-1 && s.clearing {
		if f.Finish {
			return Done
		}
		s.axis = s.axis.Next()
		s.pos = 0
		s.clearing = false
		return Stepped
	}

	s.pos++
	if s.pos == n {
		s.pos = 0
		s.clearing = true
	}
	return Stepped
}
