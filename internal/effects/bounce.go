package effects

import "github.com/coreman2200/voxelcube/internal/geometry"

const bounceInterval = 400

// bounce moves a single plane back and forth. After two round trips it moves
// on to the next axis (Z, Y, X, Z...). It can finish whenever the plane
// touches either side.
type bounce struct {
	axis geometry.Axis
	pos  uint8
	legs uint8 // completed passes on this axis
}

func (b *bounce) Name() string { return "bounce" }

func (b *bounce) Reset() {
	*b = bounce{axis: geometry.AxisZ}
}

func (b *bounce) Step(f *Frame) Result {
	if f.Elapsed < bounceInterval {
		return Wait
	}
	last := f.Cube.Size() - 1

	f.Cube.Fill(0x00)
	f.Cube.SetPlane(b.axis, b.pos)

	if (b.pos == 0 || b.pos == last) && f.Finish {
		return Done
	}

	if b.pos == 0 && b.legs == 4 {
		b.axis = b.axis.Next()
		b.legs = 0
		return Stepped
	}

	if b.legs%2 == 0 {
		b.pos++
		if b.pos == last {
			b.legs++
		}
	} else {
		b.pos--
		if b.pos == 0 {
			b.legs++
		}
	}
	return Stepped
}
