package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/voxelcube/internal/geometry"
)

func shiftLayer[L geometry.Layout](t *testing.T) {
	c := New[L]()
	n := c.Size()
	c.SetPlaneZ(1)

	c.Shift(geometry.AxisZ, -1)
	eachVoxel(n, func(x, y, z uint8) {
		assert.Equal(t, b2u(z == 0), c.GetVoxel(x, y, z), "(%d,%d,%d)", x, y, z)
	})

	c.Fill(0xff)
	for i := uint8(0); i < n; i++ {
		c.Shift(geometry.AxisZ, -1)
	}
	assert.Equal(t, 0, c.Count())
}

func TestShiftZDown(t *testing.T) {
	t.Run("cube8", shiftLayer[geometry.Cube8])
	t.Run("cube4", shiftLayer[geometry.Cube4])
}

func TestShiftClearsVacatedPlane(t *testing.T) {
	c := New[geometry.Cube4]()
	c.Fill(0xff)
	c.Shift(geometry.AxisY, 1)
	eachVoxel(4, func(x, y, z uint8) {
		assert.Equal(t, b2u(y != 0), c.GetVoxel(x, y, z))
	})

	c.Fill(0xff)
	c.Shift(geometry.AxisX, -1)
	eachVoxel(4, func(x, y, z uint8) {
		assert.Equal(t, b2u(x != 3), c.GetVoxel(x, y, z))
	})
}

func TestShiftMovesSingleVoxel(t *testing.T) {
	c := New[geometry.Cube8]()
	c.SetVoxel(0, 2, 3)
	c.Shift(geometry.AxisX, 1)
	assert.Equal(t, uint8(1), c.GetVoxel(1, 2, 3))
	assert.Equal(t, 1, c.Count())

	c.Shift(geometry.AxisY, -1)
	assert.Equal(t, uint8(1), c.GetVoxel(1, 1, 3))

	c.Shift(geometry.AxisZ, 1)
	assert.Equal(t, uint8(1), c.GetVoxel(1, 1, 4))
	assert.Equal(t, 1, c.Count())

	c.SetVoxel(1, 1, 7)
	c.Shift(geometry.AxisZ, 1)
	assert.Equal(t, uint8(1), c.GetVoxel(1, 1, 5))
	assert.Equal(t, 1, c.Count(), "content at the far edge drops off")
}

func TestShiftInvalidArgs(t *testing.T) {
	c := New[geometry.Cube8]()
	c.SetVoxel(4, 4, 4)
	c.Shift(geometry.AxisZ, 0)
	c.Shift(geometry.AxisZ, 2)
	c.Shift(geometry.Axis(0), -1)
	assert.Equal(t, uint8(1), c.GetVoxel(4, 4, 4))
	assert.Equal(t, 1, c.Count())
}
