package preview

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/coreman2200/voxelcube/internal/cube"
	"github.com/coreman2200/voxelcube/internal/geometry"
	"github.com/coreman2200/voxelcube/internal/layout"
)

// fakeDrawer is a display.Drawer that keeps the last frame.
type fakeDrawer struct {
	n      int
	last   *image.NRGBA
	halted bool
	err    error
}

func (f *fakeDrawer) String() string          { return "fake" }
func (f *fakeDrawer) Halt() error             { f.halted = true; return nil }
func (f *fakeDrawer) ColorModel() color.Model { return color.NRGBAModel }
func (f *fakeDrawer) Bounds() image.Rectangle { return image.Rect(0, 0, f.n, 1) }

func (f *fakeDrawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if f.err != nil {
		return f.err
	}
	f.last = image.NewNRGBA(f.Bounds())
	draw.Draw(f.last, r, src, sp, draw.Src)
	return nil
}

func TestColour(t *testing.T) {
	r, g, b := Colour(0, 10).RGB255()
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r, g, b = Colour(120, 0).RGB255()
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
}

func TestStripOrder(t *testing.T) {
	c := cube.New[geometry.Cube4]()
	c.SetVoxel(0, 1, 0)
	c.SetVoxel(3, 3, 3)
	l := layout.New(4, true)

	img := Strip(c, l, 240, 10)
	require.Equal(t, image.Rect(0, 0, 64, 1), img.Bounds())

	lit := 0
	for i := 0; i < 64; i++ {
		if img.NRGBAAt(i, 0).B > 0 {
			lit++
		}
	}
	assert.Equal(t, 2, lit)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, img.NRGBAAt(l.Index(0, 1, 0), 0))
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, img.NRGBAAt(l.Index(3, 3, 3), 0))
	assert.Equal(t, color.NRGBA{A: 255}, img.NRGBAAt(l.Index(1, 1, 0), 0))
}

func TestTiles(t *testing.T) {
	c := cube.New[geometry.Cube8]()
	c.SetVoxel(2, 0, 1)
	c.SetVoxel(7, 7, 7)

	img := Tiles(c)
	assert.Equal(t, image.Rect(0, 0, 71, 8), img.Bounds())
	assert.Equal(t, image1bit.On, img.BitAt(9+2, 7))
	assert.Equal(t, image1bit.On, img.BitAt(63+7, 0))
	assert.Equal(t, image1bit.Off, img.BitAt(8, 7), "gap column stays dark")

	on := 0
	for x := 0; x < 71; x++ {
		for y := 0; y < 8; y++ {
			if img.BitAt(x, y) == image1bit.On {
				on++
			}
		}
	}
	assert.Equal(t, 2, on)
}

func TestRender(t *testing.T) {
	c := cube.New[geometry.Cube4]()
	c.SetPlaneZ(2)
	out := Render(c, 30, 10)
	for _, label := range []string{"z=0", "z=1", "z=2", "z=3"} {
		assert.Contains(t, out, label)
	}
	assert.Equal(t, 16, strings.Count(out, litGlyph))
	assert.Equal(t, 48, strings.Count(out, offGlyph))
}

func TestDrawerSink(t *testing.T) {
	c := cube.New[geometry.Cube4]()
	c.SetVoxel(1, 0, 0)
	d := &fakeDrawer{n: 64}
	s := NewDrawerSink(d, layout.New(4, false), 0)

	require.NoError(t, s.Show(c, 10))
	require.NotNil(t, d.last)
	assert.Equal(t, uint8(255), d.last.NRGBAAt(1, 0).R)
	assert.Equal(t, uint8(0), d.last.NRGBAAt(0, 0).R)

	d.err = errors.New("bus gone")
	err := s.Show(c, 10)
	assert.ErrorContains(t, err, "fake")
	assert.ErrorIs(t, err, d.err)

	require.NoError(t, s.Close())
	assert.True(t, d.halted)
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	c := cube.New[geometry.Cube4]()
	c.SetVoxel(0, 0, 0)
	require.NoError(t, NewTextSink(&buf, 0).Show(c, 5))
	assert.Equal(t, 1, strings.Count(buf.String(), litGlyph))
}
