// Package preview turns the logical cube into something a person can look at:
// a coloured LED strip image, 1-bit layer tiles, or styled terminal text.
package preview

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/coreman2200/voxelcube/internal/effects"
	"github.com/coreman2200/voxelcube/internal/layout"
)

// Source is the read side of a cube.
type Source interface {
	Size() uint8
	GetVoxel(x, y, z uint8) uint8
}

// Colour returns the colour of a lit voxel at the given brightness.
func Colour(hue float64, brightness uint8) colorful.Color {
	v := float64(brightness) / float64(effects.MaxBrightness)
	if v > 1 {
		v = 1
	}
	return colorful.Hsv(hue, 1, v)
}

// Strip renders the cube as a Count×1 image in strip order, the shape LED
// strip drawers expect.
func Strip(src Source, l layout.Layout, hue float64, brightness uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, l.Count(), 1))
	r, g, b := Colour(hue, brightness).RGB255()
	lit := color.NRGBA{R: r, G: g, B: b, A: 255}
	off := color.NRGBA{A: 255}

	n := int(src.Size())
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				c := off
				if src.GetVoxel(uint8(x), uint8(y), uint8(z)) == 1 {
					c = lit
				}
				img.SetNRGBA(l.Index(x, y, z), 0, c)
			}
		}
	}
	return img
}

// Tiles lays the layers out left to right, bottom layer first, one blank
// column between them. Y grows upward within a tile.
func Tiles(src Source) *image1bit.VerticalLSB {
	n := int(src.Size())
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, n*(n+1)-1, n))
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if src.GetVoxel(uint8(x), uint8(y), uint8(z)) == 1 {
					img.SetBit(z*(n+1)+x, n-1-y, image1bit.On)
				}
			}
		}
	}
	return img
}
