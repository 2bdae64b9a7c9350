package preview

import (
	"fmt"
	"image"
	"io"

	"periph.io/x/conn/v3/display"

	"github.com/coreman2200/voxelcube/internal/layout"
)

// Sink receives finished frames.
type Sink interface {
	Show(src Source, brightness uint8) error
}

// DrawerSink pushes frames to a periph display, typically an LED strip or its
// console stand-in.
type DrawerSink struct {
	d      display.Drawer
	layout layout.Layout
	hue    float64
}

func NewDrawerSink(d display.Drawer, l layout.Layout, hue float64) *DrawerSink {
	return &DrawerSink{d: d, layout: l, hue: hue}
}

func (s *DrawerSink) Show(src Source, brightness uint8) error {
	img := Strip(src, s.layout, s.hue, brightness)
	if err := s.d.Draw(s.d.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("draw to %s: %w", s.d, err)
	}
	return nil
}

// Close halts the drawer.
func (s *DrawerSink) Close() error {
	return s.d.Halt()
}

// TextSink writes Render output for every frame.
type TextSink struct {
	w   io.Writer
	hue float64
}

func NewTextSink(w io.Writer, hue float64) *TextSink {
	return &TextSink{w: w, hue: hue}
}

func (s *TextSink) Show(src Source, brightness uint8) error {
	_, err := fmt.Fprintln(s.w, Render(src, s.hue, brightness))
	return err
}
