// Package layout maps cube coordinates onto the single strip order used by
// previews.
package layout

type Serpentine struct {
	XFlipEveryRow   bool
	YFlipEveryPanel bool
}

// Layout describes an n×n×n cube wired layer by layer, bottom layer first.
type Layout struct {
	N     int
	Order Serpentine
}

// New returns a layout for an n-cube, serpentine in both directions when
// serpentine is set.
func New(n uint8, serpentine bool) Layout {
	return Layout{N: int(n), Order: Serpentine{XFlipEveryRow: serpentine, YFlipEveryPanel: serpentine}}
}

// Index maps x,y,z -> strip index (0..Count-1)
func (l Layout) Index(x, y, z int) int {
	xx, yy := x, y
	if l.Order.YFlipEveryPanel && z%2 == 1 {
		yy = l.N - 1 - y
	}
	if l.Order.XFlipEveryRow && yy%2 == 1 {
		xx = l.N - 1 - x
	}
	return z*l.N*l.N + yy*l.N + xx
}

func (l Layout) Count() int {
	return l.N * l.N * l.N
}
