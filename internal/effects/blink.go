package effects

const (
	blinkStart = 750
	blinkOn    = 100
)

// blink flashes the whole cube. The dark gap shrinks from blinkStart towards
// zero, then grows back again; a finish request is honoured once the gap has
// grown back to full length.
type blink struct {
	delay   uint16
	lit     bool
	slowing bool
}

func (b *blink) Name() string { return "blink" }

func (b *blink) Reset() {
	*b = blink{delay: blinkStart}
}

func (b *blink) Step(f *Frame) Result {
	if b.lit {
		if f.Elapsed < blinkOn {
			return Wait
		}
		f.Cube.Fill(0x00)
		b.delay = decay(b.delay)
		b.lit = false
		return Stepped
	}

	if f.Elapsed < b.gap() {
		return Wait
	}
	if b.delay == 0 {
		b.delay = blinkStart
		if !b.slowing {
			b.slowing = true
		} else {
			if f.Finish {
				return Done
			}
			b.slowing = false
		}
	}
	b.lit = true
	f.Cube.Fill(0xff)
	return Stepped
}

// gap is the dark time before the next flash.
func (b *blink) gap() uint32 {
	if b.slowing {
		return blinkStart + 1 - uint32(b.delay)
	}
	return uint32(b.delay)
}

// decay shortens d along the blink curve and bottoms out at zero.
func decay(d uint16) uint16 {
	if d/10 == 0 {
		return 0
	}
	step := 15 + 1000/(d/10)
	if step >= d {
		return 0
	}
	return d - step
}
