// Package clock provides the monotonic millisecond time source used to pace
// effects.
package clock

import (
	"math"
	"time"
)

// Clock returns a monotonic millisecond counter that wraps at 2^32.
type Clock interface {
	Millis() uint32
}

// System counts milliseconds since it was created.
type System struct {
	t0 time.Time
}

func NewSystem() *System { return &System{t0: time.Now()} }

func (s *System) Millis() uint32 {
	return uint32(time.Since(s.t0).Milliseconds())
}

// Manual is a hand-driven clock for tests and simulations.
type Manual struct {
	Now uint32
}

func (m *Manual) Millis() uint32 { return m.Now }

// Advance moves the clock forward by ms, wrapping like the hardware counter.
func (m *Manual) Advance(ms uint32) { m.Now += ms }

// Elapsed returns the milliseconds from from to to. When from is ahead of to
// the counter has rolled over and the difference is taken across the wrap.
func Elapsed(from, to uint32) uint32 {
	if from > to {
		return math.MaxUint32 - from + to + 1
	}
	return to - from
}
