// Package effects runs the cube animations. A Sequencer owns exactly one active
// effect and advances it by at most one step per Process call; it never blocks.
package effects

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/coreman2200/voxelcube/internal/clock"
	"github.com/coreman2200/voxelcube/internal/cube"
)

// Sequencer drives the registered effects against a cube. It is not safe for
// concurrent use and Process must not be re-entered.
type Sequencer struct {
	cube  cube.Canvas
	clock clock.Clock
	rand  Rand
	log   zerolog.Logger

	effects    []Effect
	current    Index
	previous   Index
	brightness uint8

	last  uint32 // when the active effect last stepped
	fresh bool   // active effect has not stepped yet
}

// New returns an idle sequencer over the registered effects.
func New(c cube.Canvas, clk clock.Clock, rng Rand, log zerolog.Logger) *Sequencer {
	s := &Sequencer{
		cube:       c,
		clock:      clk,
		rand:       rng,
		log:        log,
		effects:    Registered(),
		current:    None,
		previous:   None,
		brightness: MaxBrightness,
	}
	s.resetEffects()
	return s
}

// Start makes effect i active, replacing any running effect. The cube is
// cleared and brightness restored either way; an unknown index is otherwise
// ignored.
func (s *Sequencer) Start(i Index) {
	if i < Count {
		s.current = i
		s.effects[i].Reset()
		s.fresh = true
		s.log.Debug().Str("effect", s.effects[i].Name()).Uint8("index", uint8(i)).Msg("effect started")
	} else {
		s.log.Debug().Uint8("index", uint8(i)).Msg("unknown effect ignored")
	}
	s.cube.Fill(0x00)
	s.brightness = MaxBrightness
}

// Current returns the active effect or None.
func (s *Sequencer) Current() Index { return s.current }

// Previous returns the effect that finished last or None.
func (s *Sequencer) Previous() Index { return s.previous }

// Finished reports whether no effect is running.
func (s *Sequencer) Finished() bool { return s.current == None }

// ForceFinish stops the active effect immediately and clears the cube.
func (s *Sequencer) ForceFinish() {
	s.cube.Fill(0x00)
	s.resetEffects()
	if s.current != None {
		s.log.Debug().Str("effect", s.effects[s.current].Name()).Msg("effect finished")
	}
	s.previous = s.current
	s.current = None
	s.fresh = false
}

// Process advances the active effect by at most one step. When shouldFinish is
// set the effect stops at its next finish point.
func (s *Sequencer) Process(shouldFinish bool) {
	if s.current == None {
		return
	}
	now := s.clock.Millis()
	elapsed := clock.Elapsed(s.last, now)
	if s.fresh {
		elapsed = math.MaxUint32
	}

	f := Frame{
		Cube:    s.cube,
		Rand:    s.rand,
		Elapsed: elapsed,
		Finish:  shouldFinish,
	}
	switch s.effects[s.current].Step(&f) {
	case Stepped:
		s.last = now
		s.fresh = false
	case Done:
		s.ForceFinish()
	}
}

// Brightness is the global intensity, 0..MaxBrightness.
func (s *Sequencer) Brightness() uint8 { return s.brightness }

// SetBrightness sets the global intensity, clamped to MaxBrightness.
func (s *Sequencer) SetBrightness(v uint8) {
	if v > MaxBrightness {
		v = MaxBrightness
	}
	s.brightness = v
}

// Name returns the name of effect i, or "" when i is not registered.
func (s *Sequencer) Name(i Index) string {
	if i >= Count {
		return ""
	}
	return s.effects[i].Name()
}

// Names lists the effect names in index order.
func (s *Sequencer) Names() []string {
	out := make([]string, 0, len(s.effects))
	for _, e := range s.effects {
		out = append(out, e.Name())
	}
	return out
}

// Lookup finds an effect by name.
func (s *Sequencer) Lookup(name string) (Index, bool) {
	for i, e := range s.effects {
		if e.Name() == name {
			return Index(i), true
		}
	}
	return None, false
}

func (s *Sequencer) resetEffects() {
	for _, e := range s.effects {
		e.Reset()
	}
}
