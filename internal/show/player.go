package show

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/coreman2200/voxelcube/internal/clock"
	"github.com/coreman2200/voxelcube/internal/effects"
)

// Engine is the part of the effect sequencer the player drives.
type Engine interface {
	Start(i effects.Index)
	Process(shouldFinish bool)
	Finished() bool
	ForceFinish()
	SetBrightness(v uint8)
	Lookup(name string) (effects.Index, bool)
}

// Player owns the program timeline and drives an Engine from it. It is meant
// to be ticked from a single goroutine.
type Player struct {
	State State

	prog    Program
	indices []effects.Index
	idx     int

	started   uint32 // clock time the current clip began
	pausedAt  uint32
	finishing bool

	engine Engine
	clock  clock.Clock
	log    zerolog.Logger
}

// NewPlayer returns an idle player.
func NewPlayer(e Engine, clk clock.Clock, log zerolog.Logger) *Player {
	return &Player{State: Idle, engine: e, clock: clk, log: log}
}

// Load replaces the program, stopping anything that was playing.
func (p *Player) Load(prog Program) error {
	if len(prog.Clips) == 0 {
		return errors.New("program has no clips")
	}
	indices := make([]effects.Index, len(prog.Clips))
	for i, c := range prog.Clips {
		idx, ok := p.engine.Lookup(c.Effect)
		if !ok {
			return fmt.Errorf("clip %d (%s): unknown effect %q", i, c.Name, c.Effect)
		}
		if c.DurationS < 0 {
			return fmt.Errorf("clip %d (%s): negative duration", i, c.Name)
		}
		if err := c.Brightness.validate(); err != nil {
			return fmt.Errorf("clip %d (%s): brightness: %w", i, c.Name, err)
		}
		indices[i] = idx
	}
	p.Stop()
	p.prog = prog
	p.indices = indices
	return nil
}

// Start begins playback from the current clip.
func (p *Player) Start() {
	if p.State != Idle || len(p.prog.Clips) == 0 {
		return
	}
	p.State = Running
	p.startClip()
}

// Pause freezes clip time. The cube keeps its last frame.
func (p *Player) Pause() {
	if p.State != Running {
		return
	}
	p.State = Paused
	p.pausedAt = p.clock.Millis()
}

// Resume continues after Pause.
func (p *Player) Resume() {
	if p.State != Paused {
		return
	}
	p.started += clock.Elapsed(p.pausedAt, p.clock.Millis())
	p.State = Running
}

// Stop ends the running effect and rewinds to the first clip.
func (p *Player) Stop() {
	if p.State != Idle {
		p.engine.ForceFinish()
	}
	p.State = Idle
	p.idx = 0
	p.finishing = false
}

// Skip asks the current clip to finish now.
func (p *Player) Skip() {
	if p.State == Running {
		p.finishing = true
	}
}

// Clip returns the current clip and its index.
func (p *Player) Clip() (Clip, int) {
	if len(p.prog.Clips) == 0 {
		return Clip{}, -1
	}
	return p.prog.Clips[p.idx], p.idx
}

// Tick advances the running clip by one engine step.
func (p *Player) Tick() {
	if p.State != Running {
		return
	}
	clip := p.prog.Clips[p.idx]
	localT := float64(clock.Elapsed(p.started, p.clock.Millis())) / 1000

	if !clip.Brightness.Empty() {
		p.engine.SetBrightness(brightness(clip.Brightness.Eval(localT)))
	}
	if !p.finishing && localT >= clip.DurationS {
		p.finishing = true
		p.log.Debug().Str("clip", clip.Name).Float64("t", localT).Msg("clip finishing")
	}

	p.engine.Process(p.finishing)
	if p.engine.Finished() {
		p.advance()
	}
}

func (p *Player) nextIndex() int {
	ni := p.idx + 1
	if ni >= len(p.prog.Clips) {
		if p.prog.Loop {
			return 0
		}
		return -1
	}
	return ni
}

func (p *Player) advance() {
	next := p.nextIndex()
	if next == -1 {
		p.log.Info().Int("clips", len(p.prog.Clips)).Msg("program finished")
		p.State = Idle
		p.idx = 0
		p.finishing = false
		return
	}
	p.idx = next
	p.startClip()
}

func (p *Player) startClip() {
	clip := p.prog.Clips[p.idx]
	p.finishing = false
	p.started = p.clock.Millis()
	p.engine.Start(p.indices[p.idx])
	p.log.Info().Int("clip", p.idx).Str("name", clip.Name).Str("effect", clip.Effect).
		Float64("duration_s", clip.DurationS).Msg("clip started")
}

func brightness(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= float64(effects.MaxBrightness) {
		return effects.MaxBrightness
	}
	return uint8(v)
}
