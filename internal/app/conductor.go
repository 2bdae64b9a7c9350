package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/voxelcube/internal/effects"
	"github.com/coreman2200/voxelcube/internal/preview"
	"github.com/coreman2200/voxelcube/internal/show"
)

// Frame is a cube that can tell whether its contents changed.
type Frame interface {
	preview.Source
	Sum64() uint64
}

// Conductor ticks the player and hands changed frames to the sink.
type Conductor struct {
	Cube   Frame
	Seq    *effects.Sequencer
	Player *show.Player
	Sink   preview.Sink

	// Limit caps the brightness the sink sees, 0..MaxBrightness.
	Limit uint8
	// Frames counts frames handed to the sink.
	Frames int

	log            zerolog.Logger
	lastSum        uint64
	lastBrightness uint8
	pushed         bool
}

func NewConductor(c Frame, seq *effects.Sequencer, p *show.Player, sink preview.Sink, log zerolog.Logger) *Conductor {
	return &Conductor{
		Cube:   c,
		Seq:    seq,
		Player: p,
		Sink:   sink,
		Limit:  effects.MaxBrightness,
		log:    log,
	}
}

// Brightness is the sequencer brightness scaled by Limit.
func (c *Conductor) Brightness() uint8 {
	limit := c.Limit
	if limit > effects.MaxBrightness {
		limit = effects.MaxBrightness
	}
	return uint8(uint16(c.Seq.Brightness()) * uint16(limit) / uint16(effects.MaxBrightness))
}

// Step runs one tick. It reports whether the frame changed since the last
// one pushed.
func (c *Conductor) Step() bool {
	c.Player.Tick()

	sum, b := c.Cube.Sum64(), c.Brightness()
	if c.pushed && sum == c.lastSum && b == c.lastBrightness {
		return false
	}
	c.lastSum, c.lastBrightness, c.pushed = sum, b, true
	if c.Sink == nil {
		return true
	}
	if err := c.Sink.Show(c.Cube, b); err != nil {
		// retry on the next tick
		c.pushed = false
		c.log.Warn().Err(err).Msg("frame dropped")
		return true
	}
	c.Frames++
	return true
}

// Run plays the program until it ends or ctx is cancelled.
func (c *Conductor) Run(ctx context.Context, tick time.Duration) error {
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	c.Player.Start()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			c.Player.Stop()
			c.log.Info().Int("frames", c.Frames).Msg("stopped")
			return nil
		case <-ticker.C:
			c.Step()
			if c.Player.State == show.Idle {
				c.log.Info().Int("frames", c.Frames).Msg("program done")
				return nil
			}
		}
	}
}
