package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/voxelcube/internal/clock"
	"github.com/coreman2200/voxelcube/internal/config"
	"github.com/coreman2200/voxelcube/internal/effects"
	"github.com/coreman2200/voxelcube/internal/preview"
	"github.com/coreman2200/voxelcube/internal/show"
)

type recordingSink struct {
	shows      int
	brightness uint8
	lit        int
	err        error
}

func (s *recordingSink) Show(src preview.Source, brightness uint8) error {
	s.shows++
	if s.err != nil {
		return s.err
	}
	s.brightness = brightness
	s.lit = 0
	n := src.Size()
	for z := uint8(0); z < n; z++ {
		for y := uint8(0); y < n; y++ {
			for x := uint8(0); x < n; x++ {
				s.lit += int(src.GetVoxel(x, y, z))
			}
		}
	}
	return nil
}

func newCore(t *testing.T, sink preview.Sink, clips ...show.Clip) (*Core, *clock.Manual) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	cfg.Program = show.Program{Clips: clips}
	clk := &clock.Manual{}
	core, err := InitCore(cfg, clk, sink, zerolog.Nop())
	require.NoError(t, err)
	return core, clk
}

func TestInitCoreRejectsBadProgram(t *testing.T) {
	cfg := config.Default()
	cfg.Program.Clips = append(cfg.Program.Clips, show.Clip{Name: "x", Effect: "lasers"})
	_, err := InitCore(cfg, &clock.Manual{}, nil, zerolog.Nop())
	assert.ErrorContains(t, err, "lasers")
}

func TestConductorPushesOnlyChanges(t *testing.T) {
	sink := &recordingSink{}
	core, clk := newCore(t, sink, show.Clip{Name: "b", Effect: "bounce", DurationS: 60})
	n := int(core.Cube.Size())
	core.Player.Start()

	assert.True(t, core.Conductor.Step())
	assert.Equal(t, 1, sink.shows)
	assert.Equal(t, n*n, sink.lit)
	assert.Equal(t, effects.MaxBrightness, sink.brightness)

	assert.False(t, core.Conductor.Step())
	clk.Advance(100)
	assert.False(t, core.Conductor.Step())
	assert.Equal(t, 1, sink.shows)

	clk.Advance(300)
	assert.True(t, core.Conductor.Step())
	assert.Equal(t, 2, sink.shows)
	assert.Equal(t, 2, core.Conductor.Frames)
}

func TestConductorBrightnessLimit(t *testing.T) {
	sink := &recordingSink{}
	core, _ := newCore(t, sink, show.Clip{Name: "b", Effect: "bounce", DurationS: 60})
	core.Conductor.Limit = 5
	core.Player.Start()
	core.Conductor.Step()
	assert.Equal(t, uint8(5), sink.brightness)

	// a brightness change alone is a new frame
	core.Conductor.Limit = 3
	assert.True(t, core.Conductor.Step())
	assert.Equal(t, uint8(3), sink.brightness)
}

func TestConductorRetriesFailedFrames(t *testing.T) {
	sink := &recordingSink{err: errors.New("unplugged")}
	core, _ := newCore(t, sink, show.Clip{Name: "b", Effect: "bounce", DurationS: 60})
	core.Player.Start()

	core.Conductor.Step()
	core.Conductor.Step()
	assert.Equal(t, 2, sink.shows)
	assert.Equal(t, 0, core.Conductor.Frames)

	sink.err = nil
	core.Conductor.Step()
	core.Conductor.Step()
	assert.Equal(t, 3, sink.shows)
	assert.Equal(t, 1, core.Conductor.Frames)
}

func TestRunEndsWithProgram(t *testing.T) {
	core, _ := newCore(t, nil, show.Clip{Name: "b", Effect: "bounce", DurationS: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, core.Conductor.Run(ctx, time.Millisecond))
	assert.NoError(t, ctx.Err(), "program should end on its own")
	assert.Equal(t, show.Idle, core.Player.State)
	assert.Equal(t, effects.PlaneBounce, core.Seq.Previous())
}

func TestRunStopsOnCancel(t *testing.T) {
	core, _ := newCore(t, nil, show.Clip{Name: "r", Effect: "rain", DurationS: 60})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	require.NoError(t, core.Conductor.Run(ctx, time.Millisecond))
	assert.Equal(t, show.Idle, core.Player.State)
	assert.True(t, core.Seq.Finished())
	assert.Equal(t, 0, core.Cube.Count())
}
