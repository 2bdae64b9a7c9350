package effects

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/voxelcube/internal/clock"
	"github.com/coreman2200/voxelcube/internal/cube"
	"github.com/coreman2200/voxelcube/internal/geometry"
)

// fixedRand always returns n-1.
type fixedRand struct{}

func (fixedRand) Intn(n int) int { return n - 1 }

type rig struct {
	cube  *cube.Cube[geometry.Cube8]
	clock *clock.Manual
	seq   *Sequencer
}

func newRig(rng Rand) *rig {
	c := cube.New[geometry.Cube8]()
	clk := &clock.Manual{}
	return &rig{cube: c, clock: clk, seq: New(c, clk, rng, zerolog.Nop())}
}

// tick advances the clock by ms and processes once.
func (r *rig) tick(ms uint32, finish bool) {
	r.clock.Advance(ms)
	r.seq.Process(finish)
}

func TestStartAndForceFinish(t *testing.T) {
	r := newRig(fixedRand{})
	assert.True(t, r.seq.Finished())
	assert.Equal(t, None, r.seq.Current())
	assert.Equal(t, None, r.seq.Previous())

	r.seq.Start(PlaneBounce)
	assert.False(t, r.seq.Finished())
	assert.Equal(t, PlaneBounce, r.seq.Current())

	r.seq.ForceFinish()
	assert.True(t, r.seq.Finished())
	assert.Equal(t, PlaneBounce, r.seq.Previous())
	assert.Equal(t, None, r.seq.Current())
}

func TestStartClearsAndRestoresBrightness(t *testing.T) {
	r := newRig(fixedRand{})
	r.cube.Fill(0xff)
	r.seq.SetBrightness(3)

	r.seq.Start(Index(42))
	assert.True(t, r.seq.Finished(), "unknown index does not start anything")
	assert.Equal(t, 0, r.cube.Count())
	assert.Equal(t, MaxBrightness, r.seq.Brightness())

	r.seq.SetBrightness(200)
	assert.Equal(t, MaxBrightness, r.seq.Brightness())
}

func TestProcessWithoutEffectIsNoop(t *testing.T) {
	r := newRig(fixedRand{})
	r.cube.SetVoxel(1, 2, 3)
	r.tick(5000, false)
	r.tick(5000, true)
	assert.Equal(t, 1, r.cube.Count())
	assert.Equal(t, None, r.seq.Previous())
}

func TestRestartResetsState(t *testing.T) {
	r := newRig(fixedRand{})
	r.seq.Start(PlaneBounce)
	for i := 0; i < 3; i++ {
		r.tick(bounceInterval, false)
	}
	r.seq.Start(PlaneBounce)
	r.tick(1, false)
	assert.Equal(t, uint8(1), r.cube.GetVoxel(5, 5, 0), "plane starts again at z=0")
	assert.Equal(t, 64, r.cube.Count())
}

func TestNamesAndLookup(t *testing.T) {
	r := newRig(fixedRand{})
	assert.Equal(t, []string{"rain", "toggle", "bounce", "sticky-bounce", "blink"}, r.seq.Names())
	i, ok := r.seq.Lookup("blink")
	require.True(t, ok)
	assert.Equal(t, Blink, i)
	_, ok = r.seq.Lookup("nope")
	assert.False(t, ok)
	assert.Equal(t, "rain", r.seq.Name(Rain))
	assert.Equal(t, "", r.seq.Name(None))
}

func TestEveryEffectFinishesOnRequest(t *testing.T) {
	for i := Index(0); i < Count; i++ {
		r := newRig(rand.New(rand.NewSource(int64(i))))
		t.Run(r.seq.Name(i), func(t *testing.T) {
			r.seq.Start(i)
			for n := 0; n < 50; n++ {
				r.tick(10, false)
			}
			for n := 0; n < 100000 && !r.seq.Finished(); n++ {
				r.tick(1, true)
			}
			require.True(t, r.seq.Finished())
			assert.Equal(t, i, r.seq.Previous())
			assert.Equal(t, 0, r.cube.Count())
		})
	}
}

func TestElapsedAcrossClockWrap(t *testing.T) {
	r := newRig(fixedRand{})
	r.clock.Now = 0xffffffff - 100
	r.seq.Start(PlaneBounce)
	r.tick(0, false) // first step at z=0
	r.tick(bounceInterval-1, false)
	assert.Equal(t, uint8(1), r.cube.GetVoxel(0, 0, 0), "interval not reached across wrap")
	r.tick(1, false)
	assert.Equal(t, uint8(1), r.cube.GetVoxel(0, 0, 1))
	assert.Equal(t, uint8(0), r.cube.GetVoxel(0, 0, 0))
}
