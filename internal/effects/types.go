package effects

import "github.com/coreman2200/voxelcube/internal/cube"

// Index identifies a registered effect.
type Index uint8

const (
	Rain Index = iota
	Toggle
	PlaneBounce
	StickyBounce
	Blink

	// Count is the number of registered effects.
	Count = 5
	// None means no effect is running.
	None Index = 0xff
)

// MaxBrightness is the brightness every effect starts with.
const MaxBrightness uint8 = 10

// Rand draws pseudo-random integers in [0, n). *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Frame is what an effect sees on a single tick.
type Frame struct {
	Cube cube.Canvas
	Rand Rand
	// Elapsed is the time in ms since the effect last stepped.
	Elapsed uint32
	// Finish asks the effect to stop at its next finish point.
	Finish bool
}

// Result tells the sequencer what a tick did.
type Result uint8

const (
	// Wait means the effect's interval has not passed; nothing changed.
	Wait Result = iota
	// Stepped means the effect advanced by one step.
	Stepped
	// Done means the effect reached its finish point.
	Done
)

// Effect is one animation. Each effect owns its state; Reset returns it to the
// state of a fresh run.
type Effect interface {
	Name() string
	Reset()
	Step(f *Frame) Result
}

// Registered returns the effects in index order.
func Registered() []Effect {
	return []Effect{
		&rain{},
		&toggle{},
		&bounce{},
		&sticky{},
		&blink{},
	}
}
