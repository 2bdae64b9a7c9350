package effects

const toggleInterval = 500

// toggle flips a random number of random voxels every step. It has no cycle of
// its own, so a finish request ends it at the next step.
type toggle struct{}

func (t *toggle) Name() string { return "toggle" }
func (t *toggle) Reset()       {}

func (t *toggle) Step(f *Frame) Result {
	if f.Elapsed < toggleInterval {
		return Wait
	}
	if f.Finish {
		return Done
	}
	n := int(f.Cube.Size())
	for k := f.Rand.Intn(n); k > 0; k-- {
		f.Cube.ToggleVoxel(uint8(f.Rand.Intn(n)), uint8(f.Rand.Intn(n)), uint8(f.Rand.Intn(n)))
	}
	return Stepped
}
