// Package show plays a program of effects back to back. Each clip runs one
// effect for a while, asks it to finish and moves on once it has.
package show

// Keyframe is a value at time T (seconds). Ease applies to the segment that
// starts at this keyframe.
type Keyframe struct {
	T    float64 `yaml:"t"`
	V    float64 `yaml:"v"`
	Ease string  `yaml:"ease,omitempty"` // "linear","smooth","cubic"
}

// Envelope is a sorted list of keyframes.
type Envelope struct {
	Keys []Keyframe
}

// Clip runs one effect. Once DurationS has passed the effect is asked to
// finish; the clip ends when it does. Brightness, when set, is evaluated
// against clip-local time on every tick.
type Clip struct {
	Name       string   `yaml:"name"`
	Effect     string   `yaml:"effect"`
	DurationS  float64  `yaml:"duration_s"`
	Brightness Envelope `yaml:"brightness,omitempty"`
}

// Program is the full playlist.
type Program struct {
	Loop  bool   `yaml:"loop"`
	Clips []Clip `yaml:"clips"`
}

// State enumerates player states.
type State string

const (
	Idle    State = "idle"
	Running State = "running"
	Paused  State = "paused"
)
