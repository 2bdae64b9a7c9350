package show

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// clamp01 clamps x in [0,1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// smootherstep 6x^5 - 15x^4 + 10x^3
func smootherstep(x float64) float64 {
	return x * x * x * (x*(x*6-15) + 10)
}

func easeApply(kind string, x float64) float64 {
	switch kind {
	case "smooth":
		return x * x * (3 - 2*x)
	case "cubic":
		return smootherstep(x)
	default:
		return x
	}
}

// Eval returns the value of the envelope at t seconds. No keys yields 0 and a
// single key holds its value. Keys must be sorted by T.
func (e Envelope) Eval(t float64) float64 {
	n := len(e.Keys)
	if n == 0 {
		return 0
	}
	if t <= e.Keys[0].T {
		return e.Keys[0].V
	}
	if t >= e.Keys[n-1].T {
		return e.Keys[n-1].V
	}
	for i := 0; i < n-1; i++ {
		a, b := e.Keys[i], e.Keys[i+1]
		if t > b.T {
			continue
		}
		den := b.T - a.T
		if den <= 0 {
			return b.V
		}
		u := easeApply(a.Ease, clamp01((t-a.T)/den))
		return a.V + (b.V-a.V)*u
	}
	return e.Keys[n-1].V
}

// Empty reports whether the envelope has no keys.
func (e Envelope) Empty() bool { return len(e.Keys) == 0 }

func (e Envelope) validate() error {
	for i := 1; i < len(e.Keys); i++ {
		if e.Keys[i].T < e.Keys[i-1].T {
			return fmt.Errorf("keyframe %d at t=%v is before t=%v", i, e.Keys[i].T, e.Keys[i-1].T)
		}
	}
	for i, k := range e.Keys {
		switch k.Ease {
		case "", "linear", "smooth", "cubic":
		default:
			return fmt.Errorf("keyframe %d: unknown ease %q", i, k.Ease)
		}
	}
	return nil
}

// UnmarshalYAML reads an envelope written as a plain list of keyframes.
func (e *Envelope) UnmarshalYAML(n *yaml.Node) error {
	var keys []Keyframe
	if err := n.Decode(&keys); err != nil {
		return err
	}
	e.Keys = keys
	return nil
}

// MarshalYAML writes the envelope as a plain list of keyframes.
func (e Envelope) MarshalYAML() (interface{}, error) {
	return e.Keys, nil
}
