package style

import "fmt"

// Keyframe is a single step of a keyframe sequence.
type Keyframe struct {
	Offset    string // e.g. "0%"
	Transform string // e.g. "rotate(0deg)"
}

// Keyframes is a named keyframe sequence.
type Keyframes struct {
	Name   string
	Frames []Keyframe
}

// Spin rotates a full turn.
var Spin = Keyframes{
	Name: "spin",
	Frames: []Keyframe{
		{Offset: "0%", Transform: "rotate(0deg)"},
		{Offset: "100%", Transform: "rotate(360deg)"},
	},
}

const (
	TimingLinear      = "linear"
	IterationInfinite = "infinite"
)

// Animation binds a keyframe sequence to a duration. Timing and iteration
// are fixed: indicators always spin linearly and forever.
type Animation struct {
	Keyframes      Keyframes
	Duration       string
	TimingFunction string
	IterationCount string
}

// NewSpin returns the rotation animation with one revolution per duration.
func NewSpin(duration string) Animation {
	frames := make([]Keyframe, len(Spin.Frames))
	copy(frames, Spin.Frames)
	return Animation{
		Keyframes:      Keyframes{Name: Spin.Name, Frames: frames},
		Duration:       duration,
		TimingFunction: TimingLinear,
		IterationCount: IterationInfinite,
	}
}

// Shorthand renders the animation as a single CSS-like shorthand value.
func (a Animation) Shorthand() string {
	return fmt.Sprintf("%s %s %s %s", a.Keyframes.Name, a.Duration, a.TimingFunction, a.IterationCount)
}

// Properties expands the animation into style properties.
func (a Animation) Properties() StyleMap {
	return StyleMap{
		"animation":               a.Shorthand(),
		"animationName":           a.Keyframes.Name,
		"animationDuration":       a.Duration,
		"animationTimingFunction": a.TimingFunction,
		"animationIterationCount": a.IterationCount,
	}
}
