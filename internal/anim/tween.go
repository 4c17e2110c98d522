package anim

import (
	"github.com/gen2brain/raylib-go/easings"
)

// EaseFunc has the signature of the raylib easings: t elapsed, b start,
// c change, d duration.
type EaseFunc func(t, b, c, d float32) float32

// Tween drives a value from From to To over Duration seconds and hands each
// sample to Apply. The final sample is always exactly To.
type Tween struct {
	From, To float32
	Duration float32
	Ease     EaseFunc
	Apply    func(value float32)

	elapsed float32
}

func NewTween(from, to, duration float32, ease EaseFunc, apply func(float32)) *Tween {
	if ease == nil {
		ease = easings.LinearNone
	}
	return &Tween{From: from, To: to, Duration: duration, Ease: ease, Apply: apply}
}

func (tw *Tween) Step(deltaTime float32) bool {
	tw.elapsed += deltaTime
	if tw.Duration <= 0 || tw.elapsed >= tw.Duration {
		tw.apply(tw.To)
		return true
	}
	tw.apply(tw.Ease(tw.elapsed, tw.From, tw.To-tw.From, tw.Duration))
	return false
}

// Progress is the elapsed fraction in [0, 1].
func (tw *Tween) Progress() float32 {
	if tw.Duration <= 0 || tw.elapsed >= tw.Duration {
		return 1
	}
	return tw.elapsed / tw.Duration
}

func (tw *Tween) apply(v float32) {
	if tw.Apply != nil {
		tw.Apply(v)
	}
}
