package anim

import (
	"interact3d/internal/engine"

	"github.com/gen2brain/raylib-go/easings"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	PulseScale    float32 = 1.2
	PulseRiseTime float32 = 0.2
	PulseFallTime float32 = 0.2
)

// Pulse scales a transform up to PulseScale times its starting scale and
// back. The starting scale is restored when the pulse ends or is cancelled.
type Pulse struct {
	transform *engine.Transform
	base      rl.Vector3
	elapsed   float32
}

func NewPulse(transform *engine.Transform) *Pulse {
	return &Pulse{transform: transform, base: transform.Scale}
}

func (p *Pulse) Step(deltaTime float32) bool {
	p.elapsed += deltaTime

	var factor float32
	switch {
	case p.elapsed < PulseRiseTime:
		factor = easings.QuadOut(p.elapsed, 1, PulseScale-1, PulseRiseTime)
	case p.elapsed < PulseRiseTime+PulseFallTime:
		factor = easings.QuadIn(p.elapsed-PulseRiseTime, PulseScale, 1-PulseScale, PulseFallTime)
	default:
		p.restore()
		return true
	}

	p.transform.Scale = rl.Vector3Scale(p.base, factor)
	return false
}

func (p *Pulse) Cancel() {
	p.restore()
}

func (p *Pulse) restore() {
	p.transform.Scale = p.base
}
