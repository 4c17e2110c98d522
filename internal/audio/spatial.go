// Package audio plays interaction feedback sounds.
package audio

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Spatialize returns the volume and pan for a sound at pos. Volume falls off
// linearly to zero at maxDistance; pan is -1 (left) to 1 (right).
func Spatialize(listener Listener, pos rl.Vector3, baseVolume, maxDistance float32) (volume, pan float32) {
	toSource := rl.Vector3Subtract(pos, listener.Position)
	distance := rl.Vector3Length(toSource)

	if maxDistance <= 0 || distance >= maxDistance {
		return 0, 0
	}
	// Linear falloff
	volume = baseVolume * (1.0 - distance/maxDistance)

	if distance > 0.001 {
		direction := rl.Vector3Scale(toSource, 1.0/distance)
		pan = rl.Clamp(rl.Vector3DotProduct(direction, listener.Right), -1, 1)

		// Sounds behind are slightly quieter
		frontDot := rl.Vector3DotProduct(direction, listener.Forward)
		if frontDot < 0 {
			volume *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
		}
	}
	return volume, pan
}
