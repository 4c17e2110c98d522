package components

import (
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SphereCollider bounds an object for spatial queries and ray picks.
type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	if g == nil {
		return s.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// WorldRadius is Radius scaled by the largest axis of the world scale.
func (s *SphereCollider) WorldRadius() float32 {
	g := s.GetGameObject()
	if g == nil {
		return s.Radius
	}
	scale := g.WorldScale()
	m := absf(scale.X)
	if y := absf(scale.Y); y > m {
		m = y
	}
	if z := absf(scale.Z); z > m {
		m = z
	}
	return s.Radius * m
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
