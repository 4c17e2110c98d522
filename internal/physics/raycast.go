package physics

import (
	"math"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast returns the closest sphere-bounded object hit by the ray. Point
// objects (no collider) cannot be hit.
func (gr *Grid) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (RaycastHit, bool) {
	if rl.Vector3Length(direction) == 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	var closestSeq uint64
	hit := false

	for _, e := range gr.entries {
		if e.radius <= 0 || !e.obj.Active || !mask.Has(e.obj.Layer) {
			continue
		}
		hitInfo, ok := raycastSphere(origin, direction, e.center, e.radius, maxDistance)
		if !ok {
			continue
		}
		if hit && !closer(hitInfo.Distance, e.seq, closestHit.Distance, closestSeq) {
			continue
		}
		closestHit = hitInfo
		closestHit.GameObject = e.obj
		closestSeq = e.seq
		hit = true
	}

	return closestHit, hit
}

// closer orders hits by distance, then insertion order, since entries are
// visited in map order.
func closer(d float32, seq uint64, bestD float32, bestSeq uint64) bool {
	if d != bestD {
		return d < bestD
	}
	return seq < bestSeq
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
