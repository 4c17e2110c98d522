package interaction

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SelectNearest returns the eligible candidate closest to origin within
// radius, or nil. On equal distance the earlier candidate wins.
func SelectNearest(origin rl.Vector3, radius float32, candidates []Target) Target {
	return selectNearest(origin, radius, candidates, nil)
}

// selectNearest is SelectNearest with panic isolation: a candidate whose
// CanInteract or Anchor panics, or that cannot be compared, is skipped and
// reported to onPanic.
func selectNearest(origin rl.Vector3, radius float32, candidates []Target, onPanic func(Target, string, any)) Target {
	if radius < 0 {
		return nil
	}

	var closest Target
	closestDistance := float32(0)

	for _, candidate := range candidates {
		if candidate == nil || !safeComparable(candidate, onPanic) {
			continue
		}

		eligible, ok := safeCanInteract(candidate, onPanic)
		if !ok || !eligible {
			continue
		}
		anchor, ok := safeAnchor(candidate, onPanic)
		if !ok {
			continue
		}

		distance := rl.Vector3Distance(origin, anchor)
		if math.IsNaN(float64(distance)) || distance > radius {
			continue
		}
		if closest == nil || distance < closestDistance {
			closest = candidate
			closestDistance = distance
		}
	}
	return closest
}
