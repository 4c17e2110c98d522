// Package interaction picks the nearest interactable target around an actor,
// keeps a single prompt in sync with that choice and fires the target's
// action on a debounced trigger.
package interaction

import (
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Target is anything the actor can interact with.
//
// Targets are compared by identity, so implementations must be comparable;
// in practice that means pointer receivers.
type Target interface {
	// PromptText is the text shown while this target is selected. It may
	// change with the target's state.
	PromptText() string
	// Interact performs the target's effect.
	Interact(actor *engine.GameObject)
	// CanInteract reports whether interaction is currently allowed.
	CanInteract() bool
	// Anchor is the world position used for distance checks.
	Anchor() rl.Vector3
}

// SpatialQuery enumerates candidate targets near a point. Implementations
// must be synchronous and return a stable ordering for identical input.
type SpatialQuery interface {
	Query(origin rl.Vector3, radius float32, mask engine.LayerMask) []Target
}

// QueryFunc adapts a function to SpatialQuery.
type QueryFunc func(origin rl.Vector3, radius float32, mask engine.LayerMask) []Target

func (f QueryFunc) Query(origin rl.Vector3, radius float32, mask engine.LayerMask) []Target {
	return f(origin, radius, mask)
}
