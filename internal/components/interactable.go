package components

import (
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Interactable is embedded by scripts that can be interacted with. It
// supplies the Anchor half of interaction.Target: the owning object's world
// position, or the origin when detached.
type Interactable struct {
	engine.BaseComponent
}

func (i *Interactable) Anchor() rl.Vector3 {
	g := i.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return g.WorldPosition()
}
