package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	// OverlapSphere returns active objects on a layer in mask whose bounds
	// intersect the sphere, in a stable order.
	OverlapSphere(origin rl.Vector3, radius float32, mask LayerMask) []*GameObject
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
}
