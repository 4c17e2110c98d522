package physics

import (
	"math"
	"sort"

	"interact3d/internal/components"
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - objects in cells overlapped by a query are tested
const CellSize = 5.0

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X / CellSize))),
		Y: int(math.Floor(float64(pos.Y / CellSize))),
		Z: int(math.Floor(float64(pos.Z / CellSize))),
	}
}

type gridEntry struct {
	obj    *engine.GameObject
	seq    uint64
	cell   CellKey
	center rl.Vector3
	radius float32
}

// Grid is a uniform spatial hash over scene objects. Query results are
// returned in insertion order regardless of which cells they came from.
type Grid struct {
	cells   map[CellKey][]*gridEntry
	entries map[*engine.GameObject]*gridEntry
	nextSeq uint64

	// largest collider radius seen, pads the scanned cell range
	maxExtent float32
}

func NewGrid() *Grid {
	return &Grid{
		cells:   make(map[CellKey][]*gridEntry),
		entries: make(map[*engine.GameObject]*gridEntry),
	}
}

// Insert adds g to the grid. Inserting an object twice only re-hashes it.
func (gr *Grid) Insert(g *engine.GameObject) {
	if g == nil {
		return
	}
	if _, ok := gr.entries[g]; ok {
		gr.Move(g)
		return
	}
	gr.nextSeq++
	e := &gridEntry{obj: g, seq: gr.nextSeq}
	gr.entries[g] = e
	gr.place(e)
}

func (gr *Grid) Remove(g *engine.GameObject) {
	e, ok := gr.entries[g]
	if !ok {
		return
	}
	gr.unlink(e)
	delete(gr.entries, g)
}

// Move re-hashes g after its transform changed.
func (gr *Grid) Move(g *engine.GameObject) {
	e, ok := gr.entries[g]
	if !ok {
		return
	}
	gr.unlink(e)
	gr.place(e)
}

// Rebuild clears and repopulates every cell from current transforms.
func (gr *Grid) Rebuild() {
	for k := range gr.cells {
		delete(gr.cells, k)
	}
	gr.maxExtent = 0
	for _, e := range gr.entries {
		gr.place(e)
	}
}

func (gr *Grid) Len() int {
	return len(gr.entries)
}

// scanCost is an upper bound on the number of cells a query of the given
// reach visits. Infinite for an infinite reach.
func (gr *Grid) scanCost(reach float32) float64 {
	side := math.Floor(2*float64(reach)/CellSize) + 2
	return side * side * side
}

// OverlapSphere returns active objects on a layer in mask whose bounds touch
// the sphere. Objects with a SphereCollider use its center and radius,
// others are treated as points.
func (gr *Grid) OverlapSphere(origin rl.Vector3, radius float32, mask engine.LayerMask) []*engine.GameObject {
	if radius < 0 || math.IsNaN(float64(radius)) {
		return nil
	}

	var hits []*gridEntry
	test := func(e *gridEntry) {
		if !e.obj.Active || !mask.Has(e.obj.Layer) {
			return
		}
		if rl.Vector3Distance(origin, e.center) <= radius+e.radius {
			hits = append(hits, e)
		}
	}

	reach := radius + gr.maxExtent
	if gr.scanCost(reach) > float64(len(gr.entries)) {
		// fewer objects than cells to visit
		for _, e := range gr.entries {
			test(e)
		}
	} else {
		lo := posToCell(rl.Vector3{X: origin.X - reach, Y: origin.Y - reach, Z: origin.Z - reach})
		hi := posToCell(rl.Vector3{X: origin.X + reach, Y: origin.Y + reach, Z: origin.Z + reach})
		for x := lo.X; x <= hi.X; x++ {
			for y := lo.Y; y <= hi.Y; y++ {
				for z := lo.Z; z <= hi.Z; z++ {
					for _, e := range gr.cells[CellKey{x, y, z}] {
						test(e)
					}
				}
			}
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].seq < hits[j].seq })

	result := make([]*engine.GameObject, len(hits))
	for i, e := range hits {
		result[i] = e.obj
	}
	return result
}

func (gr *Grid) place(e *gridEntry) {
	e.center, e.radius = bounds(e.obj)
	if e.radius > gr.maxExtent {
		gr.maxExtent = e.radius
	}
	e.cell = posToCell(e.center)
	gr.cells[e.cell] = append(gr.cells[e.cell], e)
}

func (gr *Grid) unlink(e *gridEntry) {
	cell := gr.cells[e.cell]
	for i, other := range cell {
		if other == e {
			cell = append(cell[:i], cell[i+1:]...)
			break
		}
	}
	if len(cell) == 0 {
		delete(gr.cells, e.cell)
	} else {
		gr.cells[e.cell] = cell
	}
}

func bounds(g *engine.GameObject) (rl.Vector3, float32) {
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		return sphere.GetCenter(), sphere.WorldRadius()
	}
	return g.WorldPosition(), 0
}
