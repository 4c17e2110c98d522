package components

import (
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	// Highlight draws a wireframe outline around the mesh.
	Highlight      bool
	HighlightColor rl.Color
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType:       meshType,
		Color:          color,
		Size:           size,
		HighlightColor: rl.Yellow,
	}
}

// WorldSize is Size multiplied by the object's world scale.
func (m *MeshRenderer) WorldSize() rl.Vector3 {
	g := m.GetGameObject()
	if g == nil {
		return m.Size
	}
	s := g.WorldScale()
	return rl.Vector3{X: m.Size.X * s.X, Y: m.Size.Y * s.Y, Z: m.Size.Z * s.Z}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	size := m.WorldSize()

	switch m.MeshType {
	case MeshCube:
		rl.PushMatrix()
		rl.Translatef(pos.X, pos.Y, pos.Z)
		rl.Rotatef(g.WorldRotation().Y, 0, 1, 0)
		rl.DrawCubeV(rl.Vector3{}, size, m.Color)
		if m.Highlight {
			rl.DrawCubeWiresV(rl.Vector3{}, rl.Vector3Scale(size, 1.05), m.HighlightColor)
		}
		rl.PopMatrix()
	case MeshSphere:
		rl.DrawSphere(pos, size.X, m.Color)
		if m.Highlight {
			rl.DrawSphereWires(pos, size.X*1.05, 8, 8, m.HighlightColor)
		}
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
}
