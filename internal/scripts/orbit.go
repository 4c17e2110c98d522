package scripts

import (
	"math"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbit circles an object around the point it started at and spins it about
// Y, so targets drift in and out of the player's reach.
type Orbit struct {
	engine.BaseComponent
	Radius        float32
	Speed         float32 // radians per second
	RotationSpeed float32 // degrees per second
	Phase         float32

	center rl.Vector3
	time   float32
}

func (o *Orbit) Start() {
	o.center = o.GetGameObject().Transform.Position
	o.place()
}

func (o *Orbit) Update(deltaTime float32) {
	g := o.GetGameObject()
	if g == nil {
		return
	}
	o.time += deltaTime
	o.place()

	g.Transform.Rotation.Y += o.RotationSpeed * deltaTime
	if g.Transform.Rotation.Y > 360 {
		g.Transform.Rotation.Y -= 360
	}
}

func (o *Orbit) place() {
	t := float64(o.time*o.Speed + o.Phase)
	g := o.GetGameObject()
	g.Transform.Position = rl.Vector3Add(o.center, rl.Vector3{
		X: float32(math.Cos(t)) * o.Radius,
		Z: float32(math.Sin(t)) * o.Radius,
	})
}

func init() {
	engine.RegisterScript("Orbit", orbitFactory, orbitSerializer)
}

func orbitFactory(props map[string]any) engine.Component {
	return &Orbit{
		Radius:        engine.PropFloat(props, "radius", 3),
		Speed:         engine.PropFloat(props, "speed", 0.5),
		RotationSpeed: engine.PropFloat(props, "rotationSpeed", 45),
		Phase:         engine.PropFloat(props, "phase", 0),
	}
}

func orbitSerializer(c engine.Component) map[string]any {
	o, ok := c.(*Orbit)
	if !ok {
		return nil
	}
	return map[string]any{
		"radius":        o.Radius,
		"speed":         o.Speed,
		"rotationSpeed": o.RotationSpeed,
		"phase":         o.Phase,
	}
}
