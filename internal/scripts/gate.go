package scripts

import (
	"interact3d/internal/anim"
	"interact3d/internal/components"
	"interact3d/internal/engine"

	"github.com/gen2brain/raylib-go/easings"
	"go.uber.org/zap"
)

// Gate swings open or closed around its Y axis. It refuses interaction
// while a swing is in progress.
type Gate struct {
	components.Interactable

	OpenAngle  float32 // degrees
	SwingTime  float32 // seconds
	StartsOpen bool

	open   bool
	closed float32
	clock  anim.Clock
	swing  anim.Handle
}

func NewGate() *Gate {
	return &Gate{OpenAngle: 90, SwingTime: 0.6}
}

func (g *Gate) Start() {
	obj := g.GetGameObject()
	g.closed = obj.Transform.Rotation.Y
	if g.StartsOpen {
		g.open = true
		obj.Transform.Rotation.Y = g.closed + g.OpenAngle
	}
}

func (g *Gate) Update(deltaTime float32) {
	g.clock.Advance(deltaTime)
}

func (g *Gate) PromptText() string {
	if g.open {
		return "Press E to close gate"
	}
	return "Press E to open gate"
}

func (g *Gate) CanInteract() bool {
	return !g.swing.Running()
}

func (g *Gate) Interact(actor *engine.GameObject) {
	if g.swing.Running() {
		return
	}
	obj := g.GetGameObject()
	g.open = !g.open

	to := g.closed
	if g.open {
		to = g.closed + g.OpenAngle
	}
	tween := anim.NewTween(obj.Transform.Rotation.Y, to, g.SwingTime, easings.SineInOut, func(v float32) {
		obj.Transform.Rotation.Y = v
	})
	g.swing = g.clock.Start(tween)

	state := "closing"
	if g.open {
		state = "opening"
	}
	zap.S().Debugf("Gate: %s %s", obj.Name, state)
}

// IsOpen is the state the gate is in or swinging towards.
func (g *Gate) IsOpen() bool {
	return g.open
}

func init() {
	engine.RegisterScript("Gate", gateFactory, gateSerializer)
}

func gateFactory(props map[string]any) engine.Component {
	g := NewGate()
	g.OpenAngle = engine.PropFloat(props, "openAngle", g.OpenAngle)
	g.SwingTime = engine.PropFloat(props, "swingTime", g.SwingTime)
	g.StartsOpen = engine.PropBool(props, "open", false)
	return g
}

func gateSerializer(c engine.Component) map[string]any {
	g, ok := c.(*Gate)
	if !ok {
		return nil
	}
	return map[string]any{
		"openAngle": g.OpenAngle,
		"swingTime": g.SwingTime,
		"open":      g.open,
	}
}
