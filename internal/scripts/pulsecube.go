package scripts

import (
	"fmt"

	"interact3d/internal/anim"
	"interact3d/internal/components"
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const DefaultCubePrompt = "Press E to interact with cube"

// PulseCube counts interactions, alternates its colour and pulses its scale
// each time it is used.
type PulseCube struct {
	components.Interactable

	Prompt          string
	Enabled         bool
	DefaultColor    rl.Color
	InteractedColor rl.Color

	count    int
	renderer *components.MeshRenderer
	clock    anim.Clock
	pulse    anim.Handle
}

func NewPulseCube() *PulseCube {
	return &PulseCube{
		Prompt:          DefaultCubePrompt,
		Enabled:         true,
		DefaultColor:    rl.White,
		InteractedColor: rl.Green,
	}
}

func (c *PulseCube) Start() {
	g := c.GetGameObject()
	c.renderer = engine.GetComponent[*components.MeshRenderer](g)
	if c.renderer == nil {
		zap.S().Errorf("PulseCube: %s has no MeshRenderer, colour feedback disabled", g.Name)
		return
	}
	c.renderer.Color = c.DefaultColor
}

func (c *PulseCube) Update(deltaTime float32) {
	c.clock.Advance(deltaTime)
}

func (c *PulseCube) PromptText() string {
	if c.count > 0 {
		return fmt.Sprintf("Press E to interact again (%d times)", c.count)
	}
	return c.Prompt
}

func (c *PulseCube) CanInteract() bool {
	return c.Enabled
}

func (c *PulseCube) Interact(actor *engine.GameObject) {
	c.count++

	if c.renderer != nil {
		if c.count%2 == 1 {
			c.renderer.Color = c.InteractedColor
		} else {
			c.renderer.Color = c.DefaultColor
		}
	}

	actorName := "<nobody>"
	if actor != nil {
		actorName = actor.Name
	}
	zap.S().Infof("PulseCube: %s used by %s (count %d)", c.GetGameObject().Name, actorName, c.count)

	// restart from the resting scale rather than stacking pulses
	c.pulse.Cancel()
	c.pulse = c.clock.Start(anim.NewPulse(&c.GetGameObject().Transform))
}

// Count is the number of completed interactions.
func (c *PulseCube) Count() int {
	return c.count
}

// Pulsing reports whether the scale pulse is still running.
func (c *PulseCube) Pulsing() bool {
	return c.pulse.Running()
}

func init() {
	engine.RegisterScript("PulseCube", pulseCubeFactory, pulseCubeSerializer)
}

func pulseCubeFactory(props map[string]any) engine.Component {
	c := NewPulseCube()
	c.Prompt = engine.PropString(props, "prompt", c.Prompt)
	c.Enabled = engine.PropBool(props, "enabled", c.Enabled)
	c.DefaultColor = propColor(props, "defaultColor", c.DefaultColor)
	c.InteractedColor = propColor(props, "interactedColor", c.InteractedColor)
	return c
}

func pulseCubeSerializer(c engine.Component) map[string]any {
	pc, ok := c.(*PulseCube)
	if !ok {
		return nil
	}
	return map[string]any{
		"prompt":          pc.Prompt,
		"enabled":         pc.Enabled,
		"defaultColor":    colorProp(pc.DefaultColor),
		"interactedColor": colorProp(pc.InteractedColor),
	}
}
