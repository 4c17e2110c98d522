package world

import (
	"errors"
	"fmt"

	"interact3d/internal/components"
	"interact3d/internal/config"
	"interact3d/internal/engine"
	"interact3d/internal/interaction"
	"interact3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	PlayerTag  = "Player"
	PromptName = "InteractionPrompt"
)

// World owns the scene, the spatial index over it and the registry that maps
// scene objects to interaction targets.
type World struct {
	Scene   *engine.Scene
	Grid    *physics.Grid
	Targets *interaction.Registry

	Player   *engine.GameObject
	Prompt   *engine.GameObject
	Detector *components.InteractionDetector

	highlighted *components.MeshRenderer
	log         *zap.SugaredLogger
}

func New() *World {
	w := &World{
		Scene:   engine.NewScene("Main"),
		Grid:    physics.NewGrid(),
		Targets: interaction.NewRegistry(),
		log:     zap.S(),
	}
	w.Scene.World = w
	return w
}

// SetLogger replaces the logger used by the world and the detector it builds.
func (w *World) SetLogger(log *zap.SugaredLogger) {
	w.log = log
}

// Build populates the scene from cfg and starts it. recorder may be nil.
func (w *World) Build(cfg *config.Config, recorder interaction.Recorder) error {
	icfg, err := cfg.InteractionConfig()
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}

	w.Prompt = engine.NewGameObject(PromptName)
	w.Prompt.Layer = engine.LayerUI
	label := components.NewUIText()
	label.Alignment = components.TextAlignCenter
	label.FontSize = cfg.Scene.Prompt.FontSize
	w.Prompt.AddComponent(label)
	w.SpawnObject(w.Prompt)

	pc := cfg.Scene.Player
	w.Player = engine.NewGameObject(pc.Name)
	w.Player.Tags = []string{PlayerTag}
	w.Player.Layer = engine.LayerPlayer
	w.Player.Transform.Position = pc.Position.Vector3()
	w.Detector = components.NewInteractionDetector(icfg)
	w.Detector.Prompt = engine.RefTo(w.Prompt)
	w.Detector.Recorder = recorder
	w.Detector.Logger = w.log
	w.Player.AddComponent(w.Detector)
	w.SpawnObject(w.Player)

	var errs []error
	for _, tc := range cfg.Scene.Targets {
		g, err := w.buildTarget(tc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		w.SpawnObject(g)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("build world: %w", err)
	}

	w.Scene.Start()
	w.Detector.Detector().OnSelectionChanged.AddListener(w.highlight)

	w.log.Infof("World: %d objects, %d targets, radius %.2f, cooldown %.2fs",
		len(w.Scene.GameObjects), w.Targets.Len(), icfg.Radius, icfg.Cooldown)
	return nil
}

func (w *World) buildTarget(tc config.TargetConfig) (*engine.GameObject, error) {
	g := engine.NewGameObject(tc.Name)
	if layer, ok := engine.LayerByName(tc.Layer); ok {
		g.Layer = layer
	}
	g.Transform.Position = tc.Position.Vector3()

	size := rl.Vector3{X: 1, Y: 1, Z: 1}
	if tc.Size != nil {
		size = tc.Size.Vector3()
	}
	mesh := components.MeshCube
	if tc.Mesh == "sphere" {
		mesh = components.MeshSphere
	}
	g.AddComponent(components.NewMeshRenderer(mesh, lookupColor(tc.Color), size))

	if tc.ColliderRadius > 0 {
		g.AddComponent(components.NewSphereCollider(tc.ColliderRadius))
	}

	for _, sc := range tc.Scripts {
		c, err := engine.CreateScript(sc.Name, sc.Props)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", tc.Name, err)
		}
		g.AddComponent(c)
	}
	return g, nil
}

// SpawnObject adds g and its children to the scene and the spatial index,
// and registers the first component of each that is an interaction target.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Grid.Insert(g)
	for _, c := range g.Components() {
		if t, ok := c.(interaction.Target); ok {
			w.Targets.Register(g.UID, t)
			break
		}
	}
	for _, child := range g.Children {
		w.SpawnObject(child)
	}
}

// Destroy removes g and its children. Safe to call from a component Update.
func (w *World) Destroy(g *engine.GameObject) {
	for _, child := range g.Children {
		w.Destroy(child)
	}
	w.Scene.RemoveGameObject(g)
	w.Grid.Remove(g)
	w.Targets.Unregister(g.UID)
	if w.highlighted != nil && w.highlighted.GetGameObject() == g {
		w.highlighted = nil
	}
}

func (w *World) OverlapSphere(origin rl.Vector3, radius float32, mask engine.LayerMask) []*engine.GameObject {
	return w.Grid.OverlapSphere(origin, radius, mask)
}

// Query returns the registered targets among the objects overlapping the
// sphere, in the grid's stable order.
func (w *World) Query(origin rl.Vector3, radius float32, mask engine.LayerMask) []interaction.Target {
	objs := w.Grid.OverlapSphere(origin, radius, mask)
	targets := make([]interaction.Target, 0, len(objs))
	for _, g := range objs {
		if t, ok := w.Targets.Lookup(g.UID); ok {
			targets = append(targets, t)
		}
	}
	return targets
}

// Update re-hashes the grid with last frame's transforms, then updates the
// scene.
func (w *World) Update(deltaTime float32) {
	w.Grid.Rebuild()
	w.Scene.Update(deltaTime)
}

// Press forwards an interaction key press to the player's detector.
func (w *World) Press() {
	if w.Detector != nil {
		w.Detector.Press()
	}
}

// PromptLabel is the label the detector drives.
func (w *World) PromptLabel() *components.UIText {
	return engine.GetComponent[*components.UIText](w.Prompt)
}

// Highlighted is the mesh currently outlined as the selection, or nil.
func (w *World) Highlighted() *components.MeshRenderer {
	return w.highlighted
}

func (w *World) highlight(t interaction.Target) {
	if w.highlighted != nil {
		w.highlighted.Highlight = false
		w.highlighted = nil
	}
	c, ok := t.(engine.Component)
	if !ok {
		return
	}
	if r := engine.GetComponent[*components.MeshRenderer](c.GetGameObject()); r != nil {
		r.Highlight = true
		w.highlighted = r
	}
}
