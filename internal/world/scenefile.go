package world

import (
	"fmt"
	"os"

	"interact3d/internal/components"
	"interact3d/internal/config"
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.LightGray
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return ""
}

// --- Saving ---

// ExportScene snapshots the current targets and player as scene config.
// Objects without a mesh (the prompt label, the player) are not targets.
func (w *World) ExportScene() config.SceneConfig {
	var sc config.SceneConfig
	if w.Player != nil {
		p := w.Player.Transform.Position
		sc.Player = config.PlayerConfig{Name: w.Player.Name, Position: config.Vec3{p.X, p.Y, p.Z}}
	}
	if label := w.PromptLabel(); label != nil {
		sc.Prompt.FontSize = label.FontSize
	}

	for _, g := range w.Scene.GameObjects {
		if g.Parent != nil {
			continue
		}
		renderer := engine.GetComponent[*components.MeshRenderer](g)
		if renderer == nil {
			continue
		}
		sc.Targets = append(sc.Targets, exportTarget(g, renderer))
	}
	return sc
}

func exportTarget(g *engine.GameObject, renderer *components.MeshRenderer) config.TargetConfig {
	pos := g.Transform.Position
	size := config.Vec3{renderer.Size.X, renderer.Size.Y, renderer.Size.Z}
	tc := config.TargetConfig{
		Name:     g.Name,
		Layer:    g.Layer.String(),
		Position: config.Vec3{pos.X, pos.Y, pos.Z},
		Size:     &size,
		Mesh:     "cube",
		Color:    lookupColorName(renderer.Color),
	}
	if renderer.MeshType == components.MeshSphere {
		tc.Mesh = "sphere"
	}
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		tc.ColliderRadius = sphere.Radius
	}
	for _, c := range g.Components() {
		if name, props, ok := engine.SerializeScript(c); ok {
			tc.Scripts = append(tc.Scripts, config.ScriptConfig{Name: name, Props: props})
		}
	}
	return tc
}

// SaveScene writes cfg with its scene replaced by the current world state.
func (w *World) SaveScene(path string, cfg config.Config) error {
	cfg.Scene = w.ExportScene()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	w.log.Infof("World: saved %d targets to %s", len(cfg.Scene.Targets), path)
	return nil
}
