package game

import (
	"fmt"

	"interact3d/internal/components"
	"interact3d/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const statusSeconds = 3

func (g *Game) drawScene() {
	rl.DrawGrid(40, 1)

	for _, obj := range g.World.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.MeshRenderer](obj); renderer != nil {
			renderer.Draw()
		}
	}

	player := g.World.Player.Transform.Position
	rl.DrawCylinder(rl.Vector3{X: player.X, Y: 0, Z: player.Z}, 0.3, 0.3, 1.2, 12, rl.Maroon)

	if g.DebugMode {
		d := g.World.Detector.Detector()
		radius := d.Config().Radius
		rl.DrawCircle3D(rl.Vector3{X: player.X, Y: 0.02, Z: player.Z}, radius, rl.Vector3{X: 1}, 90, rl.Fade(rl.SkyBlue, 0.8))
		if sel := d.Selection(); sel != nil {
			rl.DrawLine3D(d.Origin(), sel.Anchor(), rl.Yellow)
		}
	}
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, E to interact, RMB/arrows to turn", 10, 10, 20, rl.LightGray)
	rl.DrawText("F1 debug view, F5 save scene", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	// Prompt label, bottom centre
	if label := g.World.PromptLabel(); label != nil && label.Shown() {
		rect := rl.Rectangle{X: 0, Y: screenH - 90, Width: screenW, Height: 40}
		rl.DrawRectangle(int32(screenW/2-260), int32(rect.Y), 520, int32(rect.Height), rl.Fade(rl.Black, 0.6))
		label.Draw(rect)
	}

	if g.hovered != "" {
		mouse := rl.GetMousePosition()
		rl.DrawText(g.hovered, int32(mouse.X)+14, int32(mouse.Y)+4, 16, rl.RayWhite)
	}

	if g.status != "" && rl.GetTime()-g.statusAt < statusSeconds {
		rl.DrawText(g.status, 10, int32(screenH)-30, 18, rl.Gold)
	}

	if g.DebugMode {
		g.drawDebugPanel(screenW)
	}
}

func (g *Game) drawDebugPanel(screenW float32) {
	d := g.World.Detector.Detector()
	cfg := d.Config()

	x := screenW - 300
	gui.GroupBox(rl.Rectangle{X: x, Y: 10, Width: 290, Height: 170}, "Interaction")

	radius := gui.Slider(rl.Rectangle{X: x + 70, Y: 25, Width: 150, Height: 18}, "Radius", fmt.Sprintf("%.1f", cfg.Radius), cfg.Radius, 0.5, 8)
	if radius != cfg.Radius {
		d.SetRadius(radius)
	}

	gui.ProgressBar(rl.Rectangle{X: x + 70, Y: 50, Width: 150, Height: 18}, "Cooldown",
		fmt.Sprintf("%.2fs", d.CooldownRemaining()), d.CooldownRemaining(), 0, maxf(cfg.Cooldown, 0.001))

	selection := "none"
	if sel := d.Selection(); sel != nil {
		if c, ok := sel.(engine.Component); ok {
			selection = c.GetGameObject().Name
		}
	}
	gui.Label(rl.Rectangle{X: x + 10, Y: 75, Width: 270, Height: 18}, "State: "+d.State().String())
	gui.Label(rl.Rectangle{X: x + 10, Y: 95, Width: 270, Height: 18}, "Selection: "+selection)
	gui.Label(rl.Rectangle{X: x + 10, Y: 115, Width: 270, Height: 18}, "Layers: "+cfg.LayerMask.String())

	rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), int32(x+10), 140, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), int32(x+10), 158, 16, rl.Green)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
