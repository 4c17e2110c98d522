package game

import (
	"fmt"
	"time"

	"interact3d/internal/audio"
	"interact3d/internal/camera"
	"interact3d/internal/config"
	"interact3d/internal/interaction"
	"interact3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// ScenePath is where F5 writes a snapshot of the running scene.
const ScenePath = "scene.yaml"

type Game struct {
	Config    *config.Config
	World     *world.World
	Camera    *camera.Follow
	Chime     *audio.Chime
	DebugMode bool

	recorder interaction.Recorder
	log      *zap.SugaredLogger
	hovered  string
	status   string
	statusAt float64

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New prepares a game for cfg. recorder may be nil.
func New(cfg *config.Config, recorder interaction.Recorder, log *zap.SugaredLogger) *Game {
	w := world.New()
	w.SetLogger(log)
	return &Game{
		Config:   cfg,
		World:    w,
		Camera:   camera.New(),
		Chime:    audio.NewChime(log),
		recorder: recorder,
		log:      log,
	}
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Proximity Interaction Demo")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)

	if err := g.World.Build(g.Config, g.recorder); err != nil {
		return err
	}
	g.World.Detector.Detector().OnInteract.AddListener(g.playChime)

	if g.Config.Audio.Enabled {
		_ = g.Chime.Init() // logged, game runs without sound
		defer g.Chime.Close()
	}

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.handleCamera()
	g.movePlayer(deltaTime)

	// Interaction input is edge-triggered.
	if rl.IsKeyPressed(rl.KeyE) {
		g.World.Press()
	}

	g.World.Update(deltaTime)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		g.saveScene()
	}

	g.updateHover()

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) handleCamera() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		g.Camera.Rotate(delta.X, delta.Y)
	}
	var yaw float32
	if rl.IsKeyDown(rl.KeyLeft) {
		yaw -= 1
	}
	if rl.IsKeyDown(rl.KeyRight) {
		yaw += 1
	}
	g.Camera.Rotate(yaw*6, 0)
}

func (g *Game) movePlayer(deltaTime float32) {
	var forward, right float32
	if rl.IsKeyDown(rl.KeyW) {
		forward += 1
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward -= 1
	}
	if rl.IsKeyDown(rl.KeyD) {
		right += 1
	}
	if rl.IsKeyDown(rl.KeyA) {
		right -= 1
	}
	if forward == 0 && right == 0 {
		return
	}
	dir := g.Camera.Move(forward, right)
	player := g.World.Player
	player.Transform.Position = rl.Vector3Add(player.Transform.Position, rl.Vector3Scale(dir, g.Config.Scene.Player.Speed*deltaTime))
}

func (g *Game) updateHover() {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), g.Camera.GetRaylibCamera(g.World.Player.Transform.Position))
	g.hovered = ""
	if hit, ok := g.World.Grid.Raycast(ray.Position, ray.Direction, 100, g.World.Detector.Detector().Config().LayerMask); ok {
		g.hovered = hit.GameObject.Name
	}
}

func (g *Game) playChime(t interaction.Target) {
	if t == nil {
		return
	}
	forward, right := g.Camera.Directions()
	listener := audio.Listener{Position: g.World.Player.Transform.Position, Forward: forward, Right: right}
	volume, pan := audio.Spatialize(listener, t.Anchor(), 1, 2*g.World.Detector.Detector().Config().Radius)
	g.Chime.Play(volume, pan)
}

func (g *Game) saveScene() {
	if err := g.World.SaveScene(ScenePath, *g.Config); err != nil {
		g.log.Errorf("Game: %v", err)
		g.setStatus(fmt.Sprintf("Save failed: %v", err))
		return
	}
	g.setStatus("Scene saved to " + ScenePath)
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusAt = rl.GetTime()
}

func (g *Game) Draw() {
	camera := g.Camera.GetRaylibCamera(g.World.Player.Transform.Position)

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.drawScene()
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}
