// Package term is a top-down terminal frontend for the interaction world.
package term

import (
	"context"
	"time"

	"interact3d/internal/audio"
	"interact3d/internal/interaction"
	"interact3d/internal/world"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	// MoveStep is how far one key press moves the player.
	MoveStep float32 = 0.25
	// FrameTime is the tick interval, ~60 FPS.
	FrameTime = 16 * time.Millisecond
)

// App drives a world from terminal input and draws it with tcell.
type App struct {
	screen tcell.Screen
	world  *world.World
	chime  *audio.Chime
	log    *zap.SugaredLogger

	// ColsPerUnit and RowsPerUnit map world X and Z to cells; terminal
	// cells are roughly twice as tall as they are wide.
	ColsPerUnit float32
	RowsPerUnit float32

	interactions int
}

// New wraps an initialised screen and a built world. chime may be nil.
func New(screen tcell.Screen, w *world.World, chime *audio.Chime, log *zap.SugaredLogger) *App {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	a := &App{
		screen:      screen,
		world:       w,
		chime:       chime,
		log:         log,
		ColsPerUnit: 4,
		RowsPerUnit: 2,
	}
	w.Detector.Detector().OnInteract.AddListener(a.onInteract)
	return a
}

// Run loops until ctx is cancelled or the user quits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(FrameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go a.pollEvents(ctx, eventChan)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			a.Tick(float32(now.Sub(last).Seconds()))
			last = now
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or ctx is
// done.
func (a *App) pollEvents(ctx context.Context, out chan<- tcell.Event) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// HandleEvent applies one input event. It returns false when the user asked
// to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.move(0, -1)
	case tcell.KeyDown:
		a.move(0, 1)
	case tcell.KeyLeft:
		a.move(-1, 0)
	case tcell.KeyRight:
		a.move(1, 0)
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return false
		case 'e', 'E':
			a.world.Press()
		case 'w', 'W':
			a.move(0, -1)
		case 's', 'S':
			a.move(0, 1)
		case 'a', 'A':
			a.move(-1, 0)
		case 'd', 'D':
			a.move(1, 0)
		}
	}
	return true
}

func (a *App) move(dx, dz float32) {
	p := &a.world.Player.Transform.Position
	p.X += dx * MoveStep
	p.Z += dz * MoveStep
}

// Tick advances the world and redraws.
func (a *App) Tick(deltaTime float32) {
	a.world.Update(deltaTime)
	a.Render()
}

func (a *App) onInteract(t interaction.Target) {
	a.interactions++
	if a.chime == nil || t == nil {
		return
	}
	listener := audio.Listener{
		Position: a.world.Player.Transform.Position,
		Forward:  rl.Vector3{Z: -1},
		Right:    rl.Vector3{X: 1},
	}
	radius := a.world.Detector.Detector().Config().Radius
	volume, pan := audio.Spatialize(listener, t.Anchor(), 1, 2*radius)
	a.chime.Play(volume, pan)
}
