package term

import (
	"fmt"
	"math"

	"interact3d/internal/components"
	"interact3d/internal/engine"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	glyphPlayer = '@'
	glyphCube   = '■'
	glyphSphere = '●'
	glyphRing   = '·'
)

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePrompt = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleRing   = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Render draws the status line, the map around the player, the help line and
// the prompt.
func (a *App) Render() {
	a.screen.Clear()
	w, h := a.screen.Size()
	if w <= 0 || h < 4 {
		a.screen.Show()
		return
	}

	d := a.world.Detector.Detector()
	status := fmt.Sprintf("%s  cooldown %.2fs  radius %.1f  used %d",
		d.State(), d.CooldownRemaining(), d.Config().Radius, a.interactions)
	drawText(a.screen, 0, 0, w, status, styleStatus)

	a.drawMap(w, h)

	drawText(a.screen, 0, h-2, w, "WASD/arrows move  E interact  Q quit", styleHelp)

	if label := a.world.PromptLabel(); label != nil && label.Shown() {
		text := " " + label.Text + " "
		x := (w - len([]rune(text))) / 2
		if x < 0 {
			x = 0
		}
		drawText(a.screen, x, h-1, w-x, text, stylePrompt)
	}

	a.screen.Show()
}

// map occupies rows 1..h-3
func (a *App) drawMap(w, h int) {
	top, bottom := 1, h-3
	center := a.world.Player.Transform.Position
	radius := a.world.Detector.Detector().Config().Radius

	// detection ring
	halfCell := 0.5 / a.ColsPerUnit
	for y := top; y <= bottom; y++ {
		for x := 0; x < w; x++ {
			pos := a.cellToWorld(x, y, w, h, center)
			dist := rl.Vector3Distance(rl.Vector3{X: pos.X, Z: pos.Z}, rl.Vector3{X: center.X, Z: center.Z})
			if float32(math.Abs(float64(dist-radius))) <= halfCell {
				a.screen.SetContent(x, y, glyphRing, nil, styleRing)
			}
		}
	}

	for _, obj := range a.world.Scene.GameObjects {
		renderer := engine.GetComponent[*components.MeshRenderer](obj)
		if renderer == nil || !obj.Active {
			continue
		}
		x, y, ok := a.worldToCell(obj.WorldPosition(), w, h, center)
		if !ok || y < top || y > bottom {
			continue
		}
		glyph := glyphCube
		if renderer.MeshType == components.MeshSphere {
			glyph = glyphSphere
		}
		c := renderer.Color
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		if renderer.Highlight {
			style = style.Reverse(true)
		}
		a.screen.SetContent(x, y, glyph, nil, style)
	}

	if x, y, ok := a.worldToCell(center, w, h, center); ok {
		a.screen.SetContent(x, y, glyphPlayer, nil, stylePlayer)
	}
}

// worldToCell projects the XZ plane onto the screen, centred on center.
func (a *App) worldToCell(pos rl.Vector3, w, h int, center rl.Vector3) (int, int, bool) {
	cx, cy := w/2, (h-2)/2
	x := cx + int(math.Round(float64((pos.X-center.X)*a.ColsPerUnit)))
	y := cy + int(math.Round(float64((pos.Z-center.Z)*a.RowsPerUnit)))
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

func (a *App) cellToWorld(x, y, w, h int, center rl.Vector3) rl.Vector3 {
	cx, cy := w/2, (h-2)/2
	return rl.Vector3{
		X: center.X + float32(x-cx)/a.ColsPerUnit,
		Z: center.Z + float32(y-cy)/a.RowsPerUnit,
	}
}

func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= maxWidth {
			return
		}
		s.SetContent(x+col, y, r, nil, style)
		col++
	}
}
