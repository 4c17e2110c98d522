package components

import (
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAlignment controls horizontal text alignment
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// UIText displays text on screen. It doubles as the interaction prompt
// label through SetText and SetVisible.
type UIText struct {
	engine.BaseComponent

	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
	Visible   bool
}

func NewUIText() *UIText {
	return &UIText{
		Text:      "Text",
		FontSize:  20,
		Color:     rl.White,
		Alignment: TextAlignLeft,
		Visible:   true,
	}
}

func (t *UIText) SetText(text string) {
	t.Text = text
}

func (t *UIText) SetVisible(visible bool) {
	t.Visible = visible
}

// Shown reports whether Draw would render anything.
func (t *UIText) Shown() bool {
	if !t.Visible || t.Text == "" {
		return false
	}
	g := t.GetGameObject()
	return g == nil || g.Active
}

// Draw renders the text within the given rect
func (t *UIText) Draw(rect rl.Rectangle) {
	if !t.Shown() {
		return
	}

	// Measure text for alignment
	textWidth := float32(rl.MeasureText(t.Text, t.FontSize))

	var x float32
	switch t.Alignment {
	case TextAlignLeft:
		x = rect.X
	case TextAlignCenter:
		x = rect.X + (rect.Width-textWidth)/2
	case TextAlignRight:
		x = rect.X + rect.Width - textWidth
	}

	// Vertically center text in rect
	y := rect.Y + (rect.Height-float32(t.FontSize))/2

	rl.DrawText(t.Text, int32(x), int32(y), t.FontSize, t.Color)
}
