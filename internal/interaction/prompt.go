package interaction

import (
	"go.uber.org/zap"
)

// PromptBinding is the UI element that displays the prompt.
type PromptBinding interface {
	SetText(text string)
	SetVisible(visible bool)
}

// Prompt is the single-slot interaction prompt. Without a binding (or after
// the binding panics) Show and Hide are no-ops for the rest of the session.
type Prompt struct {
	binding  PromptBinding
	log      *zap.SugaredLogger
	visible  bool
	text     string
	disabled bool
}

// NewPrompt wraps binding and hides it. A nil binding is logged once.
func NewPrompt(binding PromptBinding, log *zap.SugaredLogger) *Prompt {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	p := &Prompt{binding: binding, log: log}
	if binding == nil {
		p.disabled = true
		log.Errorf("Prompt: UI binding is missing, prompts are disabled")
		return p
	}
	p.call("SetVisible", func() { binding.SetVisible(false) })
	return p
}

// Show displays text. Repeating the current text is a no-op.
func (p *Prompt) Show(text string) {
	if p.disabled {
		return
	}
	if p.visible && p.text == text {
		return
	}
	if !p.call("SetText", func() { p.binding.SetText(text) }) {
		return
	}
	if !p.visible && !p.call("SetVisible", func() { p.binding.SetVisible(true) }) {
		return
	}
	p.text = text
	p.visible = true
}

// Hide hides the prompt. Hiding an already hidden prompt does nothing.
func (p *Prompt) Hide() {
	if p.disabled || !p.visible {
		return
	}
	if !p.call("SetVisible", func() { p.binding.SetVisible(false) }) {
		return
	}
	p.visible = false
}

func (p *Prompt) IsVisible() bool {
	return p.visible
}

// Text is the last text shown; it is kept after Hide.
func (p *Prompt) Text() string {
	return p.text
}

// Enabled is false when there is no usable binding.
func (p *Prompt) Enabled() bool {
	return !p.disabled
}

// call runs fn against the binding and disables the prompt if it panics.
func (p *Prompt) call(method string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.disabled = true
			p.visible = false
			p.log.Errorf("Prompt: binding panicked in %s, prompts are disabled: %v", method, r)
			ok = false
		}
	}()
	fn()
	return true
}
