package interaction

import (
	"fmt"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeTarget struct {
	name         string
	pos          rl.Vector3
	eligible     bool
	prompt       string
	interactions int
	lastActor    *engine.GameObject
	panicOn      string
	onInteract   func()
	eligibleFn   func() bool
}

func newTarget(name string, x float32) *fakeTarget {
	return &fakeTarget{
		name:     name,
		pos:      rl.Vector3{X: x},
		eligible: true,
		prompt:   "Press E to use " + name,
	}
}

func (f *fakeTarget) maybePanic(method string) {
	if f.panicOn == method {
		panic(fmt.Sprintf("%s broke in %s", f.name, method))
	}
}

func (f *fakeTarget) PromptText() string {
	f.maybePanic("PromptText")
	return f.prompt
}

func (f *fakeTarget) Interact(actor *engine.GameObject) {
	f.maybePanic("Interact")
	f.interactions++
	f.lastActor = actor
	if f.onInteract != nil {
		f.onInteract()
	}
}

func (f *fakeTarget) CanInteract() bool {
	f.maybePanic("CanInteract")
	if f.eligibleFn != nil {
		return f.eligibleFn()
	}
	return f.eligible
}

func (f *fakeTarget) Anchor() rl.Vector3 {
	f.maybePanic("Anchor")
	return f.pos
}

// recordingBinding logs every UI call in order.
type recordingBinding struct {
	calls   []string
	text    string
	visible bool
}

func (b *recordingBinding) SetText(text string) {
	b.calls = append(b.calls, "text:"+text)
	b.text = text
}

func (b *recordingBinding) SetVisible(visible bool) {
	if visible {
		b.calls = append(b.calls, "show")
	} else {
		b.calls = append(b.calls, "hide")
	}
	b.visible = visible
}

func (b *recordingBinding) reset() {
	b.calls = nil
}

type panickyBinding struct{}

func (panickyBinding) SetText(string)  { panic("label destroyed") }
func (panickyBinding) SetVisible(bool) {}

// sliceQuery returns whatever targets it currently holds, ignoring origin.
type sliceQuery struct {
	targets   []Target
	lastMask  engine.LayerMask
	lastRange float32
	calls     int
}

func (q *sliceQuery) Query(origin rl.Vector3, radius float32, mask engine.LayerMask) []Target {
	q.calls++
	q.lastMask = mask
	q.lastRange = radius
	return q.targets
}

type countingRecorder struct {
	selectionChanges int
	triggers         int
	ignored          map[string]int
	panics           map[string]int
	lastCooldown     float32
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{ignored: map[string]int{}, panics: map[string]int{}}
}

func (r *countingRecorder) SelectionChanged()                 { r.selectionChanges++ }
func (r *countingRecorder) Triggered()                        { r.triggers++ }
func (r *countingRecorder) TriggerIgnored(reason string)      { r.ignored[reason]++ }
func (r *countingRecorder) TargetPanicked(method string)      { r.panics[method]++ }
func (r *countingRecorder) CooldownRemaining(seconds float32) { r.lastCooldown = seconds }

// valueTarget has value receivers and a slice field, so == on it panics.
type valueTarget struct {
	tags []string
	pos  rl.Vector3
}

func (v valueTarget) PromptText() string { return "Press E" }

func (v valueTarget) CanInteract() bool { return true }

func (v valueTarget) Interact(actor *engine.GameObject) {}

func (v valueTarget) Anchor() rl.Vector3 { return v.pos }
