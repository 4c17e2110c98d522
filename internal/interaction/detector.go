package interaction

import (
	"fmt"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// DefaultRadius is the detection range used when none is configured.
const DefaultRadius float32 = 2.5

// Config holds the detector's tunables.
type Config struct {
	Radius    float32
	LayerMask engine.LayerMask
	Cooldown  float32
	// DropUnreadyTriggers consumes a trigger that arrives while nothing can
	// fire (cooldown active, no selection, target busy). When false the
	// trigger stays set until it fires or the input layer clears it.
	DropUnreadyTriggers bool
}

func DefaultConfig() Config {
	return Config{
		Radius:    DefaultRadius,
		LayerMask: engine.LayerInteractable,
		Cooldown:  DefaultCooldown,
	}
}

// State is the detector's targeting state.
type State int

const (
	StateIdle State = iota
	StateTargeting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateTargeting:
		return "Targeting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options wires the detector to its collaborators. Only Query is needed
// for selection; a nil Prompt is logged and disables prompts.
type Options struct {
	// Actor is passed to Target.Interact and supplies the query origin.
	Actor    *engine.GameObject
	Query    SpatialQuery
	Prompt   PromptBinding
	Recorder Recorder
	Logger   *zap.SugaredLogger
}

// Detector runs the per-tick pipeline: query, select, reconcile the prompt,
// consume the trigger, advance the cooldown.
type Detector struct {
	cfg      Config
	actor    *engine.GameObject
	query    SpatialQuery
	prompt   *Prompt
	recorder Recorder
	log      *zap.SugaredLogger

	trigger  Trigger
	cooldown Cooldown
	current  Target

	// OnSelectionChanged fires with the new selection (nil when cleared).
	OnSelectionChanged engine.EventWithArg[Target]
	// OnInteract fires after a target's Interact was invoked.
	OnInteract engine.EventWithArg[Target]
}

func NewDetector(cfg Config, opts Options) *Detector {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if !nonNegativeFinite(cfg.Cooldown) {
		cfg.Cooldown = 0
	}
	if !nonNegativeFinite(cfg.Radius) {
		cfg.Radius = 0
	}
	return &Detector{
		cfg:      cfg,
		actor:    opts.Actor,
		query:    opts.Query,
		prompt:   NewPrompt(opts.Prompt, log),
		recorder: recorder,
		log:      log,
	}
}

// Tick runs one pipeline pass. deltaTime is the elapsed time in seconds
// since the previous tick.
func (d *Detector) Tick(deltaTime float32) {
	origin := d.Origin()
	next := selectNearest(origin, d.cfg.Radius, d.candidates(origin), d.targetPanicked)

	if next != d.current {
		d.changeSelection(next)
	} else if d.current != nil {
		d.refreshPrompt()
	}

	d.handleTrigger()

	d.cooldown.Advance(deltaTime)
	d.recorder.CooldownRemaining(d.cooldown.Remaining())
}

func (d *Detector) candidates(origin rl.Vector3) (result []Target) {
	if d.query == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			d.log.Errorf("InteractionDetector: spatial query panicked: %v", r)
			result = nil
		}
	}()
	return d.query.Query(origin, d.cfg.Radius, d.cfg.LayerMask)
}

func (d *Detector) changeSelection(next Target) {
	if d.current != nil {
		d.prompt.Hide()
	}

	d.current = next

	if next != nil {
		if text, ok := safePromptText(next, d.targetPanicked); ok {
			d.prompt.Show(text)
		}
	}

	d.recorder.SelectionChanged()
	d.OnSelectionChanged.Invoke(next)
}

// refreshPrompt picks up text changes of a target that stays selected,
// e.g. a use counter that advanced after an interaction.
func (d *Detector) refreshPrompt() {
	text, ok := safePromptText(d.current, d.targetPanicked)
	if !ok || (d.prompt.IsVisible() && text == d.prompt.Text()) {
		return
	}
	d.prompt.Show(text)
}

func (d *Detector) handleTrigger() {
	if !d.trigger.IsSet() {
		return
	}
	if d.current == nil {
		d.ignoreTrigger(ReasonNoSelection)
		return
	}
	if !d.cooldown.IsReady() {
		d.ignoreTrigger(ReasonCooldown)
		return
	}
	// Eligibility may have changed since selection earlier in this tick.
	if eligible, ok := safeCanInteract(d.current, d.targetPanicked); !ok || !eligible {
		d.ignoreTrigger(ReasonIneligible)
		return
	}

	target := d.current
	safeInteract(target, d.actor, d.targetPanicked)
	d.cooldown.Reset(d.cfg.Cooldown)
	d.trigger.Consume()

	d.recorder.Triggered()
	d.OnInteract.Invoke(target)
}

func (d *Detector) ignoreTrigger(reason string) {
	if d.cfg.DropUnreadyTriggers {
		d.trigger.Consume()
	}
	d.recorder.TriggerIgnored(reason)
}

func (d *Detector) targetPanicked(t Target, method string, r any) {
	d.log.Warnf("InteractionDetector: target %T panicked in %s: %v", t, method, r)
	d.recorder.TargetPanicked(method)
}

// Origin is the point the detector scans around: the actor's world position.
func (d *Detector) Origin() rl.Vector3 {
	if d.actor == nil {
		return rl.Vector3{}
	}
	return d.actor.WorldPosition()
}

// Trigger returns the input flag for the input layer to set.
func (d *Detector) Trigger() *Trigger {
	return &d.trigger
}

// Selection is the currently selected target, or nil.
func (d *Detector) Selection() Target {
	return d.current
}

func (d *Detector) State() State {
	if d.current == nil {
		return StateIdle
	}
	return StateTargeting
}

func (d *Detector) Prompt() *Prompt {
	return d.prompt
}

// CooldownRemaining is the time left before the next trigger can fire.
func (d *Detector) CooldownRemaining() float32 {
	return d.cooldown.Remaining()
}

func (d *Detector) Config() Config {
	return d.cfg
}

// SetRadius changes the detection range from the next tick on.
func (d *Detector) SetRadius(radius float32) {
	if !nonNegativeFinite(radius) {
		radius = 0
	}
	d.cfg.Radius = radius
}
