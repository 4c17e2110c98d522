package interaction

import (
	"fmt"
	"math"
	"testing"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type detectorFixture struct {
	detector *Detector
	query    *sliceQuery
	binding  *recordingBinding
	recorder *countingRecorder
	actor    *engine.GameObject
}

func newFixture(cfg Config, targets ...Target) *detectorFixture {
	f := &detectorFixture{
		query:    &sliceQuery{targets: targets},
		binding:  &recordingBinding{},
		recorder: newCountingRecorder(),
		actor:    engine.NewGameObject("Player"),
	}
	f.detector = NewDetector(cfg, Options{
		Actor:    f.actor,
		Query:    f.query,
		Prompt:   f.binding,
		Recorder: f.recorder,
	})
	f.binding.reset()
	return f
}

const frame = float32(1.0 / 60.0)

func TestDetectorInitialState(t *testing.T) {
	f := newFixture(DefaultConfig())

	assert.Equal(t, StateIdle, f.detector.State())
	assert.Nil(t, f.detector.Selection())
	assert.Zero(t, f.detector.CooldownRemaining())
	assert.False(t, f.detector.Prompt().IsVisible())
}

func TestDetectorPassesConfigToQuery(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radius = 4
	f := newFixture(cfg)

	f.detector.Tick(frame)

	assert.Equal(t, 1, f.query.calls)
	assert.Equal(t, float32(4), f.query.lastRange)
	assert.Equal(t, engine.LayerInteractable, f.query.lastMask)
}

// Radius 2.5, eligible targets at 1.0 and 2.0: the closer one is selected
// and its prompt shown.
func TestDetectorSelectsNearestAndShowsPrompt(t *testing.T) {
	near := newTarget("near", 1.0)
	far := newTarget("far", 2.0)
	f := newFixture(DefaultConfig(), far, near)

	f.detector.Tick(frame)

	assert.Equal(t, StateTargeting, f.detector.State())
	assert.Same(t, near, f.detector.Selection())
	assert.True(t, f.detector.Prompt().IsVisible())
	assert.Equal(t, near.prompt, f.detector.Prompt().Text())
	assert.Equal(t, []string{"text:" + near.prompt, "show"}, f.binding.calls)
}

func TestDetectorStableSelectionMakesNoUICalls(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)
	f.detector.Tick(frame)
	f.binding.reset()

	for i := 0; i < 5; i++ {
		f.detector.Tick(frame)
	}

	assert.Empty(t, f.binding.calls)
	assert.Equal(t, 1, f.recorder.selectionChanges)
}

// When the nearest target changes from A to B, exactly one hide and one
// show with B's text happen, in that order.
func TestDetectorSingleTransitionPerChange(t *testing.T) {
	a := newTarget("a", 1.0)
	b := newTarget("b", 2.0)
	f := newFixture(DefaultConfig(), a, b)
	f.detector.Tick(frame)
	f.binding.reset()

	a.pos = rl.Vector3{X: 10}
	f.detector.Tick(frame)

	assert.Same(t, b, f.detector.Selection())
	assert.Equal(t, []string{"hide", "text:" + b.prompt, "show"}, f.binding.calls)
	assert.Equal(t, 2, f.recorder.selectionChanges)
}

// The selected target turns ineligible: selection clears and the prompt hides.
func TestDetectorEligibilityFlipClearsSelection(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)
	f.detector.Tick(frame)
	f.binding.reset()

	cube.eligible = false
	f.detector.Tick(frame)

	assert.Equal(t, StateIdle, f.detector.State())
	assert.Nil(t, f.detector.Selection())
	assert.False(t, f.detector.Prompt().IsVisible())
	assert.Equal(t, []string{"hide"}, f.binding.calls)
}

func TestDetectorTargetLeavingQueryClearsSelection(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)
	f.detector.Tick(frame)

	f.query.targets = nil
	f.detector.Tick(frame)

	assert.Equal(t, StateIdle, f.detector.State())
	assert.False(t, f.detector.Prompt().IsVisible())
}

func TestDetectorSelectionEvents(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)
	var seen []Target
	f.detector.OnSelectionChanged.AddListener(func(t Target) { seen = append(seen, t) })

	f.detector.Tick(frame)
	f.detector.Tick(frame)
	f.query.targets = nil
	f.detector.Tick(frame)

	require.Len(t, seen, 2)
	assert.Same(t, cube, seen[0])
	assert.Nil(t, seen[1])
}

// Trigger while remaining == 0 with an eligible selection: Interact runs
// once, the cooldown restarts at 0.3 and the trigger is cleared.
func TestDetectorTriggerFires(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)
	f.detector.Tick(frame)

	f.detector.Trigger().Set()
	f.detector.Tick(0)

	assert.Equal(t, 1, cube.interactions)
	assert.Same(t, f.actor, cube.lastActor)
	assert.Equal(t, DefaultCooldown, f.detector.CooldownRemaining())
	assert.False(t, f.detector.Trigger().IsSet())
	assert.Equal(t, 1, f.recorder.triggers)
}

func TestDetectorCooldownAdvancesInTriggerTick(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)

	f.detector.Trigger().Set()
	f.detector.Tick(0.1)

	assert.Equal(t, 1, cube.interactions)
	assert.InDelta(t, 0.2, f.detector.CooldownRemaining(), 1e-6)
}

// Trigger while remaining = 0.1: no interaction, cooldown keeps draining.
func TestDetectorTriggerBlockedByCooldown(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)
	f.detector.Trigger().Set()
	f.detector.Tick(0.2)
	require.InDelta(t, 0.1, f.detector.CooldownRemaining(), 1e-6)

	f.detector.Trigger().Set()
	f.detector.Tick(0.05)

	assert.Equal(t, 1, cube.interactions)
	assert.InDelta(t, 0.05, f.detector.CooldownRemaining(), 1e-6)
	assert.Equal(t, 1, f.recorder.ignored[ReasonCooldown])
}

// After a successful trigger, ticks without a new press never re-fire.
func TestDetectorEdgeConsumption(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)
	f.detector.Trigger().Set()
	f.detector.Tick(frame)

	for i := 0; i < 60; i++ {
		f.detector.Tick(frame)
	}

	assert.Zero(t, f.detector.CooldownRemaining())
	assert.Equal(t, 1, cube.interactions)
}

func TestDetectorRepeatedPressesRespectCooldown(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)
	f.detector.cfg.DropUnreadyTriggers = true

	// Press every frame for one second at 60 fps.
	for i := 0; i < 60; i++ {
		f.detector.Trigger().Set()
		f.detector.Tick(frame)
	}

	// 0.3s debounce: fires at t=0, ~0.3, ~0.6, ~0.9
	assert.Equal(t, 4, cube.interactions)
}

// Default behaviour: a press during cooldown is retained and fires once the
// cooldown expires, even without a new press.
func TestDetectorUnreadyTriggerRetained(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)
	f.detector.Trigger().Set()
	f.detector.Tick(frame)

	f.detector.Trigger().Set()
	f.detector.Tick(frame)
	assert.True(t, f.detector.Trigger().IsSet(), "trigger left as-is while cooling down")
	assert.Equal(t, 1, cube.interactions)

	for i := 0; i < 30; i++ {
		f.detector.Tick(frame)
	}
	assert.Equal(t, 2, cube.interactions, "retained press fires after cooldown")
}

func TestDetectorUnreadyTriggerDropped(t *testing.T) {
	cube := newTarget("cube", 1.0)
	cfg := DefaultConfig()
	cfg.DropUnreadyTriggers = true
	f := newFixture(cfg, cube)
	f.detector.Trigger().Set()
	f.detector.Tick(frame)

	f.detector.Trigger().Set()
	f.detector.Tick(frame)
	assert.False(t, f.detector.Trigger().IsSet())

	for i := 0; i < 30; i++ {
		f.detector.Tick(frame)
	}
	assert.Equal(t, 1, cube.interactions)
}

func TestDetectorTriggerWithoutSelection(t *testing.T) {
	f := newFixture(DefaultConfig())

	f.detector.Trigger().Set()
	f.detector.Tick(frame)

	assert.True(t, f.detector.Trigger().IsSet())
	assert.Equal(t, 1, f.recorder.ignored[ReasonNoSelection])
}

// Eligibility is re-checked at trigger time within the same tick.
func TestDetectorIneligibleAtTriggerTime(t *testing.T) {
	cube := newTarget("cube", 1.0)
	calls := 0
	cube.eligibleFn = func() bool {
		calls++
		return calls%2 == 1 // eligible for selection, busy at trigger check
	}
	f := newFixture(DefaultConfig(), cube)

	f.detector.Trigger().Set()
	f.detector.Tick(frame)

	assert.Same(t, cube, f.detector.Selection())
	assert.Zero(t, cube.interactions)
	assert.Zero(t, f.detector.CooldownRemaining())
	assert.Equal(t, 1, f.recorder.ignored[ReasonIneligible])
}

func TestDetectorRefreshesPromptAfterInteraction(t *testing.T) {
	cube := newTarget("cube", 1.0)
	cube.onInteract = func() {
		cube.prompt = fmt.Sprintf("Press E to interact again (%d times)", cube.interactions)
	}
	f := newFixture(DefaultConfig(), cube)
	f.detector.Tick(frame)

	f.detector.Trigger().Set()
	f.detector.Tick(frame)
	f.binding.reset()
	f.detector.Tick(frame)

	assert.Equal(t, "Press E to interact again (1 times)", f.detector.Prompt().Text())
	assert.Equal(t, []string{"text:Press E to interact again (1 times)"}, f.binding.calls)
}

func TestDetectorOnInteractEvent(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)
	var fired []Target
	f.detector.OnInteract.AddListener(func(t Target) { fired = append(fired, t) })

	f.detector.Trigger().Set()
	f.detector.Tick(frame)

	require.Len(t, fired, 1)
	assert.Same(t, cube, fired[0])
}

func TestDetectorIsolatesPanickingTargets(t *testing.T) {
	broken := newTarget("broken", 0.5)
	broken.panicOn = "Interact"
	f := newFixture(DefaultConfig(), broken)

	f.detector.Trigger().Set()
	assert.NotPanics(t, func() { f.detector.Tick(frame) })

	assert.Equal(t, 1, f.recorder.panics["Interact"])
	assert.False(t, f.detector.Trigger().IsSet(), "attempted interaction still consumes the trigger")
	assert.InDelta(t, DefaultCooldown-frame, f.detector.CooldownRemaining(), 1e-6)
}

func TestDetectorPanickingPromptTextKeepsSelection(t *testing.T) {
	broken := newTarget("broken", 0.5)
	broken.panicOn = "PromptText"
	f := newFixture(DefaultConfig(), broken)

	assert.NotPanics(t, func() { f.detector.Tick(frame) })

	assert.Same(t, broken, f.detector.Selection())
	assert.False(t, f.detector.Prompt().IsVisible())
	assert.Equal(t, 1, f.recorder.panics["PromptText"])
}

func TestDetectorSurvivesQueryPanic(t *testing.T) {
	d := NewDetector(DefaultConfig(), Options{
		Query: QueryFunc(func(rl.Vector3, float32, engine.LayerMask) []Target {
			panic("physics not ready")
		}),
	})

	assert.NotPanics(t, func() { d.Tick(frame) })
	assert.Equal(t, StateIdle, d.State())
}

func TestDetectorWithoutPromptBinding(t *testing.T) {
	cube := newTarget("cube", 1.0)
	d := NewDetector(DefaultConfig(), Options{Query: &sliceQuery{targets: []Target{cube}}})

	d.Trigger().Set()
	d.Tick(frame)

	assert.Same(t, cube, d.Selection())
	assert.False(t, d.Prompt().Enabled())
	assert.Equal(t, 1, cube.interactions)
}

func TestDetectorOriginFollowsActor(t *testing.T) {
	left := &fakeTarget{name: "left", pos: rl.Vector3{X: -2}, eligible: true}
	right := &fakeTarget{name: "right", pos: rl.Vector3{X: 2}, eligible: true}
	f := newFixture(DefaultConfig(), left, right)

	f.actor.Transform.Position = rl.Vector3{X: 1.5}
	f.detector.Tick(frame)
	assert.Same(t, right, f.detector.Selection())

	f.actor.Transform.Position = rl.Vector3{X: -1.5}
	f.detector.Tick(frame)
	assert.Same(t, left, f.detector.Selection())
}

func TestDetectorSetRadius(t *testing.T) {
	cube := newTarget("cube", 3.0)
	f := newFixture(DefaultConfig(), cube)
	f.detector.Tick(frame)
	require.Nil(t, f.detector.Selection())

	f.detector.SetRadius(3.5)
	f.detector.Tick(frame)

	assert.Same(t, cube, f.detector.Selection())
	assert.Equal(t, float32(3.5), f.detector.Config().Radius)
}

func TestDetectorRecordsCooldownGauge(t *testing.T) {
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), cube)

	f.detector.Trigger().Set()
	f.detector.Tick(0.1)

	assert.InDelta(t, 0.2, f.recorder.lastCooldown, 1e-6)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "Targeting", StateTargeting.String())
	assert.Equal(t, "State(7)", State(7).String())
}

func TestDetectorNaNCooldownDoesNotLockTriggers(t *testing.T) {
	cube := newTarget("cube", 1.0)
	cfg := DefaultConfig()
	cfg.Cooldown = float32(math.NaN())
	f := newFixture(cfg, cube)

	for i := 0; i < 3; i++ {
		f.detector.Trigger().Set()
		f.detector.Tick(frame)
	}

	assert.Equal(t, 3, cube.interactions)
	assert.Equal(t, float32(0), f.detector.Config().Cooldown)
	assert.True(t, f.detector.CooldownRemaining() == 0)
}

func TestDetectorClampsNonFiniteRadius(t *testing.T) {
	cube := newTarget("cube", 0)
	cfg := DefaultConfig()
	cfg.Radius = float32(math.NaN())
	f := newFixture(cfg, cube)
	f.detector.Tick(frame)

	// clamped to zero, so only a target at the origin is in range
	assert.Equal(t, float32(0), f.detector.Config().Radius)
	assert.Same(t, cube, f.detector.Selection())

	f.detector.SetRadius(float32(math.Inf(1)))
	assert.Equal(t, float32(0), f.detector.Config().Radius)
}

func TestDetectorSkipsIncomparableTargets(t *testing.T) {
	odd := valueTarget{tags: []string{"crate"}, pos: rl.Vector3{X: 0.5}}
	cube := newTarget("cube", 1.0)
	f := newFixture(DefaultConfig(), odd, cube)

	assert.NotPanics(t, func() {
		f.detector.Tick(frame)
		f.detector.Tick(frame)
	})

	assert.Same(t, cube, f.detector.Selection())
	assert.Equal(t, 2, f.recorder.panics["compare"])
}
