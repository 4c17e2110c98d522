package interaction

import (
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Every call into a Target goes through one of these so a single broken
// target cannot abort a tick. ok is false when the call panicked.

func safeCanInteract(t Target, onPanic func(Target, string, any)) (eligible, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			eligible, ok = false, false
			report(onPanic, t, "CanInteract", r)
		}
	}()
	return t.CanInteract(), true
}

func safeAnchor(t Target, onPanic func(Target, string, any)) (anchor rl.Vector3, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			anchor, ok = rl.Vector3{}, false
			report(onPanic, t, "Anchor", r)
		}
	}()
	return t.Anchor(), true
}

func safePromptText(t Target, onPanic func(Target, string, any)) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
			report(onPanic, t, "PromptText", r)
		}
	}()
	return t.PromptText(), true
}

func safeInteract(t Target, actor *engine.GameObject, onPanic func(Target, string, any)) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			report(onPanic, t, "Interact", r)
		}
	}()
	t.Interact(actor)
	return true
}

// safeComparable reports whether t can be compared with ==. Value targets
// holding slices, maps or funcs cannot, and the detector compares the
// selection every tick.
func safeComparable(t Target, onPanic func(Target, string, any)) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			report(onPanic, t, "compare", r)
		}
	}()
	same := t
	return t == same
}

func report(onPanic func(Target, string, any), t Target, method string, r any) {
	if onPanic != nil {
		onPanic(t, method, r)
	}
}
