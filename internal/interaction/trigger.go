package interaction

// Trigger is the "interact pressed this tick" flag. Input code sets it; the
// detector consumes it when an interaction fires.
type Trigger struct {
	pressed bool
}

func (t *Trigger) Set() {
	t.pressed = true
}

func (t *Trigger) IsSet() bool {
	return t.pressed
}

// Consume clears the flag and reports whether it was set.
func (t *Trigger) Consume() bool {
	was := t.pressed
	t.pressed = false
	return was
}
