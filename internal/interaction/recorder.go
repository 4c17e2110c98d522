package interaction

// Reasons passed to Recorder.TriggerIgnored.
const (
	ReasonNoSelection = "no_selection"
	ReasonCooldown    = "cooldown"
	ReasonIneligible  = "ineligible"
)

// Recorder receives pipeline counters. Implementations must be cheap; they
// are called from inside a tick.
type Recorder interface {
	SelectionChanged()
	Triggered()
	TriggerIgnored(reason string)
	TargetPanicked(method string)
	CooldownRemaining(seconds float32)
}

type nopRecorder struct{}

func (nopRecorder) SelectionChanged()         {}
func (nopRecorder) Triggered()                {}
func (nopRecorder) TriggerIgnored(string)     {}
func (nopRecorder) TargetPanicked(string)     {}
func (nopRecorder) CooldownRemaining(float32) {}
