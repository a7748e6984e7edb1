package spheretext

// State is the lifecycle state of a SphereText.
type State int32

const (
	// StateUninitialized is the state before Mount.
	StateUninitialized State = iota

	// StateAwaitingTypeface is the state while the typeface loads. Text
	// changes are recorded but not built.
	StateAwaitingTypeface

	// StateReady is the state once the typeface has loaded. Text changes
	// are built immediately.
	StateReady

	// StateFailed is the state after the typeface failed to load. The
	// scene keeps rendering without spheres.
	StateFailed

	// StateTornDown is the final state.
	StateTornDown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateAwaitingTypeface:
		return "AwaitingTypeface"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	case StateTornDown:
		return "TornDown"
	default:
		return "Unknown"
	}
}
