package resval

// State represents the lifecycle state of an Engine.
type State int32

const (
	// StateIdle indicates the Engine has not been started. Sizing calls
	// work, but dimension changes are not tracked.
	StateIdle State = iota

	// StateWatching indicates the Engine holds a live subscription to
	// dimension changes.
	StateWatching

	// StateStopped indicates the subscription was released. Sizing calls
	// keep working against freshly queried dimensions.
	StateStopped
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWatching:
		return "watching"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
