package resval

import "github.com/zoobzio/capitan"

// Field keys for Engine events.
var (
	// KeyState is the current state of the Engine.
	KeyState = capitan.NewStringKey("state")

	// KeyDimensions is a screen size formatted as WIDTHxHEIGHT.
	KeyDimensions = capitan.NewStringKey("dimensions")

	// KeyPreviousDimensions is the screen size before a change.
	KeyPreviousDimensions = capitan.NewStringKey("previous_dimensions")

	// KeyOrientation is the orientation after a change.
	KeyOrientation = capitan.NewStringKey("orientation")

	// KeyPlatform is the host OS family.
	KeyPlatform = capitan.NewStringKey("platform")

	// KeyCode is the Warning code.
	KeyCode = capitan.NewStringKey("code")

	// KeyMessage is the Warning message.
	KeyMessage = capitan.NewStringKey("message")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyEntries is the number of cache entries dropped.
	KeyEntries = capitan.NewIntKey("entries")

	// KeyReason names what triggered a cache clear.
	KeyReason = capitan.NewStringKey("reason")

	// KeyStandardHeight is the configured standard screen height.
	KeyStandardHeight = capitan.NewStringKey("standard_height")

	// KeyDebounce is the configured debounce duration.
	KeyDebounce = capitan.NewDurationKey("debounce")
)

// Reasons attached to CacheCleared.
const (
	reasonDimensions = "dimensions"
	reasonConfigure  = "configure"
	reasonStop       = "stop"
)
