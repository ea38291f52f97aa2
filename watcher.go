package resval

import "context"

// Watcher observes a source for dimension changes and emits raw payloads
// on a channel. Each payload is decoded with the engine's Codec into a
// Dimensions value.
type Watcher interface {
	// Watch begins observing the source and returns a channel that emits
	// a payload each time the screen is rotated or resized. The channel is
	// closed when the context is canceled or an unrecoverable error occurs.
	//
	// Unlike a config source, a Watcher does not need to emit the current
	// value first: the engine queries Provider.Dimensions on Start.
	Watch(ctx context.Context) (<-chan []byte, error)
}

// Provider reports the current screen size on demand and emits change
// payloads on rotation or resize.
type Provider interface {
	Watcher

	// Dimensions returns the current window size. It is called on every
	// sizing operation, so it must be cheap.
	Dimensions() (Dimensions, error)
}
