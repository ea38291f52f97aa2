package resval

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Process reads and applies the next change payload from the watcher.
// This is only available in sync mode and is used for deterministic testing.
// Returns false if no payload is available or the channel is closed.
func (e *Engine) Process(ctx context.Context) bool {
	if !e.syncMode {
		return false
	}

	e.mu.Lock()
	changes := e.changes
	e.mu.Unlock()
	if changes == nil {
		return false
	}

	select {
	case raw, ok := <-changes:
		if !ok {
			e.markStopped(ctx)
			return false
		}
		e.apply(ctx, raw)
		return true
	default:
		return false
	}
}

// apply decodes a change payload and, if it carries a usable size, makes
// it the tracked size and invalidates the cache. Malformed payloads are
// dropped without a warning.
func (e *Engine) apply(ctx context.Context, raw []byte) bool {
	var next Dimensions
	if err := e.codec.Unmarshal(raw, &next); err != nil {
		capitan.Emit(ctx, DimensionsIgnored,
			KeyError.Field(err.Error()),
		)
		return false
	}
	if !next.Valid() {
		capitan.Emit(ctx, DimensionsIgnored,
			KeyDimensions.Field(next.String()),
		)
		return false
	}

	e.mu.Lock()
	prev := e.tracked
	e.tracked = next
	caching := e.cfg.EnableCaching
	e.mu.Unlock()

	if caching {
		e.clearCache(ctx, reasonDimensions)
	}

	capitan.Emit(ctx, DimensionsChanged,
		KeyPreviousDimensions.Field(prev.String()),
		KeyDimensions.Field(next.String()),
		KeyOrientation.Field(next.Orientation().String()),
	)
	if e.metrics != nil {
		e.metrics.OnDimensionsChanged(prev, next)
	}
	return true
}

// watch applies change payloads until the context is canceled or the
// watcher closes its channel. With a debounce configured, bursts of
// payloads are coalesced and only the last one is applied.
func (e *Engine) watch(ctx context.Context, changes <-chan []byte, done chan struct{}) {
	defer close(done)
	defer e.markStopped(ctx)

	var (
		timer      clockz.Timer
		pending    []byte
		hasPending bool
	)

	for {
		// Get timer channel or nil if no timer
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case raw, ok := <-changes:
			if !ok {
				// Channel closed, apply any pending change
				if hasPending {
					e.apply(ctx, pending)
				}
				return
			}

			if e.debounce <= 0 {
				e.apply(ctx, raw)
				continue
			}

			pending = raw
			hasPending = true

			// Reset or start debounce timer
			if timer == nil {
				timer = e.clock.NewTimer(e.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(e.debounce)
			}

		case <-timerC:
			if hasPending {
				e.apply(ctx, pending)
				hasPending = false
			}
		}
	}
}
