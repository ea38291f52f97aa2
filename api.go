package resval

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Engine converts design-time sizes into values for the current screen.
// It owns the configuration, the value cache and the single subscription
// to dimension changes. Sizing methods are safe to call from any
// goroutine, before Start and after Stop.
type Engine struct {
	provider Provider
	platform Platform
	probe    Probe
	codec    Codec
	debounce time.Duration
	syncMode bool
	clock    clockz.Clock
	metrics  MetricsProvider

	state       atomic.Int32
	lastWarning atomic.Pointer[Warning]
	warnings    *warningRing
	cache       *valueCache

	mu      sync.Mutex
	cfg     Config
	tracked Dimensions
	started bool
	cancel  context.CancelFunc
	done    chan struct{}

	// For sync mode: channel to receive changes
	changes <-chan []byte
}

// New creates an Engine reading screen sizes from provider.
//
// The engine starts with DefaultConfig, an empty Platform, no notch probe
// and the JSON codec for change payloads. Instance configuration uses
// chainable methods before calling Start().
//
// Example:
//
//	engine := resval.New(provider).
//	    Platform(resval.Platform{OS: resval.OSIOS}).
//	    Probe(resval.StaticProbe(true))
//
//	if err := engine.Start(ctx); err != nil {
//	    return err
//	}
//	defer engine.Stop()
//
//	buttonHeight := engine.ResValue(50).Value
func New(provider Provider) *Engine {
	e := &Engine{
		provider: provider,
		codec:    JSONCodec{},
		clock:    clockz.RealClock,
		cache:    newValueCache(),
		cfg:      DefaultConfig(),
	}
	e.state.Store(int32(StateIdle))
	return e
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Platform sets the host platform description. Must be called before Start().
func (e *Engine) Platform(p Platform) *Engine {
	e.platform = p
	return e
}

// Probe sets the notch probe. Without one the device is assumed to have
// no notch. Must be called before Start().
func (e *Engine) Probe(p Probe) *Engine {
	e.probe = p
	return e
}

// Codec sets the codec for decoding change payloads.
// Default: JSONCodec. Must be called before Start().
func (e *Engine) Codec(codec Codec) *Engine {
	e.codec = codec
	return e
}

// Debounce coalesces change payloads arriving within d into one update.
// Default: 0, every payload is applied as it arrives. Must be called before Start().
func (e *Engine) Debounce(d time.Duration) *Engine {
	e.debounce = d
	return e
}

// Clock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic debounce testing.
// Must be called before Start().
func (e *Engine) Clock(clock clockz.Clock) *Engine {
	e.clock = clock
	return e
}

// SyncMode enables synchronous processing for testing.
// In sync mode no goroutine is started; use Process() to apply pending
// change payloads one at a time. Must be called before Start().
func (e *Engine) SyncMode() *Engine {
	e.syncMode = true
	return e
}

// Metrics sets a metrics provider for observability integration.
// Must be called before Start().
func (e *Engine) Metrics(provider MetricsProvider) *Engine {
	e.metrics = provider
	return e
}

// WarningHistorySize sets the number of recent warnings to retain.
// When set, Warnings() returns up to this many recent warnings.
// Use 0 (default) to only retain the most recent one via LastWarning().
// Must be called before Start().
func (e *Engine) WarningHistorySize(n int) *Engine {
	e.warnings = newWarningRing(n)
	return e
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

// State returns the lifecycle state of the Engine.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Config returns a snapshot of the active configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// Tracked returns the dimensions captured at Start and updated by change
// payloads since. Sizing calls do not use it; they query the provider.
func (e *Engine) Tracked() Dimensions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tracked
}

// CacheLen returns the number of memoized values.
func (e *Engine) CacheLen() int {
	return e.cache.len()
}

// LastWarning returns the most recent warning, or nil if none occurred.
func (e *Engine) LastWarning() *Warning {
	return e.lastWarning.Load()
}

// Warnings returns the recent warning history, oldest first.
// Returns nil if history is not enabled (see WarningHistorySize).
func (e *Engine) Warnings() []*Warning {
	return e.warnings.all()
}

// -----------------------------------------------------------------------------
// Configuration
// -----------------------------------------------------------------------------

// Configure merges opts into the active configuration. Nil fields keep
// their current value. On success the value cache is cleared, even when
// opts is empty, since cached values may reflect the old standard height.
// If the merged configuration is invalid it is rejected as a whole and
// nothing changes.
func (e *Engine) Configure(opts Options) error {
	ctx := context.Background()

	e.mu.Lock()
	next := opts.merge(e.cfg)
	if err := next.Validate(); err != nil {
		e.mu.Unlock()
		capitan.Emit(ctx, ConfigRejected,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("invalid configuration: %w", err)
	}
	e.cfg = next
	e.mu.Unlock()

	e.clearCache(ctx, reasonConfigure)
	capitan.Emit(ctx, ConfigChanged,
		KeyStandardHeight.Field(formatFloat(next.StandardScreenHeight)),
	)
	return nil
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Start captures the initial screen size and subscribes to dimension
// changes. Change payloads are applied asynchronously until Stop is
// called or ctx is canceled.
//
// In sync mode, Start only subscribes. Use Process() to apply payloads.
//
// Start can only be called once. Subsequent calls return an error.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return fmt.Errorf("engine already started")
	}
	e.started = true
	e.mu.Unlock()

	dims, err := e.provider.Dimensions()
	if err != nil {
		return fmt.Errorf("failed to query initial dimensions: %w", err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	changes, err := e.provider.Watch(watchCtx)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	e.mu.Lock()
	e.tracked = dims
	e.cancel = cancel
	if e.syncMode {
		e.changes = changes
	} else {
		e.done = make(chan struct{})
	}
	done := e.done
	e.mu.Unlock()

	e.state.Store(int32(StateWatching))
	capitan.Emit(ctx, EngineStarted,
		KeyDimensions.Field(dims.String()),
		KeyPlatform.Field(e.platform.OS),
		KeyDebounce.Field(e.debounce),
	)

	if !e.syncMode {
		go e.watch(watchCtx, changes, done)
	}
	return nil
}

// Stop releases the dimension subscription and clears the value cache.
// It is safe to call more than once and before Start. Sizing calls keep
// working afterwards, but Tracked() no longer follows rotations.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.cancel, e.done, e.changes = nil, nil, nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
		if done != nil {
			<-done
		}
	}

	ctx := context.Background()
	e.clearCache(ctx, reasonStop)
	e.markStopped(ctx)
}

// markStopped moves a watching engine to StateStopped exactly once.
func (e *Engine) markStopped(ctx context.Context) {
	if !e.state.CompareAndSwap(int32(StateWatching), int32(StateStopped)) {
		return
	}
	capitan.Emit(ctx, EngineStopped,
		KeyState.Field(StateStopped.String()),
	)
}

// clearCache empties the value cache and reports why.
func (e *Engine) clearCache(ctx context.Context, reason string) {
	n := e.cache.clear()
	capitan.Emit(ctx, CacheCleared,
		KeyEntries.Field(n),
		KeyReason.Field(reason),
	)
	if e.metrics != nil {
		e.metrics.OnCacheCleared(n)
	}
}

// warn records w and emits it.
func (e *Engine) warn(w *Warning) *Warning {
	e.lastWarning.Store(w)
	e.warnings.push(w)
	capitan.Emit(context.Background(), ValueDegraded,
		KeyCode.Field(string(w.Code)),
		KeyMessage.Field(w.Message),
	)
	if e.metrics != nil {
		e.metrics.OnWarning(w.Code)
	}
	return w
}
