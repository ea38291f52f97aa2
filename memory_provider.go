package resval

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryBuffer is the number of change payloads a MemoryProvider holds
// while nobody is watching.
const memoryBuffer = 16

// MemoryProvider is an in-process Provider. Host bridges push the current
// window size into it with Resize; tests use it to drive rotations.
type MemoryProvider struct {
	mu   sync.RWMutex
	dims Dimensions
	err  error

	events  chan []byte
	watcher *ChannelWatcher
}

// NewMemoryProvider creates a MemoryProvider reporting d. Change payloads
// are forwarded through an internal goroutine.
func NewMemoryProvider(d Dimensions) *MemoryProvider {
	events := make(chan []byte, memoryBuffer)
	return &MemoryProvider{dims: d, events: events, watcher: NewChannelWatcher(events)}
}

// NewSyncMemoryProvider creates a MemoryProvider whose Watch returns the
// payload channel directly. Use with SyncMode() for deterministic testing.
func NewSyncMemoryProvider(d Dimensions) *MemoryProvider {
	events := make(chan []byte, memoryBuffer)
	return &MemoryProvider{dims: d, events: events, watcher: NewSyncChannelWatcher(events)}
}

// Dimensions returns the last size set with Resize, or the error set with Fail.
func (p *MemoryProvider) Dimensions() (Dimensions, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.err != nil {
		return Dimensions{}, p.err
	}
	return p.dims, nil
}

// Watch implements Watcher.
func (p *MemoryProvider) Watch(ctx context.Context) (<-chan []byte, error) {
	return p.watcher.Watch(ctx)
}

// Resize records d as the current size and emits a change payload.
// It reports false when the payload was dropped because the buffer is full.
func (p *MemoryProvider) Resize(d Dimensions) bool {
	p.mu.Lock()
	p.dims = d
	p.mu.Unlock()

	raw, err := json.Marshal(d)
	if err != nil {
		return false
	}
	return p.Send(raw)
}

// Send emits a raw change payload without touching the reported size.
func (p *MemoryProvider) Send(raw []byte) bool {
	select {
	case p.events <- raw:
		return true
	default:
		return false
	}
}

// Fail makes Dimensions return err until Fail(nil) is called.
func (p *MemoryProvider) Fail(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

// Ensure MemoryProvider implements Provider.
var _ Provider = (*MemoryProvider)(nil)
