package resval

import "sync"

// warningRing is a thread-safe ring buffer for storing recent warnings.
type warningRing struct {
	mu       sync.RWMutex
	warnings []*Warning
	size     int
	head     int
	count    int
}

// newWarningRing creates a new warning ring buffer with the given capacity.
// If size is 0, the ring buffer is disabled.
func newWarningRing(size int) *warningRing {
	if size <= 0 {
		return nil
	}
	return &warningRing{
		warnings: make([]*Warning, size),
		size:     size,
	}
}

// push adds a warning to the ring buffer.
func (r *warningRing) push(w *Warning) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.warnings[r.head] = w
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// all returns all warnings in the ring buffer, oldest first.
func (r *warningRing) all() []*Warning {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}

	result := make([]*Warning, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.warnings[(start+i)%r.size]
	}
	return result
}
