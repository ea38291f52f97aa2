// Package testing provides test utilities and helpers for resval engines.
package testing

import (
	"testing"
	"time"

	"github.com/zoobzio/resval"
)

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// WaitForTracked waits until the engine tracks the expected dimensions or timeout occurs.
func WaitForTracked(t *testing.T, e *resval.Engine, expected resval.Dimensions, timeout time.Duration) bool {
	t.Helper()
	return WaitFor(t, timeout, func() bool {
		return e.Tracked() == expected
	})
}

// RequireState fails the test immediately if the engine is not in the expected state.
func RequireState(t *testing.T, e *resval.Engine, expected resval.State) {
	t.Helper()
	if got := e.State(); got != expected {
		t.Fatalf("expected state %s, got %s", expected, got)
	}
}

// RequireValue fails the test if r carries a warning or a different value.
func RequireValue(t *testing.T, r resval.Result, expected float64) {
	t.Helper()
	if r.Warning != nil {
		t.Fatalf("unexpected warning: %v", r.Warning)
	}
	if r.Value != expected {
		t.Fatalf("expected %v, got %v", expected, r.Value)
	}
}

// RequireWarning fails the test unless r carries a warning with the given code.
func RequireWarning(t *testing.T, r resval.Result, code resval.Code) {
	t.Helper()
	if r.Warning == nil {
		t.Fatalf("expected %s warning, got none (value %v)", code, r.Value)
	}
	if r.Warning.Code != code {
		t.Fatalf("expected %s warning, got %s", code, r.Warning.Code)
	}
}

// NewTestEngine starts a sync-mode engine showing device and stops it when
// the test ends. Returns the engine and the provider used to rotate it.
func NewTestEngine(t *testing.T, device resval.Device) (*resval.Engine, *resval.MemoryProvider) {
	t.Helper()
	e, p := device.Engine()
	if err := e.Start(t.Context()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(e.Stop)
	return e, p
}

// Rotate resizes the provider and applies the change on a sync-mode engine.
func Rotate(t *testing.T, e *resval.Engine, p *resval.MemoryProvider, d resval.Dimensions) {
	t.Helper()
	if !p.Resize(d) {
		t.Fatal("resize payload dropped")
	}
	if !e.Process(t.Context()) {
		t.Fatal("expected the resize to be processed")
	}
}
