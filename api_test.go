package resval

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

// waitFor polls a condition until it returns true or timeout is reached.
func waitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}

// closedProvider reports fixed dimensions and a watcher that closes at once.
type closedProvider struct {
	dims Dimensions
}

func (p closedProvider) Dimensions() (Dimensions, error) { return p.dims, nil }

func (closedProvider) Watch(context.Context) (<-chan []byte, error) {
	ch := make(chan []byte)
	close(ch)
	return ch, nil
}

// brokenWatchProvider cannot subscribe.
type brokenWatchProvider struct {
	closedProvider
}

func (brokenWatchProvider) Watch(context.Context) (<-chan []byte, error) {
	return nil, errors.New("no display")
}

func TestEngine_New_Defaults(t *testing.T) {
	engine := New(NewMemoryProvider(IPhoneX.Dimensions))

	if engine.State() != StateIdle {
		t.Errorf("expected idle, got %s", engine.State())
	}
	cfg := engine.Config()
	if cfg.StandardScreenHeight != DefaultStandardScreenHeight {
		t.Errorf("expected standard height %d, got %v", DefaultStandardScreenHeight, cfg.StandardScreenHeight)
	}
	if !cfg.EnableCaching {
		t.Error("expected caching enabled by default")
	}
	if engine.LastWarning() != nil {
		t.Errorf("expected no warning, got %v", engine.LastWarning())
	}
}

func TestEngine_Start_CapturesInitialDimensions(t *testing.T) {
	engine, _ := IPhoneX.Engine()

	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer engine.Stop()

	if engine.Tracked() != IPhoneX.Dimensions {
		t.Errorf("expected tracked %s, got %s", IPhoneX.Dimensions, engine.Tracked())
	}
	if engine.State() != StateWatching {
		t.Errorf("expected watching, got %s", engine.State())
	}
}

func TestEngine_Start_Twice(t *testing.T) {
	engine, _ := IPhoneX.Engine()

	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer engine.Stop()

	if err := engine.Start(context.Background()); err == nil {
		t.Error("expected error on second Start")
	}
}

func TestEngine_Start_ProviderError(t *testing.T) {
	provider := NewSyncMemoryProvider(IPhoneX.Dimensions)
	provider.Fail(errors.New("window gone"))

	engine := New(provider).SyncMode()
	if err := engine.Start(context.Background()); err == nil {
		t.Fatal("expected error when dimensions cannot be queried")
	}
	if engine.State() != StateIdle {
		t.Errorf("expected idle, got %s", engine.State())
	}
}

func TestEngine_Start_WatchError(t *testing.T) {
	engine := New(brokenWatchProvider{closedProvider{dims: IPhoneX.Dimensions}})

	if err := engine.Start(context.Background()); err == nil {
		t.Fatal("expected error when watcher fails")
	}
}

func TestEngine_Change_UpdatesTrackedAndClearsCache(t *testing.T) {
	engine, provider := IPhoneX.Engine()
	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer engine.Stop()

	engine.WP(50)
	engine.HP(50)
	if engine.CacheLen() != 2 {
		t.Fatalf("expected 2 cached values, got %d", engine.CacheLen())
	}

	rotated := IPhoneX.Landscape().Dimensions
	provider.Resize(rotated)

	if !engine.Process(context.Background()) {
		t.Fatal("expected a change to process")
	}
	if engine.Tracked() != rotated {
		t.Errorf("expected tracked %s, got %s", rotated, engine.Tracked())
	}
	if engine.CacheLen() != 0 {
		t.Errorf("expected cache cleared, got %d entries", engine.CacheLen())
	}
}

func TestEngine_Change_CachingDisabledKeepsNothing(t *testing.T) {
	engine, provider := IPhoneX.Engine()
	if err := engine.Configure(Options{}.WithCaching(false)); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer engine.Stop()

	engine.WP(50)
	if engine.CacheLen() != 0 {
		t.Errorf("expected no cached values, got %d", engine.CacheLen())
	}

	provider.Resize(IPhoneX.Landscape().Dimensions)
	engine.Process(context.Background())

	if engine.Tracked() != IPhoneX.Landscape().Dimensions {
		t.Errorf("expected tracked size updated, got %s", engine.Tracked())
	}
}

func TestEngine_Change_MalformedPayloadsIgnored(t *testing.T) {
	payloads := []string{
		"not json",
		`{"width": "wide", "height": 812}`,
		`{"width": 375}`,
		`{"width": 0, "height": 812}`,
		`{"width": -375, "height": 812}`,
		`[]`,
		`{}`,
	}

	for _, payload := range payloads {
		t.Run(payload, func(t *testing.T) {
			engine, provider := IPhoneX.Engine()
			if err := engine.Start(context.Background()); err != nil {
				t.Fatalf("Start failed: %v", err)
			}
			defer engine.Stop()

			engine.WP(50)
			provider.Send([]byte(payload))

			if !engine.Process(context.Background()) {
				t.Fatal("expected the payload to be consumed")
			}
			if engine.Tracked() != IPhoneX.Dimensions {
				t.Errorf("expected tracked size unchanged, got %s", engine.Tracked())
			}
			if engine.CacheLen() != 1 {
				t.Errorf("expected cache untouched, got %d entries", engine.CacheLen())
			}
			if engine.LastWarning() != nil {
				t.Errorf("expected no warning, got %v", engine.LastWarning())
			}
		})
	}
}

func TestEngine_Process_RequiresSyncMode(t *testing.T) {
	engine := New(NewMemoryProvider(IPhoneX.Dimensions))
	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer engine.Stop()

	if engine.Process(context.Background()) {
		t.Error("expected Process to return false when not in sync mode")
	}
}

func TestEngine_Process_NothingPending(t *testing.T) {
	engine, _ := IPhoneX.Engine()
	if engine.Process(context.Background()) {
		t.Error("expected false before Start")
	}

	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer engine.Stop()

	if engine.Process(context.Background()) {
		t.Error("expected false with no pending change")
	}
}

func TestEngine_WatcherClosed_MarksStopped(t *testing.T) {
	engine := New(closedProvider{dims: IPhoneX.Dimensions}).SyncMode()
	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if engine.Process(context.Background()) {
		t.Error("expected false from closed watcher")
	}
	if engine.State() != StateStopped {
		t.Errorf("expected stopped, got %s", engine.State())
	}
}

func TestEngine_Async_AppliesChanges(t *testing.T) {
	provider := NewMemoryProvider(IPhoneX.Dimensions)
	engine := New(provider)

	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer engine.Stop()

	rotated := IPhoneX.Landscape().Dimensions
	provider.Resize(rotated)

	if !waitFor(t, time.Second, func() bool { return engine.Tracked() == rotated }) {
		t.Fatalf("expected tracked %s, got %s", rotated, engine.Tracked())
	}
}

func TestEngine_Async_WatcherClosed(t *testing.T) {
	engine := New(closedProvider{dims: IPhoneX.Dimensions})
	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if !waitFor(t, time.Second, func() bool { return engine.State() == StateStopped }) {
		t.Fatalf("expected stopped, got %s", engine.State())
	}
	engine.Stop()
}

func TestEngine_Async_ContextCancelStopsWatching(t *testing.T) {
	engine := New(NewMemoryProvider(IPhoneX.Dimensions))

	ctx, cancel := context.WithCancel(context.Background())
	if err := engine.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	cancel()

	if !waitFor(t, time.Second, func() bool { return engine.State() == StateStopped }) {
		t.Fatalf("expected stopped, got %s", engine.State())
	}
	engine.Stop()
}

func TestEngine_Debounce_CoalescesRapidChanges(t *testing.T) {
	clock := clockz.NewFakeClock()
	provider := NewMemoryProvider(IPhoneX.Dimensions)
	engine := New(provider).Debounce(100 * time.Millisecond).Clock(clock)

	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer engine.Stop()

	provider.Resize(Dimensions{Width: 400, Height: 800})
	provider.Resize(Dimensions{Width: 500, Height: 800})
	provider.Resize(Dimensions{Width: 600, Height: 800})

	// Allow goroutine to receive changes
	time.Sleep(20 * time.Millisecond)

	if engine.Tracked() != IPhoneX.Dimensions {
		t.Errorf("expected no change while debouncing, got %s", engine.Tracked())
	}

	clock.Advance(150 * time.Millisecond)
	clock.BlockUntilReady()

	want := Dimensions{Width: 600, Height: 800}
	if !waitFor(t, time.Second, func() bool { return engine.Tracked() == want }) {
		t.Errorf("expected only the last change applied, got %s", engine.Tracked())
	}
}

func TestEngine_Stop_Idempotent(t *testing.T) {
	engine, _ := IPhoneX.Engine()
	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	engine.Stop()
	engine.Stop()

	if engine.State() != StateStopped {
		t.Errorf("expected stopped, got %s", engine.State())
	}
}

func TestEngine_Stop_BeforeStart(t *testing.T) {
	engine, _ := IPhoneX.Engine()
	engine.WP(50)

	engine.Stop()

	if engine.State() != StateIdle {
		t.Errorf("expected idle, got %s", engine.State())
	}
	if engine.CacheLen() != 0 {
		t.Errorf("expected cache cleared, got %d entries", engine.CacheLen())
	}
}

func TestEngine_Stop_ClearsCacheAndKeepsSizing(t *testing.T) {
	engine, provider := IPhoneX.Engine()
	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	engine.WP(50)
	engine.Stop()

	if engine.CacheLen() != 0 {
		t.Errorf("expected cache cleared, got %d entries", engine.CacheLen())
	}

	// No subscription anymore, but sizes are still queried fresh.
	provider.Resize(IPhoneX.Landscape().Dimensions)
	if engine.Process(context.Background()) {
		t.Error("expected no processing after Stop")
	}
	if got := engine.WP(100).Value; got != 812 {
		t.Errorf("expected 812 after rotation, got %v", got)
	}
	if engine.Tracked() != IPhoneX.Dimensions {
		t.Errorf("expected tracked size frozen, got %s", engine.Tracked())
	}
}

func TestEngine_Stop_Async(t *testing.T) {
	engine := New(NewMemoryProvider(IPhoneX.Dimensions))
	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	engine.Stop()
	engine.Stop()

	if engine.State() != StateStopped {
		t.Errorf("expected stopped, got %s", engine.State())
	}
}

func TestEngine_WarningHistory(t *testing.T) {
	engine, _ := IPhoneX.Engine()
	engine.WarningHistorySize(2)

	engine.WP(-1)
	engine.HP(101)
	engine.FS(-3)

	ws := engine.Warnings()
	if len(ws) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(ws))
	}
	if ws[0].Code != CodePercentageAboveRange || ws[1].Code != CodeNegativeSize {
		t.Errorf("expected [%s %s], got [%s %s]", CodePercentageAboveRange, CodeNegativeSize, ws[0].Code, ws[1].Code)
	}
	if engine.LastWarning().Code != CodeNegativeSize {
		t.Errorf("expected last warning %s, got %s", CodeNegativeSize, engine.LastWarning().Code)
	}
}

func TestEngine_WarningHistory_DisabledByDefault(t *testing.T) {
	engine, _ := IPhoneX.Engine()
	engine.WP(-1)

	if engine.Warnings() != nil {
		t.Error("expected nil history when disabled")
	}
	if engine.LastWarning() == nil {
		t.Error("expected last warning to be kept")
	}
}
