/*
Package resval converts design-time pixel sizes into values for the
current screen.

Sizes are authored against a standard screen (812 points tall by default,
an iPhone X). An Engine scales them by the usable height of the screen it
is running on, taking orientation, the platform status bar and display
notches into account, and memoizes results until the screen changes.

# Basic Usage

Create an engine over a dimension Provider and start it:

	engine := resval.New(provider).
	    Platform(resval.Platform{OS: resval.OSIOS}).
	    Probe(notchProbe)

	if err := engine.Start(ctx); err != nil {
	    return err
	}
	defer engine.Stop()

Size things:

	height := engine.ResValue(50).Value   // scaled by usable height
	half := engine.WP(50).Value           // 50% of the screen width
	title := engine.FS(18).Value          // font size
	pad := engine.Spacing(16).Value       // padding / margin
	corner := engine.Radius(8).Value      // border radius

# Results and Warnings

Sizing calls never fail. Out-of-range input is clamped and a failing
collaborator is replaced by a safe default; the Result carries a Warning
describing what happened:

	r := engine.WP(150)
	// r.Value == full width, r.Warning.Code == resval.CodePercentageAboveRange

Warnings are also emitted on the ValueDegraded capitan signal, reported to
the MetricsProvider, and optionally kept in a bounded history.

# Configuration

	err := engine.Configure(resval.Options{}.WithStandardScreenHeight(896))

Configure merges, validates and clears the value cache. Options can also
be decoded from JSON/YAML with LoadOptions or read from the environment
with OptionsFromEnv.

# Providers

  - MemoryProvider: in-process; hosts push sizes with Resize
  - pkg/file: JSON/YAML file watched with fsnotify
  - pkg/terminal: terminal size, resized on SIGWINCH
  - pkg/bubbletea: fed from tea.WindowSizeMsg

# Observability

Lifecycle, dimension, cache and configuration events are emitted as
capitan signals:

	capitan.Hook(resval.DimensionsChanged, func(_ context.Context, e *capitan.Event) {
	    dims, _ := resval.KeyDimensions.From(e)
	    log.Printf("screen is now %s", dims)
	})
*/
package resval
