package resval

import "fmt"

// Operating system families understood by the engine.
const (
	OSIOS     = "ios"
	OSAndroid = "android"
)

// Status bar heights subtracted from the usable height in portrait.
const (
	// IOSStatusBarHeight covers the status bar and the notch area on iOS.
	IOSStatusBarHeight = 78

	// AndroidStatusBarHeight is used when the platform does not report one.
	AndroidStatusBarHeight = 24
)

// Platform describes the host OS.
type Platform struct {
	// OS is the operating system family, usually OSIOS or OSAndroid.
	OS string `json:"os" yaml:"os"`

	// StatusBarHeight is the height reported by the platform at runtime.
	// Zero means unknown. Only consulted off iOS.
	StatusBarHeight float64 `json:"status_bar_height" yaml:"status_bar_height"`
}

// statusBarOffset returns the height reserved at the top of the screen
// for the given orientation.
func (p Platform) statusBarOffset(o Orientation) float64 {
	if o == Landscape {
		return 0
	}
	if p.OS == OSIOS {
		return IOSStatusBarHeight
	}
	if p.StatusBarHeight > 0 {
		return p.StatusBarHeight
	}
	return AndroidStatusBarHeight
}

// Probe reports device capabilities that affect the usable screen area.
type Probe interface {
	// HasNotch reports whether the display has a notch or cutout.
	HasNotch() (bool, error)
}

// ProbeFunc adapts a function to the Probe interface.
type ProbeFunc func() (bool, error)

// HasNotch calls f.
func (f ProbeFunc) HasNotch() (bool, error) {
	return f()
}

// StaticProbe is a Probe with a fixed answer.
type StaticProbe bool

// HasNotch returns the fixed answer.
func (s StaticProbe) HasNotch() (bool, error) {
	return bool(s), nil
}

// probeNotch calls the probe, converting a panic into an error.
func probeNotch(p Probe) (notch bool, err error) {
	if p == nil {
		return false, nil
	}
	defer func() {
		if r := recover(); r != nil {
			notch = false
			err = fmt.Errorf("probe panicked: %v", r)
		}
	}()
	return p.HasNotch()
}
