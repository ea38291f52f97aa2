package resval

import (
	"math"
	"strconv"
)

// ResValue scales baseSize, a size on the standard screen, to the current
// screen using the configured standard height.
//
// Zero returns 0 without a warning. Negative sizes return 0 with a
// CodeNegativeSize warning.
func (e *Engine) ResValue(baseSize float64) Result {
	return e.resValue(baseSize, 0, false)
}

// ResValueFor is ResValue against an explicit standard screen height.
// A non-positive height is ignored in favor of the configured one.
func (e *Engine) ResValueFor(baseSize, standardScreenHeight float64) Result {
	return e.resValue(baseSize, standardScreenHeight, true)
}

// WP returns percentage of the current screen width. Percentages below 0
// yield 0 and above 100 yield the full width, each with a warning.
func (e *Engine) WP(percentage float64) Result {
	return e.percent(kindWidthPercent, percentage)
}

// HP returns percentage of the current screen height, clamped like WP.
func (e *Engine) HP(percentage float64) Result {
	return e.percent(kindHeightPercent, percentage)
}

// FS scales a font size.
func (e *Engine) FS(size float64) Result {
	return e.derived(size)
}

// Spacing scales a padding or margin.
func (e *Engine) Spacing(size float64) Result {
	return e.derived(size)
}

// Radius scales a border radius.
func (e *Engine) Radius(size float64) Result {
	return e.derived(size)
}

// ScreenDimensions queries the provider for the current size. If the
// provider fails, the last tracked size is returned and a warning is
// recorded.
func (e *Engine) ScreenDimensions() Dimensions {
	d, _ := e.screenDimensions()
	return d
}

// Orientation returns the orientation of the current screen.
func (e *Engine) Orientation() Orientation {
	return e.ScreenDimensions().Orientation()
}

// HasNotch reports whether the device has a notch. A failing probe is
// treated as no notch.
func (e *Engine) HasNotch() bool {
	notch, _ := e.hasNotch()
	return notch
}

func (e *Engine) derived(size float64) Result {
	if math.IsNaN(size) {
		return e.degrade(warnf(CodeNotANumber, "size is NaN, using 0"), 0)
	}
	if size < 0 {
		return e.degrade(warnf(CodeNegativeSize, "size %s is negative, using 0", formatFloat(size)), 0)
	}
	return e.ResValue(size)
}

func (e *Engine) resValue(base, standard float64, explicit bool) Result {
	switch {
	case math.IsNaN(base):
		return e.degrade(warnf(CodeNotANumber, "base size is NaN, using 0"), 0)
	case base < 0:
		return e.degrade(warnf(CodeNegativeSize, "base size %s is negative, using 0", formatFloat(base)), 0)
	case base == 0:
		return Result{}
	}

	cfg := e.Config()

	var warning *Warning
	if explicit && !(standard > 0) {
		warning = e.warn(warnf(CodeInvalidStandardHeight,
			"standard height %s is not positive, using %s", formatFloat(standard), formatFloat(cfg.StandardScreenHeight)))
	}
	if !explicit || !(standard > 0) {
		standard = cfg.StandardScreenHeight
	}
	if !(standard > 0) {
		standard = DefaultStandardScreenHeight
	}

	dims, dimsWarning := e.screenDimensions()
	warning = firstWarning(warning, dimsWarning)

	key := cacheKey{kind: kindResValue, input: base, param: standard, width: dims.Width, height: dims.Height}
	if v, ok := e.lookup(cfg, key); ok {
		return Result{Value: v, Warning: warning}
	}

	notch, probeWarning := e.hasNotch()
	warning = firstWarning(warning, probeWarning)

	adjusted := dims.Height
	if notch || e.platform.OS == OSAndroid {
		adjusted -= e.platform.statusBarOffset(dims.Orientation())
	}

	v := roundHalfUp(base * adjusted / standard)
	e.store(cfg, key, v)
	return Result{Value: v, Warning: warning}
}

func (e *Engine) percent(k kind, p float64) Result {
	dims, warning := e.screenDimensions()

	side, key := dims.Width, cacheKey{kind: k, input: p, width: dims.Width}
	if k == kindHeightPercent {
		side, key = dims.Height, cacheKey{kind: k, input: p, height: dims.Height}
	}

	switch {
	case math.IsNaN(p):
		return e.degrade(warnf(CodeNotANumber, "percentage is NaN, using 0"), 0)
	case p < 0:
		return e.degrade(warnf(CodePercentageBelowRange, "percentage %s is below 0, using 0", formatFloat(p)), 0)
	case p > 100:
		return e.degrade(warnf(CodePercentageAboveRange, "percentage %s is above 100, using 100", formatFloat(p)), side)
	}

	cfg := e.Config()
	if v, ok := e.lookup(cfg, key); ok {
		return Result{Value: v, Warning: warning}
	}

	v := (p / 100) * side
	e.store(cfg, key, v)
	return Result{Value: v, Warning: warning}
}

// lookup returns a cached value when caching is enabled.
func (e *Engine) lookup(cfg Config, key cacheKey) (float64, bool) {
	if !cfg.EnableCaching {
		return 0, false
	}
	v, ok := e.cache.get(key)
	if e.metrics != nil {
		if ok {
			e.metrics.OnCacheHit()
		} else {
			e.metrics.OnCacheMiss()
		}
	}
	return v, ok
}

func (e *Engine) store(cfg Config, key cacheKey, v float64) {
	if cfg.EnableCaching {
		e.cache.put(key, v)
	}
}

func (e *Engine) screenDimensions() (Dimensions, *Warning) {
	d, err := e.provider.Dimensions()
	if err == nil {
		return d, nil
	}
	tracked := e.Tracked()
	return tracked, e.warn(warnf(CodeDimensionsUnavailable,
		"provider failed, using last known %s: %v", tracked, err))
}

func (e *Engine) hasNotch() (bool, *Warning) {
	notch, err := probeNotch(e.probe)
	if err != nil {
		return false, e.warn(warnf(CodeProbeFailed, "notch probe failed: %v", err))
	}
	return notch, nil
}

// degrade records w and returns it with the substitute value.
func (e *Engine) degrade(w *Warning, v float64) Result {
	e.warn(w)
	return Result{Value: v, Warning: w}
}

func firstWarning(ws ...*Warning) *Warning {
	for _, w := range ws {
		if w != nil {
			return w
		}
	}
	return nil
}

// roundHalfUp rounds x to the nearest integer with halves rounded toward
// positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
