package resval

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key engine events.
type MetricsProvider interface {
	// OnCacheHit is called when a sizing call is answered from the cache.
	OnCacheHit()

	// OnCacheMiss is called when a sizing call computes a fresh value.
	OnCacheMiss()

	// OnCacheCleared is called with the number of entries dropped.
	OnCacheCleared(entries int)

	// OnDimensionsChanged is called when a change payload is applied.
	OnDimensionsChanged(from, to Dimensions)

	// OnWarning is called for every Warning produced.
	OnWarning(code Code)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnCacheHit()                         {}
func (NoOpMetricsProvider) OnCacheMiss()                        {}
func (NoOpMetricsProvider) OnCacheCleared(_ int)                {}
func (NoOpMetricsProvider) OnDimensionsChanged(_, _ Dimensions) {}
func (NoOpMetricsProvider) OnWarning(_ Code)                    {}
