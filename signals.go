package resval

import "github.com/zoobzio/capitan"

// Engine lifecycle signals.
var (
	// EngineStarted is emitted when an Engine subscribes to dimension changes.
	EngineStarted = capitan.NewSignal(
		"resval.engine.started",
		"Engine watching started",
	)

	// EngineStopped is emitted when an Engine releases its subscription.
	EngineStopped = capitan.NewSignal(
		"resval.engine.stopped",
		"Engine watching stopped",
	)
)

// Dimension change signals.
var (
	// DimensionsChanged is emitted when a valid change payload is applied.
	DimensionsChanged = capitan.NewSignal(
		"resval.dimensions.changed",
		"Screen dimensions changed",
	)

	// DimensionsIgnored is emitted when a change payload is malformed and dropped.
	DimensionsIgnored = capitan.NewSignal(
		"resval.dimensions.ignored",
		"Malformed dimension change ignored",
	)
)

// Configuration and cache signals.
var (
	// ConfigChanged is emitted after a successful Configure.
	ConfigChanged = capitan.NewSignal(
		"resval.config.changed",
		"Configuration updated",
	)

	// ConfigRejected is emitted when Configure fails validation.
	ConfigRejected = capitan.NewSignal(
		"resval.config.rejected",
		"Configuration rejected",
	)

	// CacheCleared is emitted when the value cache is emptied.
	CacheCleared = capitan.NewSignal(
		"resval.cache.cleared",
		"Value cache cleared",
	)
)

// ValueDegraded is emitted for every Warning produced by a sizing call.
var ValueDegraded = capitan.NewSignal(
	"resval.value.degraded",
	"Sizing input clamped or collaborator failed",
)
