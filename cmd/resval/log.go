package main

import (
	"context"
	"sync"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/resval"
	"go.uber.org/zap"
)

var bridgeOnce sync.Once

// bridgeSignals routes engine signals to log. Hooks are process-wide, so
// only the first logger is attached.
func bridgeSignals(log *zap.Logger) {
	bridgeOnce.Do(func() {
		capitan.Hook(resval.EngineStarted, func(_ context.Context, e *capitan.Event) {
			dims, _ := resval.KeyDimensions.From(e)
			platform, _ := resval.KeyPlatform.From(e)
			debounce, _ := resval.KeyDebounce.From(e)
			log.Debug("engine started",
				zap.String("dimensions", dims),
				zap.String("platform", platform),
				zap.Duration("debounce", debounce),
			)
		})

		capitan.Hook(resval.EngineStopped, func(_ context.Context, _ *capitan.Event) {
			log.Debug("engine stopped")
		})

		capitan.Hook(resval.DimensionsChanged, func(_ context.Context, e *capitan.Event) {
			from, _ := resval.KeyPreviousDimensions.From(e)
			to, _ := resval.KeyDimensions.From(e)
			orientation, _ := resval.KeyOrientation.From(e)
			log.Info("dimensions changed",
				zap.String("from", from),
				zap.String("to", to),
				zap.String("orientation", orientation),
			)
		})

		capitan.Hook(resval.DimensionsIgnored, func(_ context.Context, e *capitan.Event) {
			errMsg, _ := resval.KeyError.From(e)
			dims, _ := resval.KeyDimensions.From(e)
			log.Warn("malformed dimensions ignored",
				zap.String("error", errMsg),
				zap.String("dimensions", dims),
			)
		})

		capitan.Hook(resval.ConfigChanged, func(_ context.Context, e *capitan.Event) {
			height, _ := resval.KeyStandardHeight.From(e)
			log.Debug("configuration changed", zap.String("standard_height", height))
		})

		capitan.Hook(resval.ConfigRejected, func(_ context.Context, e *capitan.Event) {
			errMsg, _ := resval.KeyError.From(e)
			log.Warn("configuration rejected", zap.String("error", errMsg))
		})

		capitan.Hook(resval.CacheCleared, func(_ context.Context, e *capitan.Event) {
			entries, _ := resval.KeyEntries.From(e)
			reason, _ := resval.KeyReason.From(e)
			log.Debug("cache cleared",
				zap.Int("entries", entries),
				zap.String("reason", reason),
			)
		})

		capitan.Hook(resval.ValueDegraded, func(_ context.Context, e *capitan.Event) {
			code, _ := resval.KeyCode.From(e)
			msg, _ := resval.KeyMessage.From(e)
			log.Warn("value degraded",
				zap.String("code", code),
				zap.String("message", msg),
			)
		})
	})
}
