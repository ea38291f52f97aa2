package resval

import "testing"

func TestSignalNames(t *testing.T) {
	cases := map[string]string{
		EngineStarted.Name():     "resval.engine.started",
		EngineStopped.Name():     "resval.engine.stopped",
		DimensionsChanged.Name(): "resval.dimensions.changed",
		DimensionsIgnored.Name(): "resval.dimensions.ignored",
		ConfigChanged.Name():     "resval.config.changed",
		ConfigRejected.Name():    "resval.config.rejected",
		CacheCleared.Name():      "resval.cache.cleared",
		ValueDegraded.Name():     "resval.value.degraded",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("expected name %q, got %q", want, got)
		}
	}
}
