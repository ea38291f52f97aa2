package resval

import "fmt"

// Code identifies the kind of soft failure behind a Warning.
type Code string

// Warning codes.
const (
	// CodeNegativeSize means a negative size was replaced by 0.
	CodeNegativeSize Code = "negative_size"

	// CodePercentageBelowRange means a percentage below 0 was clamped to 0.
	CodePercentageBelowRange Code = "percentage_below_range"

	// CodePercentageAboveRange means a percentage above 100 was clamped to 100.
	CodePercentageAboveRange Code = "percentage_above_range"

	// CodeInvalidStandardHeight means a non-positive standard height was
	// ignored in favor of the configured one.
	CodeInvalidStandardHeight Code = "invalid_standard_height"

	// CodeNotANumber means a NaN input was replaced by 0.
	CodeNotANumber Code = "not_a_number"

	// CodeProbeFailed means the notch probe failed and false was assumed.
	CodeProbeFailed Code = "probe_failed"

	// CodeDimensionsUnavailable means the provider could not report the
	// screen size and the last tracked size was used.
	CodeDimensionsUnavailable Code = "dimensions_unavailable"
)

// Warning describes why a value was degraded.
type Warning struct {
	Code    Code
	Message string
}

// Error implements error so a Warning can be logged or wrapped as one.
func (w *Warning) Error() string {
	return string(w.Code) + ": " + w.Message
}

func warnf(code Code, format string, args ...any) *Warning {
	return &Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Result is the outcome of a sizing operation. Value is always usable;
// Warning is non-nil when the input was out of range or a collaborator
// failed and a safe default was substituted.
type Result struct {
	Value   float64
	Warning *Warning
}

// OK reports whether the value was computed without a warning.
func (r Result) OK() bool {
	return r.Warning == nil
}
