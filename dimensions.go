package resval

import "strconv"

// Dimensions is a screen size in device-independent pixels.
type Dimensions struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// Orientation returns the orientation implied by d.
// A square screen counts as portrait.
func (d Dimensions) Orientation() Orientation {
	if d.Width > d.Height {
		return Landscape
	}
	return Portrait
}

// String formats d as WIDTHxHEIGHT.
func (d Dimensions) String() string {
	return strconv.FormatFloat(d.Width, 'f', -1, 64) + "x" + strconv.FormatFloat(d.Height, 'f', -1, 64)
}

// Orientation is the screen orientation.
type Orientation int

const (
	// Portrait means the screen is at least as tall as it is wide.
	Portrait Orientation = iota

	// Landscape means the screen is wider than it is tall.
	Landscape
)

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return "unknown"
	}
}
