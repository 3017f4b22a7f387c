package session

import (
	"fmt"

	"github.com/gucio321/casteljau/pkg/curve"
)

// Pt is a normalized canvas position.
type Pt = curve.Point[float64]

const (
	// DefaultSamples is the number of segments per curve.
	DefaultSamples = 100
	// DefaultControlPoints is how many random points the static curve has.
	DefaultControlPoints = 20
	// DefaultMarkerRadius is the control point marker radius in pixels.
	DefaultMarkerRadius = 5
)

// Config describes a session. Positions are normalized to the canvas.
type Config struct {
	// Samples is the number of segments each curve is approximated with.
	Samples       int
	ControlPoints int
	MarkerRadius  int
	// Left and Right are fixed ends of the live curve, Middle is where
	// its pointer-driven point starts before any event arrives.
	Left, Right, Middle Pt
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Samples:       DefaultSamples,
		ControlPoints: DefaultControlPoints,
		MarkerRadius:  DefaultMarkerRadius,
		Left:          curve.Pt(0.1, 0.5),
		Right:         curve.Pt(0.9, 0.5),
		Middle:        curve.Pt(0.5, 0.5),
	}
}

// Validate checks whether a session can be built of c.
func (c Config) Validate() error {
	switch {
	case c.Samples < 1:
		return fmt.Errorf("samples must be positive, got %d: %w", c.Samples, ErrInvalidConfig)
	case c.ControlPoints < 1:
		return fmt.Errorf("control points count must be positive, got %d: %w", c.ControlPoints, ErrInvalidConfig)
	case c.MarkerRadius < 0:
		return fmt.Errorf("marker radius must not be negative, got %d: %w", c.MarkerRadius, ErrInvalidConfig)
	}

	return nil
}
