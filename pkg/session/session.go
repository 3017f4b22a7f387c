// Package session keeps the state of the interactive Bézier view:
// a static curve through random control points and a live quadratic curve
// whose middle point follows the pointer.
package session

import (
	"fmt"

	"github.com/gucio321/casteljau/pkg/curve"
)

// RandomSource is satisfied by *rand.Rand of both math/rand and math/rand/v2.
type RandomSource interface {
	Float64() float64
}

// LiveCurve is the three-point curve that follows the pointer.
type LiveCurve struct {
	Left, Middle, Right Pt
}

// Points returns control points of the curve in order.
func (l LiveCurve) Points() []Pt {
	return []Pt{l.Left, l.Middle, l.Right}
}

// Session is not safe for concurrent use. It is meant to live on the UI goroutine.
type Session struct {
	config        Config
	controlPoints []Pt
	staticSamples []Pt
	live          LiveCurve
	liveSamples   []Pt
}

// GenerateControlPoints returns n points with x evenly spaced over [0, 1)
// and y drawn from rng.
func GenerateControlPoints(n int, rng RandomSource) ([]Pt, error) {
	if n < 1 {
		return nil, fmt.Errorf("generating %d control points: %w", n, curve.ErrInvalidInput)
	}

	result := make([]Pt, n)
	for i := range result {
		result[i] = curve.Pt(float64(i)/float64(n), rng.Float64())
	}

	return result, nil
}

// New creates a session with cfg.ControlPoints random control points.
func New(cfg Config, rng RandomSource) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	points, err := GenerateControlPoints(cfg.ControlPoints, rng)
	if err != nil {
		return nil, err
	}

	return NewWithControlPoints(cfg, points)
}

// NewWithControlPoints creates a session over the given control points.
// cfg.ControlPoints is overridden by len(points).
// Both curves are sampled before it returns, so the session may be rendered right away.
func NewWithControlPoints(cfg Config, points []Pt) (*Session, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("creating session: no control points: %w", curve.ErrInvalidInput)
	}

	cfg.ControlPoints = len(points)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		config:        cfg,
		controlPoints: append([]Pt(nil), points...),
		live: LiveCurve{
			Left:   cfg.Left,
			Middle: cfg.Middle,
			Right:  cfg.Right,
		},
	}

	var err error
	if s.staticSamples, err = curve.Sample(s.controlPoints, cfg.Samples); err != nil {
		return nil, fmt.Errorf("sampling static curve: %w", err)
	}

	if s.liveSamples, err = curve.Sample(s.live.Points(), cfg.Samples); err != nil {
		return nil, fmt.Errorf("sampling live curve: %w", err)
	}

	return s, nil
}

// HandlePointer moves the middle point of the live curve to the pixel (px, py)
// of surface, resamples the live curve and requests a redraw.
// On error the session is left as it was.
func (s *Session) HandlePointer(surface Surface, px, py int) error {
	w, h := surface.Width(), surface.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("handling pointer at (%d, %d) on %dx%d: %w", px, py, w, h, ErrInvalidSurface)
	}

	live := s.live
	live.Middle = curve.Pt(float64(px)/float64(w), float64(py)/float64(h))

	samples, err := curve.Sample(live.Points(), s.config.Samples)
	if err != nil {
		return fmt.Errorf("sampling live curve: %w", err)
	}

	s.live, s.liveSamples = live, samples
	surface.RequestRedraw()

	return nil
}

// Render draws the live curve, the static curve and the control point markers, in that order.
func (s *Session) Render(surface Surface) {
	w, h := float64(surface.Width()), float64(surface.Height())
	layered, isLayered := surface.(Layered)

	setLayer := func(l Layer) {
		if isLayered {
			layered.SetLayer(l)
		}
	}

	setLayer(LayerLive)
	drawPolyline(surface, s.liveSamples, w, h)

	setLayer(LayerStatic)
	drawPolyline(surface, s.staticSamples, w, h)

	setLayer(LayerControlPoints)
	for _, p := range s.controlPoints {
		x, y := toPixel(p, w, h)
		surface.DrawMarker(x, y, s.config.MarkerRadius)
	}
}

func drawPolyline(surface Surface, points []Pt, w, h float64) {
	for i := 0; i+1 < len(points); i++ {
		x0, y0 := toPixel(points[i], w, h)
		x1, y1 := toPixel(points[i+1], w, h)
		surface.DrawLine(x0, y0, x1, y1)
	}
}

func toPixel(p Pt, w, h float64) (x, y int) {
	return int(p.X * w), int(p.Y * h)
}

// Config returns the configuration the session runs with.
func (s *Session) Config() Config {
	return s.config
}

// Live returns the current live curve.
func (s *Session) Live() LiveCurve {
	return s.live
}

// ControlPoints returns a copy of the static curve's control points.
func (s *Session) ControlPoints() []Pt {
	return append([]Pt(nil), s.controlPoints...)
}

// StaticSamples returns a copy of the static curve's samples.
func (s *Session) StaticSamples() []Pt {
	return append([]Pt(nil), s.staticSamples...)
}

// LiveSamples returns a copy of the live curve's samples.
func (s *Session) LiveSamples() []Pt {
	return append([]Pt(nil), s.liveSamples...)
}
