// Package viewer shows a session in an ebiten window and feeds it with mouse events.
package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kpango/glg"
	"golang.org/x/image/colornames"

	"github.com/gucio321/casteljau/pkg/session"
)

var (
	_ ebiten.Game     = &Viewer{}
	_ session.Surface = &Viewer{}
	_ session.Layered = &Viewer{}
)

var (
	backgroundColor = colornames.Black
	staticColor     = colornames.White
	markerColor     = colornames.Red
)

// InputMode tells which mouse gesture moves the live curve.
type InputMode int

const (
	// ModeHover moves the curve whenever the cursor moves.
	ModeHover InputMode = iota
	// ModeDrag moves the curve only while the left button is held.
	ModeDrag
)

// Viewer renders the session into an offscreen image and shows it.
// The image is re-rendered only after the session asks for a redraw.
type Viewer struct {
	session       *session.Session
	mode          InputMode
	width, height int

	current *ebiten.Image
	dirty   bool

	// pointer position last delivered to the session
	lastX, lastY int
	delivered    bool

	// drawing state, valid during render only
	target  *ebiten.Image
	layer   session.Layer
	segment int
}

// NewViewer creates a viewer of width x height pixels.
func NewViewer(s *session.Session, width, height int, mode InputMode) *Viewer {
	return &Viewer{
		session: s,
		mode:    mode,
		width:   width,
		height:  height,
		dirty:   true,
	}
}

func (v *Viewer) Update() error {
	x, y := ebiten.CursorPosition()
	v.pointerMoved(x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	return nil
}

// pointerMoved delivers the cursor position to the session if the mode allows it
// and the position changed. It returns true if the session got the event.
func (v *Viewer) pointerMoved(x, y int, pressed bool) bool {
	if v.mode == ModeDrag && !pressed {
		return false
	}

	if x < 0 || y < 0 || x >= v.width || y >= v.height {
		return false
	}

	if v.delivered && x == v.lastX && y == v.lastY {
		return false
	}

	if err := v.session.HandlePointer(v, x, y); err != nil {
		// keep the last good frame on screen
		glg.Errorf("Cannot update live curve: %v", err)
		return false
	}

	v.lastX, v.lastY, v.delivered = x, y, true

	return true
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.current == nil {
		v.current = ebiten.NewImage(v.width, v.height)
		v.dirty = true
	}

	if v.takeRedraw() {
		v.render()
	}

	screen.DrawImage(v.current, &ebiten.DrawImageOptions{})
}

func (v *Viewer) render() {
	v.current.Fill(backgroundColor)
	v.target = v.current
	v.session.Render(v)
	v.target = nil
}

// takeRedraw reports whether a redraw was requested since the last call.
// Any number of requests results in a single render.
func (v *Viewer) takeRedraw() bool {
	dirty := v.dirty
	v.dirty = false

	return dirty
}

func (v *Viewer) Layout(_, _ int) (screenWidth, screenHeight int) {
	return v.width, v.height
}

// RequestRedraw marks the cached frame as outdated.
func (v *Viewer) RequestRedraw() {
	v.dirty = true
}

func (v *Viewer) Width() int {
	return v.width
}

func (v *Viewer) Height() int {
	return v.height
}

func (v *Viewer) SetLayer(l session.Layer) {
	v.layer = l
	v.segment = 0
}

func (v *Viewer) DrawLine(x0, y0, x1, y1 int) {
	ebitenutil.DrawLine(v.target, float64(x0), float64(y0), float64(x1), float64(y1), v.lineColor())
	v.segment++
}

func (v *Viewer) DrawMarker(x, y, radius int) {
	vector.StrokeCircle(v.target, float32(x), float32(y), float32(radius), 1, markerColor, false)
}

func (v *Viewer) lineColor() color.Color {
	if v.layer != session.LayerLive {
		return staticColor
	}

	return GreenToRed(float64(v.segment) / float64(v.session.Config().Samples))
}
