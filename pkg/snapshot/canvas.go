// Package snapshot renders a session into an image without opening a window.
package snapshot

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/gucio321/casteljau/pkg/session"
)

var (
	_ session.Surface = &Canvas{}
	_ session.Layered = &Canvas{}
)

var layerColors = map[session.Layer]color.RGBA{
	session.LayerLive:          colornames.Limegreen,
	session.LayerStatic:        colornames.White,
	session.LayerControlPoints: colornames.Red,
}

// Canvas is a session.Surface backed by a gg software context.
type Canvas struct {
	dc      *gg.Context
	redraws int
	err     error
}

// NewCanvas creates a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(colornames.Black))
	dc.SetLineWidth(1)

	return &Canvas{dc: dc}
}

func (c *Canvas) Width() int {
	return c.dc.Width()
}

func (c *Canvas) Height() int {
	return c.dc.Height()
}

// RequestRedraw only counts requests. A canvas is rendered once, explicitly.
func (c *Canvas) RequestRedraw() {
	c.redraws++
}

// Redraws returns how many times a redraw was requested.
func (c *Canvas) Redraws() int {
	return c.redraws
}

func (c *Canvas) SetLayer(l session.Layer) {
	c.dc.SetColor(layerColors[l])
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	c.stroke()
}

func (c *Canvas) DrawMarker(x, y, radius int) {
	c.dc.DrawCircle(float64(x), float64(y), float64(radius))
	c.stroke()
}

func (c *Canvas) stroke() {
	if err := c.dc.Stroke(); err != nil && c.err == nil {
		c.err = err
	}
}

// Err returns the first error met while drawing.
func (c *Canvas) Err() error {
	return c.err
}

// Image returns what has been drawn so far.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}
