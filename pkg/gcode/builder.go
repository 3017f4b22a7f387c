// Package gcode plots a session with a pen plotter.
// Builder is a session.Surface which turns draw calls into relative-positioning G-code.
package gcode

import (
	"fmt"
	"math"
	"strings"

	"github.com/gucio321/casteljau/pkg/curve"
	"github.com/gucio321/casteljau/pkg/session"
)

var (
	_ session.Surface = &Builder{}
	_ session.Layered = &Builder{}
)

type (
	// RelativePos is a position relative to the current head position.
	RelativePos float32
	// HardwarePos is an absolute position on the plotter, in millimetres.
	HardwarePos float32
)

const DefaultPreamble = `;; BEGIN PREAMBLE
M413 S0 ; Disable power loss recovery
M107 ; Fan off
M104 S0 ; Set target temperature
G92 E0 ; Hotend reset
G90 ; Absolute positioning

G28 X Y ; Home X and Y axes

G0 X80 Y80 F5000.0 ; Move to start position

G91 ; Relative positioning

M204 S2000 ; Printing and travel speed in mm/s/s

;; END PREAMBLE
`

const DefaultPostamble = `;; BEGIN POSTAMBLE
M84 X Y Z E ; Disable ALL motors
;; END POSTAMBLE
`

const (
	// BaseX, BaseY is where the preamble leaves the head.
	BaseX, BaseY = 80, 80
	BaseDepth    = 20
)

// Workspace is the drawing area of the plotter, in millimetres.
type Workspace struct {
	MinX, MinY, MaxX, MaxY HardwarePos
}

// DefaultWorkspace is an 80x80 mm square starting at BaseX, BaseY.
var DefaultWorkspace = Workspace{MinX: 80, MinY: 80, MaxX: 160, MaxY: 160}

func (w Workspace) contains(p curve.Point[HardwarePos]) bool {
	return p.X >= w.MinX && p.X <= w.MaxX && p.Y >= w.MinY && p.Y <= w.MaxY
}

// Builder builds G-code of a rendered session frame.
// The canvas is scaled uniformly to fit the workspace, with Y pointing up.
type Builder struct {
	workspace     Workspace
	width, height int
	scale         float32
	depth         int
	comments      bool

	commands  []Command
	isDrawing bool
	currentP  curve.Point[HardwarePos]
	err       error
}

// NewBuilder creates a builder for a canvas of width x height pixels.
func NewBuilder(width, height int, workspace Workspace) *Builder {
	scale := float32(math.Min(
		float64(workspace.MaxX-workspace.MinX)/float64(width),
		float64(workspace.MaxY-workspace.MinY)/float64(height),
	))

	return &Builder{
		workspace: workspace,
		width:     width,
		height:    height,
		scale:     scale,
		depth:     BaseDepth,
		comments:  true,
		currentP:  curve.Pt[HardwarePos](BaseX, BaseY),
	}
}

// SetDepth sets how much the head goes down to draw.
func (b *Builder) SetDepth(depth int) *Builder {
	b.depth = depth
	return b
}

// Comments enables or disables line comments in String.
func (b *Builder) Comments(enabled bool) *Builder {
	b.comments = enabled
	return b
}

func (b *Builder) Width() int {
	return b.width
}

func (b *Builder) Height() int {
	return b.height
}

// RequestRedraw does nothing, plot is built from a single Render call.
func (b *Builder) RequestRedraw() {}

func (b *Builder) SetLayer(l session.Layer) {
	b.Commentf("Layer: %s", l)
}

// DrawLine continues the current stroke if (x0, y0) is where the pen is.
func (b *Builder) DrawLine(x0, y0, x1, y1 int) {
	p0, p1 := b.toHardware(x0, y0), b.toHardware(x1, y1)

	if !b.isDrawing || p0 != b.currentP {
		b.record(b.startDrawing(p0))
	}

	b.moveTo(p1)
}

// DrawMarker draws a full circle around (x, y).
func (b *Builder) DrawMarker(x, y, radius int) {
	center := b.toHardware(x, y)
	r := HardwarePos(float32(radius) * b.scale)
	start := curve.Pt(center.X, center.Y+r)

	b.record(b.startDrawing(start))

	rel := b.toRel(center)
	b.PushCommand(Command{
		LineComment: fmt.Sprintf("Circle around %v with radius %v", center, r),
		Code:        CodeArc,
		Args: []Arg{
			{"I", rel.X},
			{"J", rel.Y},
		},
	})

	b.record(b.Up())
}

// Finish lifts the pen if it is down. Call it after rendering.
func (b *Builder) Finish() error {
	if b.isDrawing {
		b.record(b.Up())
	}

	return b.err
}

// Err returns the first error met while plotting.
func (b *Builder) Err() error {
	return b.err
}

// Up stops active drawing.
func (b *Builder) Up() error {
	if !b.isDrawing {
		return fmt.Errorf("up called, but not drawing: %w", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{
		LineComment: "stop drawing",
		Code:        CodeMove,
		Args:        []Arg{{"Z", b.depth}},
	})

	b.isDrawing = false

	return nil
}

// Down starts drawing.
func (b *Builder) Down() error {
	if b.isDrawing {
		return fmt.Errorf("down called, but already drawing: %w", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{
		LineComment: "start drawing",
		Code:        CodeMove,
		Args:        []Arg{{"Z", -b.depth}},
	})

	b.isDrawing = true

	return nil
}

func (b *Builder) startDrawing(p curve.Point[HardwarePos]) error {
	if b.isDrawing {
		if err := b.Up(); err != nil {
			return err
		}
	}

	b.moveTo(p)

	return b.Down()
}

// moveTo moves the head to p. It does NOT call Up/Down.
func (b *Builder) moveTo(p curve.Point[HardwarePos]) {
	if !b.workspace.contains(p) {
		b.record(fmt.Errorf("moving to %v: %w", p, ErrOutOfWorkspace))
		return
	}

	rel := b.toRel(p)
	b.currentP = p

	b.PushCommand(Command{
		LineComment: fmt.Sprintf("Move to %v", p),
		Code:        CodeMove,
		Args: []Arg{
			{"X", rel.X},
			{"Y", rel.Y},
		},
	})
}

func (b *Builder) toHardware(x, y int) curve.Point[HardwarePos] {
	return curve.Pt(
		b.workspace.MinX+HardwarePos(float32(x)*b.scale),
		b.workspace.MinY+HardwarePos(float32(b.height-y)*b.scale),
	)
}

func (b *Builder) toRel(p curve.Point[HardwarePos]) curve.Point[RelativePos] {
	return curve.Redefine[RelativePos](p.Add(b.currentP.Mul(-1)))
}

func (b *Builder) record(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

// PushCommand appends commands as they are.
func (b *Builder) PushCommand(c ...Command) *Builder {
	b.commands = append(b.commands, c...)
	return b
}

// Comment writes comment to G-code.
func (b *Builder) Comment(comment string) *Builder {
	return b.PushCommand(Command{LineComment: comment})
}

func (b *Builder) Commentf(format string, args ...any) *Builder {
	return b.Comment(fmt.Sprintf(format, args...))
}

// Commands returns commands pushed so far.
func (b *Builder) Commands() []Command {
	return append([]Command(nil), b.commands...)
}

// String returns built G-code with preamble and postamble.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString(DefaultPreamble)
	sb.WriteString("\n")

	for _, c := range b.commands {
		line := c.String(b.comments)
		if line == "" {
			continue
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(DefaultPostamble)

	return sb.String()
}
