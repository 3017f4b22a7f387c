package session

// Surface is where a session draws itself and where it learns the canvas size from.
type Surface interface {
	DrawLine(x0, y0, x1, y1 int)
	DrawMarker(x, y, radius int)
	Width() int
	Height() int
	// RequestRedraw asks the surface to call Render again at some point.
	// Several requests may be merged into one redraw.
	RequestRedraw()
}

// Layer is a part of the frame.
type Layer int

const (
	// LayerLive is the pointer-driven curve.
	LayerLive Layer = iota
	// LayerStatic is the curve through the generated control points.
	LayerStatic
	// LayerControlPoints are the markers of the generated control points.
	LayerControlPoints
)

func (l Layer) String() string {
	switch l {
	case LayerLive:
		return "live curve"
	case LayerStatic:
		return "static curve"
	case LayerControlPoints:
		return "control points"
	}

	return "unknown layer"
}

// Layered surfaces are told which layer the following draw calls belong to.
type Layered interface {
	SetLayer(Layer)
}
