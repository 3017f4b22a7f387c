// Package svgload takes control points from an SVG drawing instead of generating random ones.
package svgload

import (
	"errors"
	"fmt"
	"math"

	"github.com/rustyoz/svg"

	"github.com/gucio321/casteljau/pkg/curve"
	"github.com/gucio321/casteljau/pkg/session"
)

// DefaultMargin keeps loaded points off the canvas border.
const DefaultMargin = 0.05

var (
	ErrNoPoints    = errors.New("no points found in SVG")
	ErrInvalidData = errors.New("cannot read SVG drawing instructions")
)

// Parse reads path vertices and curve control points of an SVG image, in document order,
// and normalizes them with DefaultMargin.
func Parse(data []byte) ([]session.Pt, error) {
	img, err := svg.ParseSvg(string(data), "", 1)
	if err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}

	raw, err := collect(img)
	if err != nil {
		return nil, err
	}

	return Normalize(raw, DefaultMargin)
}

func collect(img *svg.Svg) ([]session.Pt, error) {
	instructions, errs := img.ParseDrawingInstructions()
	if instructions == nil || errs == nil {
		return nil, ErrInvalidData
	}

	var result []session.Pt

	for {
		select {
		case cmd, ok := <-instructions:
			if !ok || cmd == nil {
				return result, nil
			}

			switch cmd.Kind {
			case svg.MoveInstruction, svg.LineInstruction:
				result = append(result, curve.Pt(cmd.M[0], cmd.M[1]))
			case svg.CurveInstruction:
				result = append(result,
					curve.Pt(cmd.CurvePoints.C1[0], cmd.CurvePoints.C1[1]),
					curve.Pt(cmd.CurvePoints.C2[0], cmd.CurvePoints.C2[1]),
					curve.Pt(cmd.CurvePoints.T[0], cmd.CurvePoints.T[1]),
				)
			}
		case err, ok := <-errs:
			if !ok {
				// no more errors can come, wait for the instructions only
				errs = nil
				continue
			}

			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
			}
		}
	}
}

// Normalize scales points uniformly into [margin, 1-margin] keeping their aspect ratio.
// A single point, or points on one vertical or horizontal line, are centered on the other axis.
func Normalize(points []session.Pt, margin float64) ([]session.Pt, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	span := math.Max(maxX-minX, maxY-minY)
	size := 1 - 2*margin

	scale := 0.0
	if span > 0 {
		scale = size / span
	}

	// center the bounding box in the canvas
	offset := curve.Pt(
		0.5-(maxX-minX)*scale/2,
		0.5-(maxY-minY)*scale/2,
	)

	result := make([]session.Pt, len(points))
	for i, p := range points {
		result[i] = curve.Pt(p.X-minX, p.Y-minY).Mul(scale).Add(offset)
	}

	return result, nil
}
