// Package curve evaluates Bézier curves of any degree with de Casteljau's algorithm.
package curve

import "fmt"

// Interpolate returns a*(1-t) + b*t.
// t is not clamped: values outside [0, 1] extrapolate along the line.
func Interpolate[T Float](a, b Point[T], t T) Point[T] {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Evaluate returns the point at t of the Bézier curve defined by points.
// It reduces the control polygon by interpolating adjacent pairs until one point is left.
func Evaluate[T Float](points []Point[T], t T) (Point[T], error) {
	if len(points) == 0 {
		return Point[T]{}, fmt.Errorf("evaluating bezier: no control points: %w", ErrInvalidInput)
	}

	buf := make([]Point[T], len(points))
	copy(buf, points)

	for n := len(buf) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			buf[i] = Interpolate(buf[i], buf[i+1], t)
		}
	}

	return buf[0], nil
}

// EvaluateRecursive does the same as Evaluate, but in the plain recursive form.
// It makes 2^(n-1) calls for n points, so keep it for small inputs.
func EvaluateRecursive[T Float](points []Point[T], t T) (Point[T], error) {
	if len(points) == 0 {
		return Point[T]{}, fmt.Errorf("evaluating bezier: no control points: %w", ErrInvalidInput)
	}

	return evaluateRange(points, t, 0, len(points)-1), nil
}

// evaluateRange evaluates the curve of points[begin:end+1].
func evaluateRange[T Float](points []Point[T], t T, begin, end int) Point[T] {
	if begin == end {
		return points[begin]
	}

	a := evaluateRange(points, t, begin, end-1)
	b := evaluateRange(points, t, begin+1, end)

	return Interpolate(a, b, t)
}
