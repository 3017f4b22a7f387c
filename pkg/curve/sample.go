package curve

import "fmt"

// Sample evaluates the curve at count+1 evenly spaced values of t, both 0 and 1 included.
// Either the whole sequence or an error is returned.
func Sample[T Float](points []Point[T], count int) ([]Point[T], error) {
	if count < 1 {
		return nil, fmt.Errorf("sampling bezier: sample count must be positive, got %d: %w", count, ErrInvalidInput)
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("sampling bezier: no control points: %w", ErrInvalidInput)
	}

	result := make([]Point[T], count+1)
	for i := range result {
		// i/count rather than i*delta, so the last t is exactly 1
		p, err := Evaluate(points, T(i)/T(count))
		if err != nil {
			return nil, err
		}

		result[i] = p
	}

	return result, nil
}
