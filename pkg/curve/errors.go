package curve

import "errors"

// ErrInvalidInput is returned for empty control point lists and non-positive sample counts.
var ErrInvalidInput = errors.New("invalid input")
