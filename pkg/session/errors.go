package session

import "errors"

var (
	ErrInvalidConfig  = errors.New("invalid session config")
	ErrInvalidSurface = errors.New("surface has no area")
)
