package config

import "errors"

var (
	ErrUnknownProfile = errors.New("unknown profile")
	ErrInvalidProfile = errors.New("invalid profile")
	ErrUnknownFormat  = errors.New("unknown preset format")
)
