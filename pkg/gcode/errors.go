package gcode

import "errors"

var (
	ErrCantChangeDrawingState = errors.New("cannot change drawing state")
	ErrOutOfWorkspace         = errors.New("position out of workspace")
)
