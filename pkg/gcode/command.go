package gcode

import (
	"fmt"
	"strings"
)

// Code is a G-code command name (e.g. G0, G2).
type Code string

// list of gcodes. See https://marlinfw.org/docs/gcode/G000-G001.html
// We point out only codes used in this project.
const (
	// G0 is a move command
	G0 Code = "G0"
	// G2 is a clockwise arc move
	G2 Code = "G2"

	CodeMove = G0
	CodeArc  = G2
)

// Command is a single line of G-code. Command with no Code is a comment line.
type Command struct {
	Code        Code
	Args        []Arg
	LineComment string
}

// String formats the command. Line comment is omitted if comments is false.
func (c *Command) String(comments bool) string {
	result := string(c.Code)
	for _, arg := range c.Args {
		result += fmt.Sprintf(" %v%v", arg.Name, arg.Value)
	}

	if c.LineComment != "" && comments {
		result += fmt.Sprintf(" ; %v", c.LineComment)
	}

	return strings.TrimSpace(result)
}

type Arg struct {
	Name  string
	Value any
}
