package viewer

import (
	"fmt"
	"image/color"
	"math"
)

// ParseMode converts "hover" or "drag" to InputMode.
func ParseMode(s string) (InputMode, error) {
	switch s {
	case "hover":
		return ModeHover, nil
	case "drag":
		return ModeDrag, nil
	}

	return ModeHover, fmt.Errorf("unknown input mode %q", s)
}

// GreenToRed maps v from [0, 1] to a fully saturated colour going
// from green through yellow to red.
func GreenToRed(v float64) color.RGBA {
	v = math.Max(0, math.Min(1, v))

	// red rises over the first half, green falls over the second
	r := math.Min(1, 2*v)
	g := math.Min(1, 2*(1-v))

	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		A: 255,
	}
}
