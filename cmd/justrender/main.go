package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpango/glg"

	"github.com/gucio321/casteljau/internal/cli"
	"github.com/gucio321/casteljau/pkg/gcode"
	"github.com/gucio321/casteljau/pkg/session"
	"github.com/gucio321/casteljau/pkg/snapshot"
)

func main() {
	var f cli.Flags
	f.Register(flag.CommandLine)
	output := flag.String("o", "", "output PNG file")
	gcodeOutput := flag.String("gcode", "", "output G-code file")
	noComments := flag.Bool("nlc", false, "no line comments in G-code")
	mid := flag.String("mid", "", "pointer position x,y in pixels (default: halfway between the anchors)")
	flag.Parse()

	profile, err := f.Profile()
	if err != nil {
		glg.Fatal(err)
	}

	if f.MakePreset {
		if err := f.PrintPreset(profile); err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		return
	}

	if *output == "" && *gcodeOutput == "" {
		flag.Usage()
		glg.Fatal("-o or -gcode is required")
	}

	points, err := f.ControlPoints()
	if err != nil {
		glg.Fatal(err)
	}

	s, err := profile.NewSession(points)
	if err != nil {
		glg.Fatalf("Cannot create session: %v", err)
	}

	var px, py int
	hasMid := *mid != ""
	if hasMid {
		if _, err := fmt.Sscanf(*mid, "%d,%d", &px, &py); err != nil {
			glg.Fatalf("Invalid -mid %q: %v", *mid, err)
		}
	}

	if *output != "" {
		canvas := snapshot.NewCanvas(profile.Width, profile.Height)
		defer canvas.Close()

		render(s, canvas, hasMid, px, py)

		if err := canvas.Err(); err != nil {
			glg.Fatalf("Cannot render frame: %v", err)
		}

		if err := canvas.SavePNG(*output); err != nil {
			glg.Fatalf("Cannot write file %s: %v", *output, err)
		}

		glg.Infof("Frame saved to %s", *output)
	}

	if *gcodeOutput != "" {
		builder := gcode.NewBuilder(profile.Width, profile.Height, gcode.DefaultWorkspace).Comments(!*noComments)

		render(s, builder, hasMid, px, py)

		if err := builder.Finish(); err != nil {
			glg.Fatalf("Cannot generate G-code: %v", err)
		}

		if err := os.WriteFile(*gcodeOutput, []byte(builder.String()), 0o644); err != nil {
			glg.Fatalf("Cannot write file %s: %v", *gcodeOutput, err)
		}

		glg.Infof("G-code saved to %s", *gcodeOutput)
	}
}

// render delivers the pointer event, if any, and draws the current state.
func render(s *session.Session, surface session.Surface, hasMid bool, px, py int) {
	if hasMid {
		if err := s.HandlePointer(surface, px, py); err != nil {
			glg.Fatalf("Cannot move live curve: %v", err)
		}
	}

	s.Render(surface)
}
