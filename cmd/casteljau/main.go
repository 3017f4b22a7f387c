package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/casteljau/internal/cli"
	"github.com/gucio321/casteljau/pkg/viewer"
)

func main() {
	var f cli.Flags
	f.Register(flag.CommandLine)
	flag.Parse()

	profile, err := f.Profile()
	if err != nil {
		glg.Fatal(err)
	}

	if f.MakePreset {
		if err := f.PrintPreset(profile); err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		glg.Infof("Preset generated")

		return
	}

	mode, err := viewer.ParseMode(string(profile.Mode))
	if err != nil {
		glg.Fatal(err)
	}

	points, err := f.ControlPoints()
	if err != nil {
		glg.Fatal(err)
	}

	// the session is fully initialized before the window can deliver any event
	s, err := profile.NewSession(points)
	if err != nil {
		glg.Fatalf("Cannot create session: %v", err)
	}

	glg.Infof("Profile %q: %d control points, %d samples, %s mode", profile.Name, len(s.ControlPoints()), profile.Samples, profile.Mode)

	ebiten.SetWindowSize(profile.Width, profile.Height)
	ebiten.SetWindowTitle("de Casteljau")

	if err := ebiten.RunGame(viewer.NewViewer(s, profile.Width, profile.Height, mode)); err != nil {
		glg.Fatalf("Cannot run viewer: %v", err)
	}
}
