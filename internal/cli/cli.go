// Package cli holds flags shared by the commands.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/kpango/glg"

	"github.com/gucio321/casteljau/pkg/config"
	"github.com/gucio321/casteljau/pkg/session"
	"github.com/gucio321/casteljau/pkg/svgload"
)

// Flags are the command line options shared by casteljau and justrender.
type Flags struct {
	ProfileName  string
	Preset       string
	MakePreset   bool
	PresetFormat string
	InputSVG     string
	Inkscape     bool
	Seed         uint64
	Mode         string
	Samples      int

	fs *flag.FlagSet
}

// Register adds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.ProfileName, "profile", config.DefaultProfile, fmt.Sprintf("built-in profile (%s)", strings.Join(config.Names(), ", ")))
	fs.StringVar(&f.Preset, "preset", "", "JSON or YAML preset file path. Applied on top of -profile")
	fs.BoolVar(&f.MakePreset, "make-preset", false, "print the effective preset and exit")
	fs.StringVar(&f.PresetFormat, "format", string(config.FormatJSON), "format of -make-preset output (json or yaml)")
	fs.StringVar(&f.InputSVG, "i", "", "SVG file to take control points from (random points if empty)")
	fs.BoolVar(&f.Inkscape, "inkscape", false, "convert objects of -i to paths with inkscape first")
	fs.Uint64Var(&f.Seed, "seed", 0, "control points seed (0 = random)")
	fs.StringVar(&f.Mode, "mode", "", "what moves the live curve: hover or drag")
	fs.IntVar(&f.Samples, "n", 0, "number of segments per curve")
}

// Profile resolves -profile, then -preset, then flags set explicitly.
func (f *Flags) Profile() (*config.Profile, error) {
	profile, err := config.Get(f.ProfileName)
	if err != nil {
		return nil, err
	}

	if f.Preset != "" {
		if profile, err = config.Load(f.Preset, *profile); err != nil {
			return nil, fmt.Errorf("unable to read preset from %s: %w (use valid file or empty to not use presets)", f.Preset, err)
		}
	}

	if f.fs != nil {
		f.fs.Visit(func(fl *flag.Flag) {
			switch fl.Name {
			case "seed":
				profile.Seed = f.Seed
			case "mode":
				profile.Mode = config.Mode(f.Mode)
			case "n":
				profile.Samples = f.Samples
			}
		})
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// PrintPreset writes profile to stdout in -format.
func (f *Flags) PrintPreset(profile *config.Profile) error {
	out, err := config.Marshal(*profile, config.Format(f.PresetFormat))
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}

// ControlPoints loads control points from -i. It returns nil if -i is not set.
func (f *Flags) ControlPoints() ([]session.Pt, error) {
	if f.InputSVG == "" {
		return nil, nil
	}

	if _, err := os.Stat(f.InputSVG); err != nil {
		return nil, err
	}

	path := f.InputSVG
	if f.Inkscape {
		var err error
		if path, err = convertToPaths(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file %s: %w", path, err)
	}

	points, err := svgload.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cannot load control points from %s: %w", path, err)
	}

	glg.Infof("Loaded %d control points from %s", len(points), path)

	return points, nil
}

// convertToPaths runs inkscape so that every object in the file becomes a path.
func convertToPaths(input string) (string, error) {
	proxy := inkscape.NewProxy(inkscape.Verbose(true))
	if err := proxy.Run(); err != nil {
		return "", fmt.Errorf("cannot run inkscape: %w", err)
	}

	defer proxy.Close()

	glg.Infof("running inkscape pre-processing")
	converted := input + ".casteljau.svg"
	proxy.RawCommands(
		fmt.Sprintf("file-open:%s", input),
		fmt.Sprintf("export-filename:%s", converted),
		"export-type:svg",
		"select-all",
		"object-to-path",
		"export-do",
	)

	glg.Info("inkscape done.")

	return converted, nil
}
