// Package config provides built-in profiles and loads user presets.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gucio321/casteljau/pkg/curve"
	"github.com/gucio321/casteljau/pkg/session"
)

//go:embed profiles.json
var profiles []byte

// DefaultProfile is used when no other is requested.
const DefaultProfile = "reference"

// Mode tells what gesture moves the live curve.
type Mode string

const (
	ModeHover Mode = "hover"
	ModeDrag  Mode = "drag"
)

// Format of a preset file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Profile is a complete configuration of the visualizer.
type Profile struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Width and Height of the canvas in pixels
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	Samples       int `json:"samples" yaml:"samples"`
	ControlPoints int `json:"controlPoints" yaml:"controlPoints"`
	MarkerRadius  int `json:"markerRadius" yaml:"markerRadius"`

	// Left and Right are normalized anchors of the live curve
	Left  [2]float64 `json:"left" yaml:"left"`
	Right [2]float64 `json:"right" yaml:"right"`

	Mode Mode `json:"mode" yaml:"mode"`
	// Seed of the control points generator. 0 means random.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

func decodeProfiles() ([]Profile, error) {
	var result []Profile
	if err := json.Unmarshal(profiles, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Get returns built-in profile of the given name.
func Get(name string) (*Profile, error) {
	all, err := decodeProfiles()
	if err != nil {
		return nil, err
	}

	for _, p := range all {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownProfile)
}

// Names lists built-in profiles.
func Names() []string {
	all, err := decodeProfiles()
	if err != nil {
		return nil
	}

	result := make([]string, len(all))
	for i, p := range all {
		result[i] = p.Name
	}

	return result
}

// FormatOf guesses preset format by file extension. Anything that isn't YAML is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a preset file on top of base. Fields missing in the file keep base values.
func Load(path string, base Profile) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, FormatOf(path), base)
}

// Decode is like Load, but reads from memory.
func Decode(data []byte, format Format, base Profile) (*Profile, error) {
	result := base

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("decoding JSON preset: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("decoding YAML preset: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	return &result, nil
}

// Marshal encodes p as a preset.
func Marshal(p Profile, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(p, "", "\t")
	case FormatYAML:
		return yaml.Marshal(p)
	}

	return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// Validate checks whether p describes a usable setup.
func (p Profile) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("canvas must not be empty, got %dx%d: %w", p.Width, p.Height, ErrInvalidProfile)
	case p.Mode != ModeHover && p.Mode != ModeDrag:
		return fmt.Errorf("mode must be %q or %q, got %q: %w", ModeHover, ModeDrag, p.Mode, ErrInvalidProfile)
	}

	if err := p.SessionConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	return nil
}

// SessionConfig converts p to session.Config.
// The live curve's middle point starts halfway between the anchors.
func (p Profile) SessionConfig() session.Config {
	left := curve.Pt(p.Left[0], p.Left[1])
	right := curve.Pt(p.Right[0], p.Right[1])

	return session.Config{
		Samples:       p.Samples,
		ControlPoints: p.ControlPoints,
		MarkerRadius:  p.MarkerRadius,
		Left:          left,
		Right:         right,
		Middle:        curve.Interpolate(left, right, 0.5),
	}
}
