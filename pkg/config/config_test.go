package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/casteljau/pkg/curve"
	"github.com/gucio321/casteljau/pkg/session"
)

func TestGetReference(t *testing.T) {
	p, err := Get(DefaultProfile)
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	assert.Equal(t, 640, p.Width)
	assert.Equal(t, 480, p.Height)
	assert.Equal(t, ModeDrag, p.Mode)

	cfg := p.SessionConfig()
	def := session.DefaultConfig()
	assert.Equal(t, def.Samples, cfg.Samples)
	assert.Equal(t, def.ControlPoints, cfg.ControlPoints)
	assert.Equal(t, def.MarkerRadius, cfg.MarkerRadius)
	assert.Equal(t, def.Left, cfg.Left)
	assert.Equal(t, def.Right, cfg.Right)
	assert.InDelta(t, def.Middle.X, cfg.Middle.X, 1e-12)
	assert.InDelta(t, def.Middle.Y, cfg.Middle.Y, 1e-12)
}

func TestBuiltinProfilesAreValid(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p, err := Get(name)
			require.NoError(t, err)
			assert.NoError(t, p.Validate())
		})
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no such profile")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestDecodePartial(t *testing.T) {
	base, err := Get(DefaultProfile)
	require.NoError(t, err)

	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"json", FormatJSON, `{"samples": 50, "mode": "hover"}`},
		{"yaml", FormatYAML, "samples: 50\nmode: hover\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode([]byte(tt.data), tt.format, *base)
			require.NoError(t, err)

			assert.Equal(t, 50, p.Samples)
			assert.Equal(t, ModeHover, p.Mode)
			assert.Equal(t, base.ControlPoints, p.ControlPoints)
			assert.Equal(t, base.Left, p.Left)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	base, err := Get(DefaultProfile)
	require.NoError(t, err)

	_, err = Decode([]byte(`{"samples": 0}`), FormatJSON, *base)
	assert.ErrorIs(t, err, ErrInvalidProfile)
	assert.ErrorIs(t, err, session.ErrInvalidConfig)

	_, err = Decode([]byte("mode: sideways\n"), FormatYAML, *base)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = Decode([]byte("width: 0\n"), FormatYAML, *base)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = Decode([]byte(`{}`), Format("toml"), *base)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decode([]byte(`{`), FormatJSON, *base)
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	base, err := Get("large")
	require.NoError(t, err)
	base.Seed = 42

	dir := t.TempDir()
	for _, format := range []Format{FormatJSON, FormatYAML} {
		data, err := Marshal(*base, format)
		require.NoError(t, err)

		path := filepath.Join(dir, "preset."+string(format))
		require.NoError(t, os.WriteFile(path, data, 0o644))

		p, err := Load(path, Profile{})
		require.NoError(t, err)
		assert.Equal(t, *base, *p)
	}
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatOf("a.yaml"))
	assert.Equal(t, FormatYAML, FormatOf("B.YML"))
	assert.Equal(t, FormatJSON, FormatOf("c.json"))
	assert.Equal(t, FormatJSON, FormatOf("noext"))
}

func TestSessionConfigMiddle(t *testing.T) {
	p := Profile{Left: [2]float64{0, 0.2}, Right: [2]float64{1, 0.4}, Samples: 1, ControlPoints: 1}
	cfg := p.SessionConfig()
	assert.InDelta(t, 0.5, cfg.Middle.X, 1e-12)
	assert.InDelta(t, 0.3, cfg.Middle.Y, 1e-12)
	assert.Equal(t, curve.Pt(0.0, 0.2), cfg.Left)
}

func TestNewSessionSeeded(t *testing.T) {
	p, err := Get(DefaultProfile)
	require.NoError(t, err)
	p.Seed = 1234

	a, err := p.NewSession(nil)
	require.NoError(t, err)
	b, err := p.NewSession(nil)
	require.NoError(t, err)

	assert.Len(t, a.ControlPoints(), p.ControlPoints)
	assert.Equal(t, a.ControlPoints(), b.ControlPoints())
}

func TestNewSessionWithPoints(t *testing.T) {
	p, err := Get(DefaultProfile)
	require.NoError(t, err)

	points := []session.Pt{curve.Pt(0.1, 0.1), curve.Pt(0.5, 0.9), curve.Pt(0.9, 0.1)}
	s, err := p.NewSession(points)
	require.NoError(t, err)
	assert.Equal(t, points, s.ControlPoints())
	assert.Equal(t, 3, s.Config().ControlPoints)
}
