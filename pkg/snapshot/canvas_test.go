package snapshot

import (
	"bytes"
	"image/png"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/casteljau/pkg/session"
)

func renderTestFrame(t *testing.T) *Canvas {
	t.Helper()
	s, err := session.New(session.DefaultConfig(), rand.New(rand.NewPCG(9, 9)))
	require.NoError(t, err)

	c := NewCanvas(640, 480)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, s.HandlePointer(c, 320, 100))
	s.Render(c)
	require.NoError(t, c.Err())

	return c
}

func TestCanvasRender(t *testing.T) {
	c := renderTestFrame(t)

	assert.Equal(t, 640, c.Width())
	assert.Equal(t, 480, c.Height())
	assert.Equal(t, 1, c.Redraws())

	img := c.Image()
	require.Equal(t, 640, img.Bounds().Dx())
	require.Equal(t, 480, img.Bounds().Dy())

	lit := 0
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if r, g, b, _ := img.At(x, y).RGBA(); r+g+b > 0 {
				lit++
			}
		}
	}

	assert.Positive(t, lit, "nothing was drawn")
}

func TestCanvasEncodePNG(t *testing.T) {
	c := renderTestFrame(t)

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
}

func TestCanvasSavePNG(t *testing.T) {
	c := renderTestFrame(t)
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, c.SavePNG(path))
	assert.FileExists(t, path)
}
