package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleLength(t *testing.T) {
	tests := []struct {
		name   string
		points []Point[float64]
		count  int
	}{
		{"single point", []Point[float64]{Pt(0.5, 0.5)}, 1},
		{"line", []Point[float64]{Pt(0.0, 0.0), Pt(1.0, 1.0)}, 10},
		{"quadratic", []Point[float64]{Pt(0.1, 0.5), Pt(0.5, 0.5), Pt(0.9, 0.5)}, 100},
		{"many points", []Point[float64]{
			Pt(0.0, 0.1), Pt(0.1, 0.9), Pt(0.2, 0.4), Pt(0.3, 0.6), Pt(0.4, 0.2),
			Pt(0.5, 0.8), Pt(0.6, 0.3), Pt(0.7, 0.7), Pt(0.8, 0.5), Pt(0.9, 0.0),
		}, 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := Sample(tt.points, tt.count)
			require.NoError(t, err)
			require.Len(t, samples, tt.count+1)

			first, err := Evaluate(tt.points, 0)
			require.NoError(t, err)
			last, err := Evaluate(tt.points, 1)
			require.NoError(t, err)

			assert.Equal(t, first, samples[0])
			assert.Equal(t, last, samples[tt.count])
		})
	}
}

func TestSampleUniformParameter(t *testing.T) {
	points := []Point[float64]{Pt(0.0, 0.0), Pt(1.0, 1.0)}

	samples, err := Sample(points, 4)
	require.NoError(t, err)

	for i, s := range samples {
		want := float64(i) / 4
		assert.InDelta(t, want, s.X, 1e-12)
		assert.InDelta(t, want, s.Y, 1e-12)
	}
}

func TestSampleDeterministic(t *testing.T) {
	points := []Point[float64]{Pt(0.0, 0.3), Pt(0.25, 0.9), Pt(0.5, 0.1), Pt(0.75, 0.6), Pt(1.0, 0.2)}

	a, err := Sample(points, 100)
	require.NoError(t, err)
	b, err := Sample(points, 100)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSampleInvalidInput(t *testing.T) {
	_, err := Sample([]Point[float64]{Pt(0.0, 0.0)}, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Sample([]Point[float64]{Pt(0.0, 0.0)}, -3)
	assert.ErrorIs(t, err, ErrInvalidInput)

	samples, err := Sample[float64](nil, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, samples)
}
