package chart

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/samply/qmctl/numeric"
	"github.com/samply/qmctl/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gaussian(sign float64) []physics.Point {
	var points []physics.Point
	for _, x := range numeric.GenRange(-5, 5, 0.1) {
		points = append(points, physics.Point{X: x, Psi: sign * math.Exp(-x*x/2)})
	}
	return points
}

func TestRender(t *testing.T) {
	t.Run("Single", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, Spec{
			Title:  "Gaussian",
			XMin:   -5,
			XMax:   5,
			Series: []Series{{Energy: 0.5, Points: gaussian(1)}},
		}))

		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, Width, img.Bounds().Dx())
		assert.Equal(t, Height, img.Bounds().Dy())
	})

	t.Run("MatchingColours", func(t *testing.T) {
		matchX := -1.0
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, Spec{
			XMin:   -5,
			XMax:   5,
			YMin:   -1,
			YMax:   1,
			Marker: "triangle",
			Series: []Series{{Energy: 0.5, Points: gaussian(1), MatchX: &matchX}},
		}))
		assert.NotZero(t, buf.Len())
	})

	t.Run("WithReference", func(t *testing.T) {
		reference, err := physics.ReferenceByName("harmonic-ground")
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, Spec{
			XMin:      -5,
			XMax:      5,
			Reference: &reference,
			Series: []Series{
				{Label: "a", Energy: 0.5, Points: gaussian(1)},
				{Label: "b", Energy: 0.5, Points: gaussian(-1)},
			},
		}))

		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, Width, img.Bounds().Dx())
	})

	t.Run("DivergedTail", func(t *testing.T) {
		points := append(gaussian(1), physics.Point{X: 4.95, Psi: math.Inf(1)})
		var buf bytes.Buffer
		assert.NoError(t, Render(&buf, Spec{XMin: -5, XMax: 5, Series: []Series{{Points: points}}}))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.EqualError(t, Render(&bytes.Buffer{}, Spec{}), "nothing to draw")
	})
}

func TestLegendLabel(t *testing.T) {
	assert.Equal(t, "E = 1.500", legendLabel(Series{Energy: 1.49996}))
	assert.Equal(t, "Numerov: E = 0.500", legendLabel(Series{Label: "Numerov", Energy: 0.5}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 10.0, clamp(1e4, 10))
	assert.Equal(t, -10.0, clamp(-1e4, 10))
	assert.Equal(t, 3.0, clamp(3, 10))
}
