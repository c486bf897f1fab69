package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMoons tests sample counts and the -1/+1 label split.
func TestMoons(t *testing.T) {
	data := Moons(11)

	require.Equal(t, 11, data.NumSamples())
	require.Len(t, data.X, 11)

	// first n/2 samples are the outer moon, the rest the inner
	for i := 0; i < 5; i++ {
		assert.Equal(t, -1.0, data.Y[i])
	}
	for i := 5; i < 11; i++ {
		assert.Equal(t, 1.0, data.Y[i])
	}
}

// TestMoons_OuterOnUnitCircle tests the outer moon's geometry.
func TestMoons_OuterOnUnitCircle(t *testing.T) {
	data := Moons(10)

	for i := 0; i < 5; i++ {
		x, y := data.X[i][0], data.X[i][1]
		assert.InDelta(t, 1.0, x*x+y*y, 1e-9)
		assert.GreaterOrEqual(t, y, 0.0)
	}
}

// TestMoons_InnerShifted tests the inner moon's mirrored placement.
func TestMoons_InnerShifted(t *testing.T) {
	data := Moons(10)

	for i := 5; i < 10; i++ {
		x, y := data.X[i][0], data.X[i][1]
		dx, dy := x-1, y-0.5
		assert.InDelta(t, 1.0, dx*dx+dy*dy, 1e-9)
	}
}

// TestLinspace tests the boundary cases of the point generator.
func TestLinspace(t *testing.T) {
	assert.Nil(t, linspace(0, 1, 0))
	assert.Equal(t, []float64{0}, linspace(0, 1, 1))

	points := linspace(0, math.Pi, 3)
	require.Len(t, points, 3)
	assert.Equal(t, 0.0, points[0])
	assert.InDelta(t, math.Pi/2, points[1], 1e-12)
	assert.InDelta(t, math.Pi, points[2], 1e-12)
}
