package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/time-dilation/internal/physics"
)

const normEps = 1e-9

func TestShellCountAndNorm(t *testing.T) {
	for _, count := range []int{2, 3, 20, 100, 2000} {
		radius := 1e7
		points, err := Shell(count, radius)
		require.NoError(t, err, "count %d", count)
		require.Len(t, points, count)

		for i, p := range points {
			assert.InEpsilon(t, radius, r3.Norm(p), normEps,
				"point %d of %d off the sphere surface", i, count)
		}
	}
}

func TestShellDeterministic(t *testing.T) {
	a, err := Shell(257, 3.5e4)
	require.NoError(t, err)
	b, err := Shell(257, 3.5e4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestShellSpansPoles(t *testing.T) {
	points, err := Shell(100, 2.0)
	require.NoError(t, err)

	// The latitude parameter runs from +1 at index 0 down to -1 at the
	// last index, so the first and last points sit on the poles.
	assert.InDelta(t, 2.0, points[0].Y, normEps)
	assert.InDelta(t, -2.0, points[99].Y, normEps)
}

func TestShellTwoPoints(t *testing.T) {
	points, err := Shell(2, 5.0)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.InDelta(t, 5.0, points[0].Y, normEps)
	assert.InDelta(t, -5.0, points[1].Y, normEps)
}

func TestShellRejectsTooFewPoints(t *testing.T) {
	for _, count := range []int{1, 0, -4} {
		_, err := Shell(count, 1.0)
		assert.ErrorIs(t, err, physics.ErrInvalidParameter, "count %d", count)
	}
}

func TestShellGoldenAngleSpacing(t *testing.T) {
	// Successive points are rotated by pi*(3-sqrt(5)) around Y.
	points, err := Shell(50, 1.0)
	require.NoError(t, err)

	want := math.Pi * (3 - math.Sqrt(5))
	for i := 1; i < 10; i++ {
		prev := math.Atan2(points[i-1].Z, points[i-1].X)
		cur := math.Atan2(points[i].Z, points[i].X)
		diff := math.Mod(cur-prev+4*math.Pi, 2*math.Pi)
		assert.InDelta(t, math.Mod(want, 2*math.Pi), diff, 1e-9, "step %d", i)
	}
}

func BenchmarkShell(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Shell(2000, 1e7); err != nil {
			b.Fatal(err)
		}
	}
}
