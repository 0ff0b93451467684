package physics

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStrongPotential(t *testing.T) {
	// 100 points of 1e30 kg on a 1e7 m shell: a deep well.
	d, err := Compute(Params{PointCount: 100, PointMass: 1e30, Radius: 1e7})
	require.NoError(t, err)

	assert.Equal(t, 1e32, d.TotalMass)
	// 2|phi|/c^2 is about 0.01485 here, so the factor sits visibly
	// below one at the six decimals the UI shows.
	assert.InDelta(t, 0.992656, d.Dilation, 1e-4)
	assert.Less(t, d.Dilation, 0.9999, "deep well should dilate noticeably")
	assert.Less(t, d.SafeRadius, 1e7, "safe radius stays inside the shell")
}

func TestComputeNegligibleMass(t *testing.T) {
	d, err := Compute(Params{PointCount: 100, PointMass: 1, Radius: 1e7})
	require.NoError(t, err)

	// At 1 kg per point the potential is immeasurably small and the
	// factor reads 1.000000 at the six decimals the UI shows.
	assert.Equal(t, "1.000000", fmt.Sprintf("%.6f", d.Dilation))
	assert.LessOrEqual(t, d.Dilation, 1.0)
	assert.Greater(t, d.Dilation, 0.0)
}

func TestDilationRange(t *testing.T) {
	for _, p := range []Params{
		{2, 1e20, 1e-2},
		{20, 1e25, 1e3},
		{500, 1e40, 1e7},
		{2000, 1e50, 1e12},
	} {
		d, err := Compute(p)
		require.NoError(t, err, "params %+v", p)
		assert.Greater(t, d.Dilation, 0.0, "params %+v", p)
		assert.LessOrEqual(t, d.Dilation, 1.0, "params %+v", p)
	}
}

func TestSafeRadiusClamp(t *testing.T) {
	for _, p := range []Params{
		{20, 1e20, 1e-2},
		{100, 1e30, 1e7},
		{2000, 1e50, 1e12},
	} {
		d, err := Compute(p)
		require.NoError(t, err)
		assert.LessOrEqual(t, d.SafeRadius, 0.99*p.Radius, "params %+v", p)
		assert.Greater(t, d.SafeRadius, 0.0, "params %+v", p)
	}
}

func TestSafeRadiusUnclampedFormula(t *testing.T) {
	p := Params{PointCount: 100, PointMass: 1e30, Radius: 1e7}
	d, err := Compute(p)
	require.NoError(t, err)

	want := p.Radius * math.Cbrt(C*C/(2*G*d.TotalMass*p.Radius))
	if want > p.Radius*0.99 {
		want = p.Radius * 0.99
	}
	assert.Equal(t, want, d.SafeRadius)
}

func TestComputeIdempotent(t *testing.T) {
	p := Params{PointCount: 137, PointMass: 3.7e29, Radius: 2.5e6}
	a, err := Compute(p)
	require.NoError(t, err)
	b, err := Compute(p)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical inputs must give bit-identical outputs")
}

func TestComputeInvalidParams(t *testing.T) {
	for _, p := range []Params{
		{1, 1e30, 1e7},  // point count below 2
		{0, 1e30, 1e7},  // no points
		{100, 0, 1e7},   // zero mass
		{100, -1, 1e7},  // negative mass
		{100, 1e30, 0},  // zero radius
		{100, 1e30, -5}, // negative radius
	} {
		_, err := Compute(p)
		assert.ErrorIs(t, err, ErrInvalidParameter, "params %+v", p)
	}
}

func TestFormatMassThresholds(t *testing.T) {
	cases := []struct {
		kg   float64
		want string
	}{
		// Below one Jupiter: three decimals; far below one Sun: six.
		{1.898e26, "1.90e+26 kg (0.100 Jupiters, 0.000095 Suns)"},
		// At or above one Jupiter: whole Jupiters, Suns still six decimals.
		{1.898e28, "1.90e+28 kg (10 Jupiters, 0.009542 Suns)"},
		// At or above one Sun: three decimals.
		{3.978e30, "3.98e+30 kg (2096 Jupiters, 2.000 Suns)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatMass(c.kg))
	}
}

func TestFormatMassMonotonic(t *testing.T) {
	// Increasing mass never decreases the reported Jupiter/Sun counts.
	prevJ, prevS := -1.0, -1.0
	for exp := 20; exp <= 50; exp++ {
		kg := math.Pow(10, float64(exp))
		j := kg / MassJupiter
		s := kg / MassSun
		assert.GreaterOrEqual(t, j, prevJ)
		assert.GreaterOrEqual(t, s, prevS)
		prevJ, prevS = j, s
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Params{PointCount: 2, PointMass: 1, Radius: 1}.Validate())
	assert.True(t, errors.Is(Params{PointCount: 1, PointMass: 1, Radius: 1}.Validate(), ErrInvalidParameter))
}
