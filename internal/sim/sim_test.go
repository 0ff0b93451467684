package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockEmitThenIncrement(t *testing.T) {
	var c Clock

	outside, inside := c.Tick(0.5)
	assert.Equal(t, 0, outside)
	assert.Equal(t, 0.0, inside)

	outside, inside = c.Tick(0.5)
	assert.Equal(t, 1, outside)
	assert.Equal(t, 0.5, inside)

	assert.Equal(t, 2, c.OutsideDays())
}

func TestClockCountsTicksAfterReset(t *testing.T) {
	var c Clock
	c.Tick(1)
	c.Tick(1)

	outside, inside := c.Reset()
	assert.Equal(t, 0, outside)
	assert.Equal(t, 0.0, inside)

	const n = 37
	for i := 0; i < n; i++ {
		c.Tick(0.9)
	}
	assert.Equal(t, n, c.OutsideDays())
}

func TestClockReadsDilationFresh(t *testing.T) {
	// Inside time uses the factor passed at each tick, not a cached one.
	var c Clock
	c.Tick(1.0) // counter 0 -> 1
	_, inside := c.Tick(0.25)
	assert.Equal(t, 0.25, inside, "1 day at factor 0.25")
}

func TestZoomSteps(t *testing.T) {
	z := NewZoom()
	assert.Equal(t, 1.0, z.Level())

	assert.InDelta(t, 1.2, z.In(), 1e-12)
	assert.InDelta(t, 1.44, z.In(), 1e-12)
	assert.InDelta(t, 1.2, z.Out(), 1e-12)
}

func TestZoomRoundTrip(t *testing.T) {
	// Ten ins and ten outs return near 1.0; repeated multiply/divide by
	// 1.2 is not exact in binary floating point.
	z := NewZoom()
	for i := 0; i < 10; i++ {
		z.In()
	}
	for i := 0; i < 10; i++ {
		z.Out()
	}
	assert.InDelta(t, 1.0, z.Level(), 1e-12)
}

func TestZoomUnclamped(t *testing.T) {
	z := NewZoom()
	for i := 0; i < 200; i++ {
		z.Out()
	}
	assert.Greater(t, z.Level(), 0.0)
	assert.Less(t, z.Level(), 1e-10)
}
