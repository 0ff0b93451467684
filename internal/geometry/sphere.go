// Package geometry places the shell's point masses on the sphere surface.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/time-dilation/internal/physics"
)

// goldenAngle is pi * (3 - sqrt(5)), the spiral increment that spreads
// successive points near-uniformly over the sphere.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Shell returns pointCount positions evenly distributed on a sphere of
// the given radius using the Fibonacci / golden-angle spiral. The result
// is ordered by index and fully deterministic. pointCount must be at
// least 2: the latitude step divides by pointCount-1.
func Shell(pointCount int, radius float64) ([]r3.Vec, error) {
	if pointCount < 2 {
		return nil, fmt.Errorf("%w: point count %d < 2", physics.ErrInvalidParameter, pointCount)
	}

	points := make([]r3.Vec, pointCount)
	for i := range points {
		y := 1 - (float64(i)/float64(pointCount-1))*2
		ring := math.Sqrt(1 - y*y)
		theta := goldenAngle * float64(i)

		points[i] = r3.Scale(radius, r3.Vec{
			X: math.Cos(theta) * ring,
			Y: y,
			Z: math.Sin(theta) * ring,
		})
	}
	return points, nil
}
