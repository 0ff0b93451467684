// Package physics holds the numeric model of the shell: aggregate mass,
// gravitational potential at the center, the weak-field time-dilation
// factor and the derived safe radius.
//
// The center potential deliberately treats the shell as if its whole mass
// acted from distance Radius. A uniform Newtonian shell would have zero
// interior potential gradient; the simplified form is what the simulator
// teaches with, so it is kept as-is.
package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when parameters fall outside the valid
// domain (point count below 2, non-positive mass or radius).
var ErrInvalidParameter = errors.New("invalid parameter")

// Params are the raw simulation inputs. A fresh value is built on every
// UI change; Params are never mutated in place.
type Params struct {
	PointCount int     // number of point masses on the shell, >= 2
	PointMass  float64 // mass of each point in kg, > 0
	Radius     float64 // shell radius in meters, > 0
}

// Validate checks the domain invariants shared by the geometry and
// physics code.
func (p Params) Validate() error {
	if p.PointCount < 2 {
		return fmt.Errorf("%w: point count %d < 2", ErrInvalidParameter, p.PointCount)
	}
	if p.PointMass <= 0 {
		return fmt.Errorf("%w: point mass %g kg must be positive", ErrInvalidParameter, p.PointMass)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("%w: radius %g m must be positive", ErrInvalidParameter, p.Radius)
	}
	return nil
}

// Derived are the quantities the UI renders. A pure function of Params,
// recomputed on every change and never cached.
type Derived struct {
	TotalMass  float64 // kg
	Dilation   float64 // proper time inside per unit outside time, in (0, 1]
	SafeRadius float64 // m, always <= 0.99 * Params.Radius
}

// Compute derives the display quantities from p. It is idempotent:
// identical inputs produce bit-identical outputs.
func Compute(p Params) (Derived, error) {
	if err := p.Validate(); err != nil {
		return Derived{}, err
	}

	totalMass := p.PointMass * float64(p.PointCount)
	centerPotential := -G * totalMass / p.Radius
	dilation := 1 / math.Sqrt(1+2*math.Abs(centerPotential)/(C*C))

	safeRadius := p.Radius * math.Cbrt(C*C/(2*G*totalMass*p.Radius))
	safeRadius = math.Min(safeRadius, p.Radius*0.99)

	return Derived{
		TotalMass:  totalMass,
		Dilation:   dilation,
		SafeRadius: safeRadius,
	}, nil
}

// FormatMass renders a mass as kilograms plus Jupiter and Sun
// equivalents, e.g. "1.00e+32 kg (52687 Jupiters, 50.277 Suns)".
// The precision thresholds are user-visible and fixed: Jupiters get three
// decimals below one and none at or above, Suns six decimals below one
// and three at or above.
func FormatMass(kg float64) string {
	jupiters := kg / MassJupiter
	suns := kg / MassSun

	var jupiterText string
	if jupiters < 1 {
		jupiterText = fmt.Sprintf("%.3f Jupiters", jupiters)
	} else {
		jupiterText = fmt.Sprintf("%.0f Jupiters", jupiters)
	}

	var sunText string
	if suns < 1 {
		sunText = fmt.Sprintf("%.6f Suns", suns)
	} else {
		sunText = fmt.Sprintf("%.3f Suns", suns)
	}

	return fmt.Sprintf("%.2e kg (%s, %s)", kg, jupiterText, sunText)
}
