package physics

// Physical constants used by the weak-field model.
const (
	G = 6.67430e-11 // gravitational constant (m^3 kg^-1 s^-2)
	C = 299792458   // speed of light (m/s)

	MassJupiter = 1.898e27 // kg
	MassSun     = 1.989e30 // kg
)
