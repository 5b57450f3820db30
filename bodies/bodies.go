// Package bodies provides celestial-body constants and Keplerian
// initial-condition helpers for IAS15's demo gravity kernels. None of this
// is part of the integrator core: it exists so the examples and the
// testable-property scenarios of the specification (free drift, circular
// orbit, eccentric Kepler orbit) have somewhere concrete to source initial
// positions and velocities from, the same role smd's celestial.go plays for
// its mission propagation.
package bodies

// CelestialObject is a trimmed-down adaptation of smd's CelestialObject,
// keeping only the fields an N-body gravity kernel needs: a name for
// diagnostics, the standard gravitational parameter GM, and an optional J2
// oblateness term for the J2-perturbation demo.
type CelestialObject struct {
	Name   string
	GM     float64 // standard gravitational parameter, km^3/s^2
	Radius float64 // equatorial radius, km
	J2     float64
}

// Sun, Earth and Moon carry the same GM/J2 values smd's celestial.go ships,
// in SI-adjacent km/s units.
var (
	Sun = CelestialObject{Name: "Sun", GM: 1.32712440018e11}
	Earth = CelestialObject{
		Name:   "Earth",
		GM:     3.98600441500e5,
		Radius: 6378.1363,
		J2:     1.08262668e-3,
	}
	Moon = CelestialObject{Name: "Moon", GM: 4.90280695e3, Radius: 1738.1}
)
