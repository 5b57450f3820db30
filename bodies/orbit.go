package bodies

import "math"

const (
	deg2rad      = math.Pi / 180
	eccentricityε = 1e-7
	angleε        = 1e-7
)

// StateFromElements converts classical orbital elements to a Cartesian
// state, adapted from smd's NewOrbitFromOE (itself Vallado 4th ed. p.118,
// COE2RV), trimmed to the circular/inclined/elliptical cases the
// specification's Kepler scenarios exercise. Angles are in degrees, radii in
// the same length unit as center.GM's numerator (km for the defaults above).
func StateFromElements(a, e, i, raan, argp, nu float64, center CelestialObject) (r, v [3]float64) {
	i *= deg2rad
	raan *= deg2rad
	argp *= deg2rad
	nu *= deg2rad

	if e < eccentricityε && i < angleε {
		raan, argp = 0, 0
	} else if e < eccentricityε {
		argp = 0
	} else if i < angleε {
		raan = 0
	}

	p := a * (1 - e*e)
	muOverP := math.Sqrt(center.GM / p)
	sinNu, cosNu := math.Sincos(nu)
	rPQW := []float64{p * cosNu / (1 + e*cosNu), p * sinNu / (1 + e*cosNu), 0}
	vPQW := []float64{-muOverP * sinNu, muOverP * (e + cosNu), 0}

	rIJK := rot313Vec(-argp, -i, -raan, rPQW)
	vIJK := rot313Vec(-argp, -i, -raan, vPQW)
	return [3]float64{rIJK[0], rIJK[1], rIJK[2]}, [3]float64{vIJK[0], vIJK[1], vIJK[2]}
}

// CircularVelocity returns the speed of a circular orbit of the given radius
// about center, v = sqrt(GM/r).
func CircularVelocity(radius float64, center CelestialObject) float64 {
	return math.Sqrt(center.GM / radius)
}
