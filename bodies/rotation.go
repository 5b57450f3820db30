package bodies

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// r3r1r3 performs a 3-1-3 Euler-angle rotation (Schaub & Junkins convention,
// the same one smd's R3R1R3 uses for its PQW-to-ECI conversion).
func r3r1r3(theta1, theta2, theta3 float64) *mat64.Dense {
	s1, c1 := math.Sincos(theta1)
	s2, c2 := math.Sincos(theta2)
	s3, c3 := math.Sincos(theta3)
	return mat64.NewDense(3, 3, []float64{
		c3*c1 - s3*c2*s1, c3*s1 + s3*c2*c1, s3 * s2,
		-s3*c1 - c3*c2*s1, -s3*s1 + c3*c2*c1, c3 * s2,
		s2 * s1, -s2 * c1, c2,
	})
}

// mxv33 multiplies a 3x3 matrix by a 3-vector.
func mxv33(m *mat64.Dense, v []float64) []float64 {
	out := make([]float64, 3)
	vec := mat64.NewVector(3, v)
	res := mat64.NewVector(3, nil)
	res.MulVec(m, vec)
	for i := 0; i < 3; i++ {
		out[i] = res.At(i, 0)
	}
	return out
}

// rot313Vec converts a vector from the PQW frame to the inertial frame via a
// 3-1-3 Euler rotation.
func rot313Vec(theta1, theta2, theta3 float64, v []float64) []float64 {
	return mxv33(r3r1r3(theta1, theta2, theta3), v)
}
