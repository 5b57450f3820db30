package ias15

import (
	"math"

	"github.com/gonum/floats"
)

// norm3 returns the Euclidean norm of a 3-vector, mirroring smd's Norm
// helper for the same shape of data.
func norm3(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// approxEqual reports whether a and b are within abs of each other, the same
// tolerance-comparison idiom smd uses throughout via gonum/floats rather than
// a hand-rolled math.Abs(a-b) < eps check.
func approxEqual(a, b, abs float64) bool {
	return floats.EqualWithinAbs(a, b, abs)
}
