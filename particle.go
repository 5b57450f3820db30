package ias15

// maxSubLevels is the number of hierarchical step-class levels the past-position
// cache supports. A particle's dtexp is clamped to [-2, 0], and the predictor
// reads the cache at level -dtexp+1, so this must be at least 4 to cover
// dtexp=-2 without an out-of-range index.
const maxSubLevels = 4

// subNodes is the number of Gauss-Radau sub-intervals cached per level (h_0..h_7).
const subNodes = 8

// Particle is a single point mass owned by the external particle store. The
// gravity kernel and the integrator both read and write it; see AccelerationFunc.
type Particle struct {
	X, Y, Z    float64 // position
	VX, VY, VZ float64 // velocity
	AX, AY, AZ float64 // acceleration, written by the external force evaluator

	Mass float64 // not used by the integrator itself; convenience for force kernels

	Tdone  float64 // simulation time at which this particle was last fully advanced
	Dtdone float64 // length of the last successful step applied to this particle
	Dtexp  int     // step-class exponent in [-2, 0], meaning step size max_dt * 8^Dtexp

	// Xpast/Ypast/Zpast cache this particle's position at each Gauss-Radau
	// sub-node, indexed [level][subNode], so a coarser-class particle can be
	// evaluated at a finer class's nodes without re-integrating it.
	Xpast, Ypast, Zpast [maxSubLevels][subNodes]float64
}

// clampDtexp restricts a step-class exponent to the valid [-2, 0] range.
func clampDtexp(e int) int {
	if e > 0 {
		return 0
	}
	if e < -2 {
		return -2
	}
	return e
}
