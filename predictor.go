package ias15

import "math"

// sCoeffs holds the nine Taylor integration weights s_0..s_8 of §4.2, derived
// from dt and the within-step position hn.
type sCoeffs [9]float64

// predictorSCoeffs computes the position-predictor weights (the "s" table).
func predictorSCoeffs(dt, hn float64) sCoeffs {
	var s sCoeffs
	s[0] = dt * hn
	s[1] = s[0] * s[0] / 2
	s[2] = s[1] * hn / 3
	s[3] = s[2] * hn / 2
	s[4] = 3 * s[3] * hn / 5
	s[5] = 2 * s[4] * hn / 3
	s[6] = 5 * s[5] * hn / 7
	s[7] = 3 * s[6] * hn / 4
	s[8] = 7 * s[7] * hn / 9
	return s
}

// velocitySCoeffs computes the velocity-predictor weights used when the
// additional-forces hook is velocity dependent. Unlike predictorSCoeffs these
// use hn = h[n] directly rather than the time-shifted hn of the position
// predictor, per §4.2.
func velocitySCoeffs(dt, hn float64) sCoeffs {
	var s sCoeffs
	s[0] = dt * hn
	s[1] = s[0] * hn / 2
	s[2] = 2 * s[1] * hn / 3
	s[3] = 3 * s[2] * hn / 4
	s[4] = 4 * s[3] * hn / 5
	s[5] = 5 * s[4] * hn / 6
	s[6] = 6 * s[5] * hn / 7
	s[7] = 7 * s[6] * hn / 8
	return s
}

// isNormalFinite reports whether v is finite and non-zero, standing in for
// the C isnormal() check applied (correctly, this time - only to doubles).
func isNormalFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v != 0
}

// warmStart computes the predicted e and b coefficients for the upcoming
// step from the previous step's br/er (§4.2's "BD correction"). For a
// particle with no previous successful step (Dtdone not finite/zero), e and
// b are zero, matching the original's first-step behaviour. disableBDCorrection
// is a test-only escape hatch (§9) that always takes that zeroed-b path, so a
// test can compare convergence behaviour with and without the correction.
func (ig *Integrator) warmStart(particles []Particle, dt float64) {
	if ig.disableBDCorrection {
		for l := 0; l < 7; l++ {
			for k := range ig.e[l] {
				ig.e[l][k] = 0
				ig.b[l][k] = 0
			}
		}
		return
	}
	for i := range particles {
		q1 := 0.0
		if isNormalFinite(particles[i].Dtdone) {
			q1 = dt / particles[i].Dtdone
		}
		for axis := 0; axis < 3; axis++ {
			k := 3*i + axis
			if q1 == 0 {
				for l := 0; l < 7; l++ {
					ig.e[l][k] = 0
					ig.b[l][k] = 0
				}
				continue
			}
			q2 := q1 * q1
			q3 := q1 * q2
			q4 := q2 * q2
			q5 := q2 * q3
			q6 := q3 * q3
			q7 := q3 * q4

			br := ig.br
			er := ig.er

			ig.e[0][k] = q1 * (7*br[6][k] + 6*br[5][k] + 5*br[4][k] + 4*br[3][k] + 3*br[2][k] + 2*br[1][k] + br[0][k])
			ig.e[1][k] = q2 * (21*br[6][k] + 15*br[5][k] + 10*br[4][k] + 6*br[3][k] + 3*br[2][k] + br[1][k])
			ig.e[2][k] = q3 * (35*br[6][k] + 20*br[5][k] + 10*br[4][k] + 4*br[3][k] + br[2][k])
			ig.e[3][k] = q4 * (35*br[6][k] + 15*br[5][k] + 5*br[4][k] + br[3][k])
			ig.e[4][k] = q5 * (21*br[6][k] + 6*br[5][k] + br[4][k])
			ig.e[5][k] = q6 * (7*br[6][k] + br[5][k])
			ig.e[6][k] = q7 * br[6][k]

			for l := 0; l < 7; l++ {
				ig.b[l][k] = ig.e[l][k] + (br[l][k] - er[l][k])
			}
		}
	}
}

// computeG derives the g-coefficients from b via the Newton-form
// conversion (§4.2), for every entry in the active 3N range.
func (ig *Integrator) computeG(n3 int) {
	b := ig.b
	for k := 0; k < n3; k++ {
		ig.g[0][k] = b[6][k]*d[15] + b[5][k]*d[10] + b[4][k]*d[6] + b[3][k]*d[3] + b[2][k]*d[1] + b[1][k]*d[0] + b[0][k]
		ig.g[1][k] = b[6][k]*d[16] + b[5][k]*d[11] + b[4][k]*d[7] + b[3][k]*d[4] + b[2][k]*d[2] + b[1][k]
		ig.g[2][k] = b[6][k]*d[17] + b[5][k]*d[12] + b[4][k]*d[8] + b[3][k]*d[5] + b[2][k]
		ig.g[3][k] = b[6][k]*d[18] + b[5][k]*d[13] + b[4][k]*d[9] + b[3][k]
		ig.g[4][k] = b[6][k]*d[19] + b[5][k]*d[14] + b[4][k]
		ig.g[5][k] = b[6][k]*d[20] + b[5][k]
		ig.g[6][k] = b[6][k]
	}
}

// newtonUpdate applies the Newton divided-difference update for sub-node n
// (1..7): refines g[n-1][k] from (at-a0)/r using the lower g's, then
// propagates the change into b[0..n-1] via the c-coefficients (§4.2). It
// returns, for n==7 only, |delta b6 / at| for entry k (0 if that is not
// finite), from which the caller takes the maximum as the predictor-corrector
// convergence metric; for other n it returns 0.
func newtonUpdate(n int, k int, at, a0 float64, g, b *[7][]float64) float64 {
	gk := at - a0
	switch n {
	case 1:
		tmp := g[0][k]
		g[0][k] = gk / r[0]
		delta := g[0][k] - tmp
		b[0][k] += delta
	case 2:
		tmp := g[1][k]
		g[1][k] = (gk/r[1] - g[0][k]) / r[2]
		delta := g[1][k] - tmp
		b[0][k] += delta * c[0]
		b[1][k] += delta
	case 3:
		tmp := g[2][k]
		g[2][k] = ((gk/r[3]-g[0][k])/r[4] - g[1][k]) / r[5]
		delta := g[2][k] - tmp
		b[0][k] += delta * c[1]
		b[1][k] += delta * c[2]
		b[2][k] += delta
	case 4:
		tmp := g[3][k]
		g[3][k] = (((gk/r[6]-g[0][k])/r[7]-g[1][k])/r[8] - g[2][k]) / r[9]
		delta := g[3][k] - tmp
		b[0][k] += delta * c[3]
		b[1][k] += delta * c[4]
		b[2][k] += delta * c[5]
		b[3][k] += delta
	case 5:
		tmp := g[4][k]
		g[4][k] = ((((gk/r[10]-g[0][k])/r[11]-g[1][k])/r[12]-g[2][k])/r[13] - g[3][k]) / r[14]
		delta := g[4][k] - tmp
		b[0][k] += delta * c[6]
		b[1][k] += delta * c[7]
		b[2][k] += delta * c[8]
		b[3][k] += delta * c[9]
		b[4][k] += delta
	case 6:
		tmp := g[5][k]
		g[5][k] = (((((gk/r[15]-g[0][k])/r[16]-g[1][k])/r[17]-g[2][k])/r[18]-g[3][k])/r[19] - g[4][k]) / r[20]
		delta := g[5][k] - tmp
		b[0][k] += delta * c[10]
		b[1][k] += delta * c[11]
		b[2][k] += delta * c[12]
		b[3][k] += delta * c[13]
		b[4][k] += delta * c[14]
		b[5][k] += delta
	case 7:
		tmp := g[6][k]
		g[6][k] = ((((((gk/r[21]-g[0][k])/r[22]-g[1][k])/r[23]-g[2][k])/r[24]-g[3][k])/r[25]-g[4][k])/r[26] - g[5][k]) / r[27]
		delta := g[6][k] - tmp
		b[0][k] += delta * c[15]
		b[1][k] += delta * c[16]
		b[2][k] += delta * c[17]
		b[3][k] += delta * c[18]
		b[4][k] += delta * c[19]
		b[5][k] += delta * c[20]
		b[6][k] += delta
		errork := math.Abs(delta / at)
		if math.IsNaN(errork) || math.IsInf(errork, 0) {
			return 0
		}
		return errork
	}
	return 0
}

// predictPositions predicts particle positions at sub-node n for every
// particle in the active class, writing directly into the particle slice
// per the shared-memory contract the force evaluator expects.
func (ig *Integrator) predictPositions(particles []Particle, n int, dt float64) {
	for i := range particles {
		p := &particles[i]
		if p.Dtexp < ig.dtexp {
			// A finer-class particle (smaller Dtexp) is re-used from its
			// past-position cache instead of being re-integrated at this node.
			level := -ig.dtexp + 1
			if level < maxSubLevels && n < subNodes {
				p.X = p.Xpast[level][n]
				p.Y = p.Ypast[level][n]
				p.Z = p.Zpast[level][n]
			}
			continue
		}
		hn := h[n] + (ig.t-p.Tdone)/dt
		s := predictorSCoeffs(dt, hn)

		k0, k1, k2 := 3*i, 3*i+1, 3*i+2
		p.X = ig.x0[k0] + ig.csx[k0] + sumB(s, ig.b, ig.a0[k0], ig.v0[k0], k0)
		p.Y = ig.x0[k1] + ig.csx[k1] + sumB(s, ig.b, ig.a0[k1], ig.v0[k1], k1)
		p.Z = ig.x0[k2] + ig.csx[k2] + sumB(s, ig.b, ig.a0[k2], ig.v0[k2], k2)
	}
}

// sumB evaluates the Taylor position predictor for one component.
func sumB(s sCoeffs, b [7][]float64, a0k, v0k float64, k int) float64 {
	return s[8]*b[6][k] + s[7]*b[5][k] + s[6]*b[4][k] + s[5]*b[3][k] + s[4]*b[2][k] + s[3]*b[1][k] + s[2]*b[0][k] + s[1]*a0k + s[0]*v0k
}

// predictVelocities predicts particle velocities at sub-node n, used only
// when an additional-forces hook is velocity dependent (§4.2, §6).
func (ig *Integrator) predictVelocities(particles []Particle, n int, dt float64) {
	hn := h[n]
	s := velocitySCoeffs(dt, hn)
	for i := range particles {
		p := &particles[i]
		if p.Dtexp < ig.dtexp {
			continue
		}
		k0, k1, k2 := 3*i, 3*i+1, 3*i+2
		p.VX = ig.v0[k0] + ig.csv[k0] + sumBv(s, ig.b, ig.a0[k0], k0)
		p.VY = ig.v0[k1] + ig.csv[k1] + sumBv(s, ig.b, ig.a0[k1], k1)
		p.VZ = ig.v0[k2] + ig.csv[k2] + sumBv(s, ig.b, ig.a0[k2], k2)
	}
}

func sumBv(s sCoeffs, b [7][]float64, a0k float64, k int) float64 {
	return s[7]*b[6][k] + s[6]*b[5][k] + s[5]*b[4][k] + s[4]*b[3][k] + s[3]*b[2][k] + s[2]*b[1][k] + s[1]*b[0][k] + s[0]*a0k
}

// predictorCorrectorResult summarises one step's convergence behaviour.
type predictorCorrectorResult struct {
	Iterations int
	Metric     float64
	Converged  bool
	Capped     bool // true only when the 12-iteration cap (not oscillation) ended the loop
}

// runPredictorCorrector runs the iterate-to-convergence loop of §4.2: for up
// to 12 iterations, sweep n=1..7 in order (Newton divided differences depend
// on lower n), predicting positions (and velocities, if needed), invoking
// the force evaluator, and refining g/b. It stops early on convergence or
// oscillation (§4.2 cases 1-3).
func (ig *Integrator) runPredictorCorrector(particles []Particle, dt float64, n3 int, accel AccelerationFunc, addForces AdditionalForcesFunc) (predictorCorrectorResult, error) {
	metric := math.Inf(1)
	lastMetric := 2.0
	iterations := 0

	for {
		if metric < 1e-16 {
			return predictorCorrectorResult{iterations, metric, true, false}, nil
		}
		if iterations > 2 && lastMetric <= metric {
			return predictorCorrectorResult{iterations, metric, false, false}, nil
		}
		if iterations >= 12 {
			return predictorCorrectorResult{iterations, metric, false, true}, nil
		}
		lastMetric = metric
		metric = 0
		iterations++

		for n := 1; n < 8; n++ {
			ig.predictPositions(particles, n, dt)

			if addForces != nil && ig.Tunables.ForceIsVelocityDependent {
				ig.predictVelocities(particles, n, dt)
			}

			if err := accel(ig.t, particles); err != nil {
				return predictorCorrectorResult{iterations, metric, false, false}, err
			}
			if addForces != nil {
				if err := addForces(ig.t, particles); err != nil {
					return predictorCorrectorResult{iterations, metric, false, false}, err
				}
			}

			for i := range particles {
				if particles[i].Dtexp != ig.dtexp {
					continue
				}
				k0, k1, k2 := 3*i, 3*i+1, 3*i+2
				ig.at[k0] = particles[i].AX
				ig.at[k1] = particles[i].AY
				ig.at[k2] = particles[i].AZ
			}

			for i := range particles {
				if particles[i].Dtexp != ig.dtexp {
					continue
				}
				for axis := 0; axis < 3; axis++ {
					k := 3*i + axis
					errork := newtonUpdate(n, k, ig.at[k], ig.a0[k], &ig.g, &ig.b)
					if n == 7 && errork > metric {
						metric = errork
					}
				}
			}
		}
	}
}
