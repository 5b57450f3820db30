package ias15

import "math"

// nextDt computes the dt to attempt next, fractionally scaled by the chain
// of Gauss-Radau sub-intervals the hierarchical step bookkeeping is
// currently inside of (§4.4): max_dt * prod(h[sub_i+1]-h[sub_i]) for every
// level i coarser than the current global class (i < -dtexp). This must be the product
// verbatim, as the C source computes it: updateStepSizes's wrap-rewind
// branch recomputes the same product independently to correct ig.t, so any
// clamp applied here alone would desynchronize the two and drift time.
func (ig *Integrator) nextDt() float64 {
	dt := ig.Tunables.MaxDt
	for i := 0; i < -ig.dtexp; i++ {
		st := ig.dtexpSub[i]
		dt *= h[st+1] - h[st]
	}
	return dt
}

// updateStepSizes implements §4.4's adaptive step controller: for each
// particle in the class just advanced, estimate the local error from
// b6/acceleration and assign a new per-particle step class; then advance the
// hierarchical sub-step bookkeeping.
func (ig *Integrator) updateStepSizes(particles []Particle, dt float64) {
	if ig.Tunables.Epsilon > 0 {
		for i := range particles {
			if particles[i].Dtexp != ig.dtexp {
				continue
			}
			errorMax := 0.0
			for axis := 0; axis < 3; axis++ {
				k := 3*i + axis
				ak := ig.at[k]
				b6k := ig.b[6][k]
				errork := math.Abs(b6k / ak)
				if errork > errorMax {
					errorMax = errork
				}
			}
			if isNormalFinite(errorMax) {
				dtParticle := math.Pow(ig.Tunables.Epsilon/errorMax, 1.0/7.0) * dt
				exp := int(math.Floor(math.Log(dtParticle/ig.Tunables.MaxDt) / math.Log(8)))
				particles[i].Dtexp = clampDtexp(exp)
			} else {
				particles[i].Dtexp = 0
			}
		}
	}

	ig.dtexpMin = 0
	for i := range particles {
		if particles[i].Dtexp < ig.dtexpMin {
			ig.dtexpMin = particles[i].Dtexp
		}
	}

	ig.dtexpSub[-ig.dtexp]++
	ig.t += dt
	if ig.dtexpSub[-ig.dtexp] == 8 {
		ig.dtexpSub[-ig.dtexp] = 0
		ig.dtexp++
		if ig.dtexp > 0 {
			ig.dtexp = ig.dtexpMin
		} else {
			dtt := ig.Tunables.MaxDt
			for i := 0; i < -ig.dtexp; i++ {
				st := ig.dtexpSub[i]
				dtt *= h[st+1] - h[st]
			}
			ig.t -= dtt
		}
	} else {
		ig.dtexp = ig.dtexpMin
	}
}
