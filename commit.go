package ias15

// commit implements the step finaliser of §4.3: once the predictor-corrector
// loop has converged (or given up), advance x0/v0 with Kahan-compensated
// summation for every particle in the current class, swap b/e into br/er for
// the next step's warm start, and write the past-position cache used by
// coarser classes.
func (ig *Integrator) commit(particles []Particle, dt float64) {
	dt2 := dt * dt
	sub := ig.dtexpSub[-ig.dtexp]

	for i := range particles {
		p := &particles[i]
		inClass := p.Dtexp == ig.dtexp

		if inClass {
			for axis := 0; axis < 3; axis++ {
				k := 3*i + axis
				b := ig.b
				a := ig.x0[k]
				ig.csx[k] += (b[6][k]/72+b[5][k]/56+b[4][k]/42+b[3][k]/30+b[2][k]/20+b[1][k]/12+b[0][k]/6+ig.a0[k]/2)*dt2 + ig.v0[k]*dt
				ig.x0[k] = a + ig.csx[k]
				ig.csx[k] += a - ig.x0[k]

				av := ig.v0[k]
				ig.csv[k] += (b[6][k]/8+b[5][k]/7+b[4][k]/6+b[3][k]/5+b[2][k]/4+b[1][k]/3+b[0][k]/2+ig.a0[k]) * dt
				ig.v0[k] = av + ig.csv[k]
				ig.csv[k] += av - ig.v0[k]

				for l := 0; l < 7; l++ {
					ig.er[l][k] = ig.e[l][k]
					ig.br[l][k] = ig.b[l][k]
				}
			}

			p.X, p.Y, p.Z = ig.x0[3*i], ig.x0[3*i+1], ig.x0[3*i+2]
			p.VX, p.VY, p.VZ = ig.v0[3*i], ig.v0[3*i+1], ig.v0[3*i+2]
			p.Tdone = ig.t + dt
			p.Dtdone = dt
		} else {
			p.X, p.Y, p.Z = ig.x0[3*i], ig.x0[3*i+1], ig.x0[3*i+2]
		}

		level := -ig.dtexp
		if level < maxSubLevels && sub < subNodes {
			p.Xpast[level][sub] = p.X
			p.Ypast[level][sub] = p.Y
			p.Zpast[level][sub] = p.Z
		}
	}
}
