package ias15

import "fmt"

// StepResult reports the outcome of one successful call to Step.
type StepResult struct {
	Dt         float64
	Iterations int
	Metric     float64
	Converged  bool

	// NonConvergence is set when the predictor-corrector loop hit the
	// 12-iteration cap instead of converging. The step still committed: this
	// is informational, surfaced to the caller instead of only as a log line,
	// so a driver can decide to tighten MaxDt without parsing log output.
	NonConvergence *NonConvergenceError
}

// Part1 is the no-op half of the driver (§4.5): IAS15 is a single-stage
// scheme, unlike a split leapfrog-style DKD integrator, so there is nothing
// to do before the force evaluation on this side.
func (ig *Integrator) Part1() {}

// Part2 runs Step in a loop until it succeeds (§4.5). In this design Step
// always returns success once it has either converged or exhausted its
// iteration budget — the scheme degrades to lower effective order rather
// than failing outright — so in practice this loop runs exactly once; it is
// kept as a loop to mirror the original's `while(!integrator_ias15_step())`
// and to leave room for a future Step that can legitimately reject a
// timestep (e.g. once collision detection is added upstream).
func (ig *Integrator) Part2(particles []Particle, accel AccelerationFunc, addForces AdditionalForcesFunc) (StepResult, error) {
	for {
		res, ok, err := ig.Step(particles, accel, addForces)
		if err != nil {
			return res, err
		}
		if ok {
			return res, nil
		}
	}
}

// Step performs one full IAS15 timestep: grow buffers if N changed, compute
// the dt to attempt, warm-start b/e, run the predictor-corrector loop to
// convergence, commit the converged state, and advance the adaptive step
// controller. It returns (result, true, nil) on success; the bool return is
// reserved for a future rejected-step path and is always true today, per
// §4.5's "the step always returns success" failure semantics.
func (ig *Integrator) Step(particles []Particle, accel AccelerationFunc, addForces AdditionalForcesFunc) (StepResult, bool, error) {
	if err := ig.Tunables.validate(); err != nil {
		return StepResult{}, false, err
	}
	if addForces != nil && ig.Tunables.ForceIsVelocityDependent {
		// §9's open question: the original printed "not implemented yet" here
		// while still computing the prediction. We treat the full predictor as
		// authoritative (per §9) and, when Verbose is set, log at debug level
		// on each Step that the velocity-dependent path is active.
		if ig.Verbose {
			ig.logger.Log("level", "debug", "msg", "velocity-dependent additional forces enabled")
		}
	}

	n := len(particles)
	n3 := 3 * n
	if err := ig.grow(n3); err != nil {
		return StepResult{}, false, err
	}

	dt := ig.nextDt()
	ig.dt = dt

	if ig.Verbose {
		ig.logger.Log("level", "debug", "dtexp", ig.dtexp, "dtexp_min", ig.dtexpMin, "dt", dt, "substep", ig.dtexpSub[-ig.dtexp])
	}

	ig.warmStart(particles, dt)

	for i := range particles {
		k0, k1, k2 := 3*i, 3*i+1, 3*i+2
		ig.x0[k0], ig.x0[k1], ig.x0[k2] = particles[i].X, particles[i].Y, particles[i].Z
		ig.v0[k0], ig.v0[k1], ig.v0[k2] = particles[i].VX, particles[i].VY, particles[i].VZ
		ig.a0[k0], ig.a0[k1], ig.a0[k2] = particles[i].AX, particles[i].AY, particles[i].AZ
	}

	ig.computeG(n3)

	pc, err := ig.runPredictorCorrector(particles, dt, n3, accel, addForces)
	if err != nil {
		return StepResult{}, false, err
	}

	var nonConvergence *NonConvergenceError
	if pc.Capped {
		ig.iterationsMaxExceeded++
		nonConvergence = &NonConvergenceError{Iterations: pc.Iterations, Metric: pc.Metric}
		if ig.iterationsMaxExceeded == ig.Tunables.WarningThreshold && !ig.warned {
			ig.warned = true
			ig.logger.Log("level", "warn", "msg", fmt.Sprintf(
				"at least %d predictor corrector loops did not converge; timestep may be too large",
				ig.Tunables.WarningThreshold))
		}
	}

	ig.commit(particles, dt)
	ig.updateStepSizes(particles, dt)

	return StepResult{
		Dt:             dt,
		Iterations:     pc.Iterations,
		Metric:         pc.Metric,
		Converged:      pc.Converged,
		NonConvergence: nonConvergence,
	}, true, nil
}
