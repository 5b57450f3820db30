package ias15

import (
	kitlog "github.com/go-kit/kit/log"
)

// Integrator is the process-wide IAS15 state of §3, reworked from the
// original's set of global buffers into an owning value: every field that
// used to be a package-level C global (b, g, e, br, er, at, x0, v0, a0, csx,
// csv, dtexp, dtexp_substep, dtexp_min, integrator_iterations_max_exceeded)
// is a field here instead, and all of it grows monotonically under a single
// capacity field (n3allocated), exactly mirroring the realloc-on-growth
// behaviour of integrator_ias15_step().
type Integrator struct {
	Tunables Tunables

	n3allocated int // capacity of the flat arrays, in units of 3*N

	// Seven-entry Taylor/Newton coefficient families, each length n3allocated.
	b, g, e   [7][]float64
	br, er    [7][]float64

	x0, v0, a0 []float64 // state at step entry
	at         []float64 // scratch acceleration during the predictor-corrector loop
	csx, csv   []float64 // Kahan compensated-summation residuals

	t float64 // current simulation time

	dt         float64 // dt of the most recently attempted step
	dtexp      int     // current global sub-step class
	dtexpMin   int     // minimum per-particle dtexp observed during the current step
	dtexpSub   [64]int // dtexp_substep: next Gauss-Radau sub-interval index per level

	iterationsMaxExceeded int // count of steps that hit the 12-iteration cap
	warned                bool

	logger  kitlog.Logger
	Verbose bool // gate the per-step debug prints the original always emitted

	disableBDCorrection bool // test-only: force the zeroed-b warm start every step
}

// New creates an Integrator with the given tunables. The scratch buffers are
// allocated lazily on the first Step call, once N is known, matching §3's
// "created lazily when N grows".
func New(name string, tunables Tunables) *Integrator {
	return &Integrator{
		Tunables: tunables,
		logger:   newLogger(name),
	}
}

// Time returns the integrator's current simulation time.
func (ig *Integrator) Time() float64 { return ig.t }

// SetTime resets the integrator's current simulation time, e.g. after
// loading a restart file via the persist package.
func (ig *Integrator) SetTime(t float64) { ig.t = t }

// grow reallocates every scratch buffer to at least n3 entries, zeroing b, e,
// br, er and the compensated-summation residuals exactly as the original's
// realloc-and-zero block does; g, x0, v0, a0, at need no zeroing since
// every step overwrites them in full before they are read.
func (ig *Integrator) grow(n3 int) error {
	if n3 < 0 {
		return &AllocationError{Requested: n3, Cause: errNegativeCapacity}
	}
	if n3 <= ig.n3allocated {
		return nil
	}
	for l := 0; l < 7; l++ {
		ig.b[l] = make([]float64, n3)
		ig.g[l] = grown(ig.g[l], n3)
		ig.e[l] = make([]float64, n3)
		ig.br[l] = make([]float64, n3)
		ig.er[l] = make([]float64, n3)
	}
	ig.at = grown(ig.at, n3)
	ig.x0 = grown(ig.x0, n3)
	ig.v0 = grown(ig.v0, n3)
	ig.a0 = grown(ig.a0, n3)
	ig.csx = make([]float64, n3)
	ig.csv = make([]float64, n3)
	ig.n3allocated = n3
	return nil
}

// grown returns a slice of length n3 with buf's contents copied into the
// front; Go's make zero-fills the new tail. It is used for g/x0/v0/a0/at,
// whose contents are overwritten before they are read.
func grown(buf []float64, n3 int) []float64 {
	out := make([]float64, n3)
	copy(out, buf)
	return out
}
