package ias15

// AccelerationFunc is the gravity kernel collaborator contract (§6). Given
// the simulation time and the current particle array, it must write AX, AY,
// AZ into every particle whose acceleration this integrator needs and return
// promptly — no outstanding side effects, no goroutines left running. It may
// read VX/VY/VZ too, but must be a deterministic, pure function of its inputs.
type AccelerationFunc func(t float64, particles []Particle) error

// AdditionalForcesFunc is the optional "additional forces" hook (§6): invoked
// after AccelerationFunc, with the same contract, typically accumulating
// into AX/AY/AZ rather than overwriting them (e.g. drag, radiation pressure,
// a J2 perturbation).
type AdditionalForcesFunc func(t float64, particles []Particle) error
