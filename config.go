package ias15

import (
	"fmt"

	"github.com/spf13/viper"
)

// Tunables holds the five tunables of §6, the Go expression of the original's
// process-wide globals (integrator_epsilon, integrator_min_dt,
// integrator_max_dt, safety_factor, integrator_force_is_velocitydependent).
type Tunables struct {
	Epsilon                  float64 // 0 => fixed step; >0 => adaptive, b6/a error estimator
	MinDt                    float64 // validated as non-negative; not applied to the attempted dt
	MaxDt                    float64 // class-0 step length and upper clamp
	SafetyFactor             float64 // carried for parity with the C global; see validate
	ForceIsVelocityDependent bool    // whether additional forces need predicted velocities
	WarningThreshold         int     // non-convergence count at which a single warning fires
}

// DefaultTunables returns the literal defaults carried over from the C globals.
func DefaultTunables() Tunables {
	return Tunables{
		Epsilon:                  1e-5,
		MinDt:                    0,
		MaxDt:                    0,
		SafetyFactor:             0.25,
		ForceIsVelocityDependent: true,
		WarningThreshold:         10,
	}
}

// LoadTunables reads tunables from a conf.toml/conf.yaml in the given
// directory via viper, the same pattern smdConfig() uses for SMD_CONFIG:
// a required directory, a "conf" file name, parsed keys falling back to
// DefaultTunables() for anything unset. Unlike smdConfig(), a missing or
// malformed file is returned as an error rather than panicking, since
// misconfiguration here is routine (most callers never call this at all
// and just use DefaultTunables or build a Tunables literal directly).
func LoadTunables(dir string) (Tunables, error) {
	t := DefaultTunables()
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return t, fmt.Errorf("ias15: reading conf from %s: %w", dir, err)
	}
	if v.IsSet("integrator.epsilon") {
		t.Epsilon = v.GetFloat64("integrator.epsilon")
	}
	if v.IsSet("integrator.min_dt") {
		t.MinDt = v.GetFloat64("integrator.min_dt")
	}
	if v.IsSet("integrator.max_dt") {
		t.MaxDt = v.GetFloat64("integrator.max_dt")
	}
	if v.IsSet("integrator.safety_factor") {
		t.SafetyFactor = v.GetFloat64("integrator.safety_factor")
	}
	if v.IsSet("integrator.velocity_dependent_forces") {
		t.ForceIsVelocityDependent = v.GetBool("integrator.velocity_dependent_forces")
	}
	if v.IsSet("integrator.warning_threshold") {
		t.WarningThreshold = v.GetInt("integrator.warning_threshold")
	}
	return t, nil
}

// validate returns a descriptive error for tunables combinations the engine
// cannot act on sanely. It never panics: per §7, configuration errors are
// surfaced and the engine degrades rather than aborting.
//
// SafetyFactor is validated here but, matching the original's own
// safety_factor constant (declared in integrator_ias15.c, referenced
// nowhere else in that source), is not otherwise consulted: the §4.4 dt
// the integrator attempts is always the Gauss-Radau sub-interval product
// verbatim, never clamped by it.
func (t Tunables) validate() error {
	if t.MaxDt <= 0 {
		return fmt.Errorf("ias15: MaxDt must be positive, got %v", t.MaxDt)
	}
	if t.MinDt < 0 {
		return fmt.Errorf("ias15: MinDt must be non-negative, got %v", t.MinDt)
	}
	if t.SafetyFactor <= 0 || t.SafetyFactor >= 1 {
		return fmt.Errorf("ias15: SafetyFactor must be in (0,1), got %v", t.SafetyFactor)
	}
	return nil
}

