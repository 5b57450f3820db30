package ias15

import (
	"math"
	"testing"
)

func constantAccel(ax, ay, az float64) AccelerationFunc {
	return func(t float64, particles []Particle) error {
		for i := range particles {
			particles[i].AX = ax
			particles[i].AY = ay
			particles[i].AZ = az
		}
		return nil
	}
}

func zeroAccel() AccelerationFunc {
	return constantAccel(0, 0, 0)
}

func TestStepFreeDriftIsExactlyLinear(t *testing.T) {
	tunables := DefaultTunables()
	tunables.MaxDt = 10
	tunables.Epsilon = 0 // disable adaptive step refinement so dt stays MaxDt

	ig := New("free-drift", tunables)
	particles := []Particle{{VX: 3, VY: -2, VZ: 0.5}}

	accel := zeroAccel()
	var elapsed float64
	for i := 0; i < 5; i++ {
		res, err := ig.Part2(particles, accel, nil)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if !res.Converged {
			t.Fatalf("step %d: expected convergence for a force-free system", i)
		}
		elapsed += res.Dt
	}

	want := Particle{X: 3 * elapsed, Y: -2 * elapsed, Z: 0.5 * elapsed}
	p := particles[0]
	const tol = 1e-9
	if math.Abs(p.X-want.X) > tol || math.Abs(p.Y-want.Y) > tol || math.Abs(p.Z-want.Z) > tol {
		t.Errorf("position = (%v,%v,%v), want (%v,%v,%v)", p.X, p.Y, p.Z, want.X, want.Y, want.Z)
	}
	if math.Abs(p.VX-3) > tol || math.Abs(p.VY-(-2)) > tol || math.Abs(p.VZ-0.5) > tol {
		t.Errorf("velocity changed under a zero force field: (%v,%v,%v)", p.VX, p.VY, p.VZ)
	}
}

func TestStepConstantAccelerationConvergesQuickly(t *testing.T) {
	tunables := DefaultTunables()
	tunables.MaxDt = 1
	tunables.Epsilon = 0

	ig := New("constant-accel", tunables)
	// Step reads a0 from the particle, so it starts with the acceleration the
	// force evaluator will return, as a caller's prior force evaluation leaves it.
	particles := []Particle{{AX: 2}}

	accel := constantAccel(2, 0, 0)
	res, ok, err := ig.Step(particles, accel, nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !ok {
		t.Fatal("Step reported failure for a trivially convergent system")
	}
	if !res.Converged {
		t.Errorf("expected convergence, got metric=%v iterations=%d", res.Metric, res.Iterations)
	}
	if res.Iterations > 5 {
		t.Errorf("expected fast convergence for a position-independent constant force, got %d iterations", res.Iterations)
	}
	if res.NonConvergence != nil {
		t.Errorf("unexpected non-convergence report: %v", res.NonConvergence)
	}

	// Uniformly accelerated motion: x = 1/2 a t^2, v = a t.
	const tol = 1e-9
	wantX := 0.5 * 2 * res.Dt * res.Dt
	wantVX := 2 * res.Dt
	p := particles[0]
	if math.Abs(p.X-wantX) > tol {
		t.Errorf("X = %v, want %v", p.X, wantX)
	}
	if math.Abs(p.VX-wantVX) > tol {
		t.Errorf("VX = %v, want %v", p.VX, wantVX)
	}
}

func TestStepGrowsBuffersWhenParticleCountIncreases(t *testing.T) {
	tunables := DefaultTunables()
	tunables.MaxDt = 1
	tunables.Epsilon = 0

	ig := New("grow", tunables)
	accel := zeroAccel()

	one := []Particle{{VX: 1}}
	if err := ig.Tunables.validate(); err != nil {
		t.Fatalf("unexpected invalid tunables: %v", err)
	}
	if _, ok, err := ig.Step(one, accel, nil); err != nil || !ok {
		t.Fatalf("first step failed: ok=%v err=%v", ok, err)
	}
	if ig.n3allocated < 3 {
		t.Fatalf("n3allocated = %d, want >= 3", ig.n3allocated)
	}

	three := []Particle{{VX: 1}, {VY: 1}, {VZ: 1}}
	if _, ok, err := ig.Step(three, accel, nil); err != nil || !ok {
		t.Fatalf("second step with more particles failed: ok=%v err=%v", ok, err)
	}
	if ig.n3allocated < 9 {
		t.Fatalf("n3allocated = %d, want >= 9 after growth", ig.n3allocated)
	}
}

func TestPart1IsNoOp(t *testing.T) {
	ig := New("noop", DefaultTunables())
	ig.Part1() // must not panic and must not touch integrator state
	if ig.Time() != 0 {
		t.Errorf("Part1 should not advance time, got %v", ig.Time())
	}
}
