package ias15

import "testing"

func TestCommitAdvancesInClassParticle(t *testing.T) {
	ig := New("commit", DefaultTunables())
	if err := ig.grow(3); err != nil {
		t.Fatalf("grow: %v", err)
	}
	ig.v0[0] = 2 // constant velocity along X, zero acceleration and b-coefficients
	particles := []Particle{{Dtexp: 0}}

	ig.commit(particles, 5)

	if got := particles[0].X; got != 10 {
		t.Errorf("X = %v, want 10 (v*dt)", got)
	}
	if got := particles[0].Tdone; got != 5 {
		t.Errorf("Tdone = %v, want 5", got)
	}
	if got := particles[0].Dtdone; got != 5 {
		t.Errorf("Dtdone = %v, want 5", got)
	}
}

func TestCommitLeavesOutOfClassParticleUnadvanced(t *testing.T) {
	ig := New("commit-skip", DefaultTunables())
	if err := ig.grow(3); err != nil {
		t.Fatalf("grow: %v", err)
	}
	ig.dtexp = 0
	ig.x0[0] = 7
	particles := []Particle{{Dtexp: -1, X: 99}}

	ig.commit(particles, 5)

	if particles[0].X != 7 {
		t.Errorf("X = %v, want 7 (restored from x0, not advanced)", particles[0].X)
	}
	if particles[0].Tdone != 0 {
		t.Errorf("Tdone = %v, want untouched (0)", particles[0].Tdone)
	}
}

func TestCommitWritesPastPositionCache(t *testing.T) {
	ig := New("commit-cache", DefaultTunables())
	if err := ig.grow(3); err != nil {
		t.Fatalf("grow: %v", err)
	}
	ig.dtexp = -1
	ig.dtexpSub[1] = 3
	particles := []Particle{{Dtexp: -1}}

	ig.commit(particles, 1)

	if got := particles[0].Xpast[1][3]; got != particles[0].X {
		t.Errorf("Xpast[1][3] = %v, want %v (committed X)", got, particles[0].X)
	}
}
