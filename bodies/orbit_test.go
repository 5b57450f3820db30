package bodies

import (
	"math"
	"testing"
)

func TestStateFromElementsCircularEquatorial(t *testing.T) {
	r, v := StateFromElements(7000, 0, 0, 0, 0, 0, Earth)

	gotR := math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
	if math.Abs(gotR-7000) > 1e-9 {
		t.Errorf("|r| = %v, want 7000", gotR)
	}
	if math.Abs(r[2]) > 1e-9 {
		t.Errorf("r[2] (Z) = %v, want 0 for an equatorial orbit", r[2])
	}

	wantV := CircularVelocity(7000, Earth)
	gotV := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if math.Abs(gotV-wantV) > 1e-9 {
		t.Errorf("|v| = %v, want %v", gotV, wantV)
	}
	if math.Abs(v[2]) > 1e-9 {
		t.Errorf("v[2] (Z) = %v, want 0 for an equatorial orbit", v[2])
	}
}

func TestStateFromElementsPreservesSpecificAngularMomentum(t *testing.T) {
	r, v := StateFromElements(8000, 0.2, 28.5, 10, 30, 45, Earth)

	// h = r x v, |h| = sqrt(mu * p), p = a(1-e^2)
	hx := r[1]*v[2] - r[2]*v[1]
	hy := r[2]*v[0] - r[0]*v[2]
	hz := r[0]*v[1] - r[1]*v[0]
	h := math.Sqrt(hx*hx + hy*hy + hz*hz)

	p := 8000 * (1 - 0.2*0.2)
	want := math.Sqrt(Earth.GM * p)
	if math.Abs(h-want) > 1e-6 {
		t.Errorf("|r x v| = %v, want %v", h, want)
	}
}

func TestCircularVelocityMatchesVisViva(t *testing.T) {
	v := CircularVelocity(Earth.Radius+500, Earth)
	want := math.Sqrt(Earth.GM / (Earth.Radius + 500))
	if v != want {
		t.Errorf("CircularVelocity = %v, want %v", v, want)
	}
}
