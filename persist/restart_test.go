package persist

import (
	"bytes"
	"testing"

	"github.com/ChristopherRabotin/ias15"
)

func TestWriteReadRoundTrip(t *testing.T) {
	particles := []ias15.Particle{
		{X: 1, Y: 2, Z: 3, VX: 4, VY: 5, VZ: 6, Mass: 7, Tdone: 8, Dtdone: 9, Dtexp: -1},
		{X: -1.5, VY: 0.25, Dtexp: -2},
	}

	var buf bytes.Buffer
	if err := Write(&buf, 123.456, particles); err != nil {
		t.Fatalf("Write: %v", err)
	}

	gotT, gotParticles, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if gotT != 123.456 {
		t.Errorf("t = %v, want 123.456", gotT)
	}
	if len(gotParticles) != len(particles) {
		t.Fatalf("got %d particles, want %d", len(gotParticles), len(particles))
	}
	for i := range particles {
		want := particles[i]
		got := gotParticles[i]
		if got.X != want.X || got.Y != want.Y || got.Z != want.Z ||
			got.VX != want.VX || got.VY != want.VY || got.VZ != want.VZ ||
			got.Mass != want.Mass || got.Tdone != want.Tdone ||
			got.Dtdone != want.Dtdone || got.Dtexp != want.Dtexp {
			t.Errorf("particle %d round-tripped as %+v, want %+v", i, got, want)
		}
	}
}

func TestReadEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, 0, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	_, particles, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(particles) != 0 {
		t.Errorf("got %d particles, want 0", len(particles))
	}
}

func TestReadTruncated(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte{1, 2, 3}))
	if err == nil {
		t.Fatal("expected an error reading a truncated header")
	}
}
