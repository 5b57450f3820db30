// Package persist implements the little-endian restart file format of the
// original's input_binary/output_binary (src/input.c, src/output.c): an
// int32 particle count, a float64 simulation time, then one fixed-size
// record per particle. The specification's non-goals exclude networked
// checkpointing, but a local restart codec is in scope (§4.8) and is
// supplemented here from original_source rather than invented.
package persist

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ChristopherRabotin/ias15"
)

// record is the fixed-size, fixed-order encoding of one ias15.Particle.
// Xpast/Ypast/Zpast are not persisted: they are a sub-step prediction cache
// that the integrator repopulates from scratch during the step after restart,
// exactly as the original's input_binary reads only struct particle's
// physical fields and leaves the integrator's own scratch state to be
// rebuilt on the first step.
type record struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	AX, AY, AZ float64
	Mass       float64
	Tdone      float64
	Dtdone     float64
	Dtexp      int32
	_          int32 // pad to a multiple of 8 bytes
}

// Write serialises t and particles to w in the restart binary format.
func Write(w io.Writer, t float64, particles []ias15.Particle) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(particles))); err != nil {
		return fmt.Errorf("ias15/persist: writing particle count: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, t); err != nil {
		return fmt.Errorf("ias15/persist: writing time: %w", err)
	}
	for i := range particles {
		p := particles[i]
		rec := record{
			X: p.X, Y: p.Y, Z: p.Z,
			VX: p.VX, VY: p.VY, VZ: p.VZ,
			AX: p.AX, AY: p.AY, AZ: p.AZ,
			Mass:   p.Mass,
			Tdone:  p.Tdone,
			Dtdone: p.Dtdone,
			Dtexp:  int32(p.Dtexp),
		}
		if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("ias15/persist: writing particle %d: %w", i, err)
		}
	}
	return nil
}

// Read parses the restart binary format from r, returning the simulation
// time and the particle slice it applied to. The integrator's own time
// should be reset via Integrator.SetTime with the returned t.
func Read(r io.Reader) (t float64, particles []ias15.Particle, err error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, nil, fmt.Errorf("ias15/persist: reading particle count: %w", err)
	}
	if n < 0 {
		return 0, nil, fmt.Errorf("ias15/persist: negative particle count %d", n)
	}
	if err := binary.Read(r, binary.LittleEndian, &t); err != nil {
		return 0, nil, fmt.Errorf("ias15/persist: reading time: %w", err)
	}
	particles = make([]ias15.Particle, n)
	for i := range particles {
		var rec record
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return 0, nil, fmt.Errorf("ias15/persist: reading particle %d: %w", i, err)
		}
		particles[i] = ias15.Particle{
			X: rec.X, Y: rec.Y, Z: rec.Z,
			VX: rec.VX, VY: rec.VY, VZ: rec.VZ,
			AX: rec.AX, AY: rec.AY, AZ: rec.AZ,
			Mass:   rec.Mass,
			Tdone:  rec.Tdone,
			Dtdone: rec.Dtdone,
			Dtexp:  int(rec.Dtexp),
		}
	}
	return t, particles, nil
}
