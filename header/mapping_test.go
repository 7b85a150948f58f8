// SPDX-License-Identifier: EPL-2.0

package header

import (
	"testing"

	"github.com/ik5/gorbis/bitreader"
	"github.com/ik5/gorbis/internal/vorbistest"
)

func TestReadMappingNoSubmapsNoCoupling(t *testing.T) {
	t.Parallel()

	w := vorbistest.NewBitWriter()
	w.WriteUint(0, 16) // mapping type
	w.WriteBool(false) // has submaps
	w.WriteBool(false) // has coupling
	w.WriteUint(0, 2)  // reserved
	w.WriteUint(0, 8)  // submap 0 unused
	w.WriteUint(0, 8)  // submap 0 floor
	w.WriteUint(0, 8)  // submap 0 residue

	r := bitreader.New(w.Bytes())
	m, err := readMapping(r, 2, 1, 1)
	if err != nil {
		t.Fatalf("readMapping() error = %v", err)
	}
	if m.Submaps != 1 {
		t.Errorf("Submaps = %d, want 1", m.Submaps)
	}
	if len(m.CouplingSteps) != 0 {
		t.Errorf("CouplingSteps = %v, want none", m.CouplingSteps)
	}
}

func TestReadMappingWithCoupling(t *testing.T) {
	t.Parallel()

	w := vorbistest.NewBitWriter()
	w.WriteUint(0, 16) // mapping type
	w.WriteBool(false) // has submaps
	w.WriteBool(true)  // has coupling
	w.WriteUint(0, 8)  // coupling steps - 1 == 0 -> 1 step
	w.WriteUint(0, 1)  // magnitude channel 0 (chanBits = ilog(1) = 1)
	w.WriteUint(1, 1)  // angle channel 1
	w.WriteUint(0, 2)  // reserved
	w.WriteUint(0, 8)
	w.WriteUint(0, 8)
	w.WriteUint(0, 8)

	r := bitreader.New(w.Bytes())
	m, err := readMapping(r, 2, 1, 1)
	if err != nil {
		t.Fatalf("readMapping() error = %v", err)
	}
	if len(m.CouplingSteps) != 1 {
		t.Fatalf("CouplingSteps count = %d, want 1", len(m.CouplingSteps))
	}
	if m.CouplingSteps[0].Magnitude != 0 || m.CouplingSteps[0].Angle != 1 {
		t.Errorf("CouplingSteps[0] = %+v, want {0 1}", m.CouplingSteps[0])
	}
}

func TestReadMappingCouplingSameChannelRejected(t *testing.T) {
	t.Parallel()

	w := vorbistest.NewBitWriter()
	w.WriteUint(0, 16)
	w.WriteBool(false)
	w.WriteBool(true)
	w.WriteUint(0, 8) // 1 step
	w.WriteUint(0, 1) // magnitude channel 0
	w.WriteUint(0, 1) // angle channel 0 -- same as magnitude, illegal

	r := bitreader.New(w.Bytes())
	if _, err := readMapping(r, 2, 1, 1); err == nil {
		t.Error("readMapping() error = nil, want error for magnitude==angle")
	}
}

func TestReadMappingUnsupportedType(t *testing.T) {
	t.Parallel()

	w := vorbistest.NewBitWriter()
	w.WriteUint(1, 16) // only mapping type 0 is defined

	r := bitreader.New(w.Bytes())
	if _, err := readMapping(r, 1, 1, 1); err == nil {
		t.Error("readMapping() error = nil, want error for unsupported mapping type")
	}
}
