// SPDX-License-Identifier: EPL-2.0

package header

import (
	"testing"

	"github.com/ik5/gorbis/bitreader"
	"github.com/ik5/gorbis/internal/vorbistest"
)

func TestReadCodebookNonOrderedNonSparse(t *testing.T) {
	t.Parallel()

	w := vorbistest.NewBitWriter()
	w.WriteUint(0x564342, 24)
	w.WriteUint(1, 16) // dimensions
	w.WriteUint(2, 24) // entries
	w.WriteBool(false) // ordered
	w.WriteBool(false) // sparse
	w.WriteUint(0, 5)
	w.WriteUint(0, 5)
	w.WriteUint(0, 4) // lookup type none

	r := bitreader.New(w.Bytes())
	cb, err := readCodebook(r)
	if err != nil {
		t.Fatalf("readCodebook() error = %v", err)
	}
	if cb.Dimensions != 1 || cb.Entries != 2 {
		t.Errorf("Dimensions/Entries = %d/%d, want 1/2", cb.Dimensions, cb.Entries)
	}
	if cb.HasLookup {
		t.Error("HasLookup = true, want false")
	}
	if _, err := cb.Tree(); err != nil {
		t.Errorf("Tree() error = %v", err)
	}
}

func TestReadCodebookBadSync(t *testing.T) {
	t.Parallel()

	w := vorbistest.NewBitWriter()
	w.WriteUint(0, 24) // wrong sync pattern

	r := bitreader.New(w.Bytes())
	if _, err := readCodebook(r); err == nil {
		t.Error("readCodebook() error = nil, want error for bad sync pattern")
	}
}

func TestReadCodebookSparse(t *testing.T) {
	t.Parallel()

	w := vorbistest.NewBitWriter()
	w.WriteUint(0x564342, 24)
	w.WriteUint(1, 16) // dimensions
	w.WriteUint(3, 24) // entries
	w.WriteBool(false) // ordered
	w.WriteBool(true)  // sparse
	w.WriteBool(true)  // entry 0 used
	w.WriteUint(0, 5)
	w.WriteBool(false) // entry 1 unused
	w.WriteBool(true)  // entry 2 used
	w.WriteUint(0, 5)
	w.WriteUint(0, 4) // lookup type none

	r := bitreader.New(w.Bytes())
	cb, err := readCodebook(r)
	if err != nil {
		t.Fatalf("readCodebook() error = %v", err)
	}
	if cb.Lengths[1] != 0 {
		t.Errorf("Lengths[1] = %d, want 0 (unused)", cb.Lengths[1])
	}
	if cb.Lengths[0] != 1 || cb.Lengths[2] != 1 {
		t.Errorf("Lengths = %v, want [1 0 1]", cb.Lengths)
	}
}

func TestReadCodebookOrdered(t *testing.T) {
	t.Parallel()

	w := vorbistest.NewBitWriter()
	w.WriteUint(0x564342, 24)
	w.WriteUint(1, 16) // dimensions
	w.WriteUint(4, 24) // entries
	w.WriteBool(true) // ordered
	w.WriteUint(0, 5) // first length - 1 == 0 -> length 1
	w.WriteUint(1, 3) // 1 entry at length 1 (ilog(remaining=4)==3 bits)
	w.WriteUint(3, 2) // remaining 3 entries at length 2 (ilog(remaining=3)==2 bits)
	w.WriteUint(0, 4) // lookup type none

	r := bitreader.New(w.Bytes())
	cb, err := readCodebook(r)
	if err != nil {
		t.Fatalf("readCodebook() error = %v", err)
	}
	if cb.Entries != 4 {
		t.Errorf("Entries = %d, want 4", cb.Entries)
	}
}
