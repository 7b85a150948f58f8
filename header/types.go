// SPDX-License-Identifier: EPL-2.0

package header

// IdentHeader carries the stream-wide parameters from the identification
// packet. Blocksize0 and Blocksize1 store the wire format's ilog2
// exponents; use BlockSize0()/BlockSize1() for the actual sample counts.
type IdentHeader struct {
	AudioChannels    uint8
	AudioSampleRate  uint32
	BitrateMaximum   int32
	BitrateNominal   int32
	BitrateMinimum   int32
	Blocksize0       uint8
	Blocksize1       uint8
}

// BlockSize0 returns the short block length in samples.
func (h *IdentHeader) BlockSize0() int { return 1 << h.Blocksize0 }

// BlockSize1 returns the long block length in samples.
func (h *IdentHeader) BlockSize1() int { return 1 << h.Blocksize1 }

// Comment is a single vendor-supplied key/value pair from the comment
// header.
type Comment struct {
	Key   string
	Value string
}

// CommentHeader is the parsed comment (a.k.a. "Vorbis tags") packet.
type CommentHeader struct {
	Vendor   string
	Comments []Comment
}

// Get returns the first comment value for key, matched case-sensitively as
// the format requires, and whether it was present.
func (h *CommentHeader) Get(key string) (string, bool) {
	for _, c := range h.Comments {
		if c.Key == key {
			return c.Value, true
		}
	}
	return "", false
}

// Codebook is a decoded VQ_CODEBOOK entry: a prefix code over its entries,
// plus an optional vector-quantization lookup table.
type Codebook struct {
	Dimensions int
	Entries    int
	Lengths    []uint8

	HasLookup bool
	Lookup    codebookLookup
}

type codebookLookup struct {
	Type          uint8
	MinValue      float32
	DeltaValue    float32
	ValueBits     uint8
	SequenceP     bool
	Multiplicands []uint32
}

// FloorConfig is the marker interface for the two floor kinds; the packet
// orchestrator dispatches on the concrete type.
type FloorConfig interface {
	isFloorConfig()
}

// Floor0 is a Floor0-style (LSP) floor configuration.
type Floor0 struct {
	Order            int
	Rate             int
	BarkMapSize      int
	AmplitudeBits    int
	AmplitudeOffset  int
	BookList         []uint8
}

func (*Floor0) isFloorConfig() {}

// Floor1 is a Floor1-style (piecewise linear) floor configuration.
type Floor1 struct {
	PartitionClass  []uint8 // per partition, class index
	ClassDimensions []uint8 // per class, dimension count
	ClassSubclasses []uint8 // per class, log2(subclass books)
	ClassMasterbook []int16 // per class, masterbook index (-1 if subclasses==0)
	SubclassBooks   [][]int16 // per class, 2^subclasses entries, -1 = unused
	Multiplier      int
	XList           []int // floor1_values entries, first two are 0 and n/2
}

func (*Floor1) isFloorConfig() {}

// Residue is a decoded residue configuration.
type Residue struct {
	Type            uint8
	Begin           uint32
	End             uint32
	PartitionSize   uint32
	Classifications uint8
	Classbook       uint8
	// Books[classification][pass] is the codebook index for that
	// (classification, pass) combination, or -1 if the cascade bit for
	// that pass wasn't set (meaning: contributes nothing in that pass).
	Books [][8]int16
}

// CouplingStep is one channel-coupling pair in a mapping.
type CouplingStep struct {
	Magnitude uint8
	Angle     uint8
}

// Mapping ties channels to submaps, floors, and residues.
type Mapping struct {
	Submaps       uint8
	CouplingSteps []CouplingStep
	Mux           []uint8 // per channel, submap index
	SubmapFloor   []uint8
	SubmapResidue []uint8
}

// Mode selects a blocksize and mapping for an audio packet.
type Mode struct {
	Blockflag bool
	Mapping   uint8
}
