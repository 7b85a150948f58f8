// SPDX-License-Identifier: EPL-2.0

package vorbistest

var vorbisSignature = []byte("vorbis")

// IdentOptions configures WriteIdentPacket.
type IdentOptions struct {
	Channels   uint8
	SampleRate uint32
	Blocksize0 uint8 // log2, 6..13
	Blocksize1 uint8 // log2, 6..13, >= Blocksize0
}

// DefaultIdentOptions returns a mono, 44.1kHz, 64/128-sample-block config.
func DefaultIdentOptions() IdentOptions {
	return IdentOptions{Channels: 1, SampleRate: 44100, Blocksize0: 6, Blocksize1: 7}
}

// WriteIdentPacket builds a wire-format identification header packet.
func WriteIdentPacket(opts IdentOptions) []byte {
	w := NewBitWriter()
	w.WriteUint(1, 8)
	w.WriteBytes(vorbisSignature)
	w.WriteUint(0, 32) // version
	w.WriteUint(uint32(opts.Channels), 8)
	w.WriteUint(opts.SampleRate, 32)
	w.WriteInt(0, 32) // bitrate maximum
	w.WriteInt(0, 32) // bitrate nominal
	w.WriteInt(0, 32) // bitrate minimum
	w.WriteUint(uint32(opts.Blocksize0)|uint32(opts.Blocksize1)<<4, 8)
	w.WriteBool(true) // framing
	return w.Bytes()
}

// WriteCommentPacket builds a wire-format comment header packet.
func WriteCommentPacket(vendor string, comments map[string]string) []byte {
	w := NewBitWriter()
	w.WriteUint(3, 8)
	w.WriteBytes(vorbisSignature)
	w.WriteUint(uint32(len(vendor)), 32)
	w.WriteBytes([]byte(vendor))
	w.WriteUint(uint32(len(comments)), 32)
	for k, v := range comments {
		entry := k + "=" + v
		w.WriteUint(uint32(len(entry)), 32)
		w.WriteBytes([]byte(entry))
	}
	w.WriteBool(true) // framing
	return w.Bytes()
}

// writeCodebook packs a scalar-only, two-entry, one-dimensional
// codebook: entries {0, 1} each with a one-bit code, no VQ lookup.
// A minimal but legal prefix code, usable as both a classbook and a
// value book.
func writeCodebook(w *BitWriter) {
	w.WriteUint(0x564342, 24)
	w.WriteUint(1, 16) // dimensions
	w.WriteUint(2, 24) // entries
	w.WriteBool(false) // ordered
	w.WriteBool(false) // sparse
	w.WriteUint(0, 5)  // length-1 for entry 0 -> length 1
	w.WriteUint(0, 5)  // length-1 for entry 1 -> length 1
	w.WriteUint(0, 4)  // lookup type: none
}

// writeFloor1Empty packs a floor1 config with zero partitions: the
// smallest legal floor1, decoding to a two-point (flat) curve.
func writeFloor1Empty(w *BitWriter, rangebits int) {
	w.WriteUint(1, 16) // floor type
	w.WriteUint(0, 5)  // partitions
	w.WriteUint(0, 2)  // multiplier - 1
	w.WriteUint(uint32(rangebits), 4)
}

// writeResidueType0 packs a residue type 0 config with one
// classification and a single cascade pass, pointing at codebook 0 for
// both classify and value decode.
func writeResidueType0(w *BitWriter, vectorLen, partitionSize int) {
	w.WriteUint(0, 16)                     // type
	w.WriteUint(0, 24)                     // begin
	w.WriteUint(uint32(vectorLen), 24)     // end
	w.WriteUint(uint32(partitionSize-1), 24)
	w.WriteUint(0, 6) // classifications - 1 (1 classification)
	w.WriteUint(0, 8) // classbook index
	w.WriteUint(1, 3) // cascade low bits: pass 0 present
	w.WriteBool(false) // no high cascade bits
	w.WriteUint(0, 8)  // pass 0 book index
}

// writeMapping packs a single-submap, no-coupling mapping pointing at
// floor 0 and residue 0.
func writeMapping(w *BitWriter) {
	w.WriteUint(0, 16) // mapping type
	w.WriteBool(false) // has submaps
	w.WriteBool(false) // has coupling
	w.WriteUint(0, 2)  // reserved
	w.WriteUint(0, 8)  // submap 0: unused placeholder
	w.WriteUint(0, 8)  // submap 0: floor index
	w.WriteUint(0, 8)  // submap 0: residue index
}

// writeMode packs a mode pointing at mapping 0.
func writeMode(w *BitWriter, blockflag bool) {
	w.WriteBool(blockflag)
	w.WriteUint(0, 16) // window type
	w.WriteUint(0, 16) // transform type
	w.WriteUint(0, 8)  // mapping index
}

// SetupOptions configures WriteSetupPacket.
type SetupOptions struct {
	VectorLen     int
	PartitionSize int
	RangeBits     int

	// LongBlockMode adds a second mode (index 1) with Blockflag set,
	// alongside the always-present short-block mode 0. Both modes point
	// at mapping 0.
	LongBlockMode bool
}

// DefaultSetupOptions matches DefaultIdentOptions' short blocksize (64
// samples, 32 frequency bins).
func DefaultSetupOptions() SetupOptions {
	return SetupOptions{VectorLen: 32, PartitionSize: 2, RangeBits: 6}
}

// WriteSetupPacket builds a minimal but complete wire-format setup
// header packet: one codebook, one floor1, one residue0, one mapping,
// one mode (two with LongBlockMode). Every codebook, floor, and residue that exists is actually
// exercised by the accompanying audio packets WriteAudioPacket builds.
func WriteSetupPacket(opts SetupOptions) []byte {
	w := NewBitWriter()
	w.WriteUint(5, 8)
	w.WriteBytes(vorbisSignature)

	w.WriteUint(0, 8) // codebook count - 1
	writeCodebook(w)

	w.WriteUint(0, 6) // time count - 1
	w.WriteUint(0, 16)

	w.WriteUint(0, 6) // floor count - 1
	writeFloor1Empty(w, opts.RangeBits)

	w.WriteUint(0, 6) // residue count - 1
	writeResidueType0(w, opts.VectorLen, opts.PartitionSize)

	w.WriteUint(0, 6) // mapping count - 1
	writeMapping(w)

	if opts.LongBlockMode {
		w.WriteUint(1, 6) // mode count - 1 (two modes)
		writeMode(w, false)
		writeMode(w, true)
	} else {
		w.WriteUint(0, 6) // mode count - 1
		writeMode(w, false)
	}

	w.WriteBool(true) // framing
	return w.Bytes()
}

// WriteAudioPacket builds an audio packet selecting the given mode index
// and supplying floor1 Y values and residue codewords for a
// single-channel stream. blockflag must match the selected mode's
// Blockflag as declared by SetupOptions; when true, prevFlag/nextFlag
// supply the window-transition bits the wire format requires
// immediately after the mode index.
func WriteAudioPacket(modeIndex int, blockflag, prevFlag, nextFlag bool, floorY0, floorY1 uint32, residueBits []bool) []byte {
	w := NewBitWriter()
	w.WriteBool(false) // not a header packet
	w.WriteUint(uint32(modeIndex), 1)
	if blockflag {
		w.WriteBool(prevFlag)
		w.WriteBool(nextFlag)
	}

	// floor1: nonzero flag, then the two base Y values (8 bits each,
	// since multiplier=1 means 256*1-1=255, ilog(255)==8)
	w.WriteBool(true)
	w.WriteUint(floorY0, 8)
	w.WriteUint(floorY1, 8)

	for _, bit := range residueBits {
		w.WriteBool(bit)
	}
	return w.Bytes()
}

// MinimalStream returns a complete set of packets for the default
// config: identification, comment, setup, and one audio packet whose
// residue codewords are all zero (entry 0 of the lone codebook).
func MinimalStream() (ident, comment, setup []byte, audio [][]byte) {
	identOpts := DefaultIdentOptions()
	setupOpts := DefaultSetupOptions()
	ident = WriteIdentPacket(identOpts)
	comment = WriteCommentPacket("vorbistest", map[string]string{"ENCODER": "vorbistest"})
	setup = WriteSetupPacket(setupOpts)

	totalPartitions := setupOpts.VectorLen / setupOpts.PartitionSize
	bitsPerPartition := 1 + setupOpts.PartitionSize // one classbook bit, then one value bit per scalar read
	residueBits := make([]bool, totalPartitions*bitsPerPartition)
	audio = [][]byte{WriteAudioPacket(0, false, false, false, 40, 60, residueBits)}
	return ident, comment, setup, audio
}

// TransitionStream returns a complete set of packets for a stream whose
// setup declares both a short-block mode (0) and a long-block mode (1),
// along with one short-block audio packet and one long-block audio
// packet whose previous and next window flags are both false — the
// narrow-flap transition case where the long block's window has a
// nonzero dead zone on both sides of its ramps.
func TransitionStream() (ident, comment, setup []byte, shortAudio, transitionAudio []byte) {
	identOpts := DefaultIdentOptions()
	setupOpts := DefaultSetupOptions()
	setupOpts.LongBlockMode = true
	ident = WriteIdentPacket(identOpts)
	comment = WriteCommentPacket("vorbistest", map[string]string{"ENCODER": "vorbistest"})
	setup = WriteSetupPacket(setupOpts)

	totalPartitions := setupOpts.VectorLen / setupOpts.PartitionSize
	bitsPerPartition := 1 + setupOpts.PartitionSize
	residueBits := make([]bool, totalPartitions*bitsPerPartition)

	shortAudio = WriteAudioPacket(0, false, false, false, 40, 60, residueBits)
	transitionAudio = WriteAudioPacket(1, true, false, false, 40, 60, residueBits)
	return ident, comment, setup, shortAudio, transitionAudio
}
