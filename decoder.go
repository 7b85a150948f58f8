// SPDX-License-Identifier: EPL-2.0

package gorbis

import (
	"github.com/ik5/gorbis/bitreader"
	"github.com/ik5/gorbis/floor0"
	"github.com/ik5/gorbis/floor1"
	"github.com/ik5/gorbis/header"
	"github.com/ik5/gorbis/huffman"
	"github.com/ik5/gorbis/mdct"
	"github.com/ik5/gorbis/residue"
)

// SampleFormat selects the output representation DecodePacketAs
// produces from a decoded block.
type SampleFormat int

const (
	// FormatFloat32 returns samples as-is, one []float32 per channel.
	FormatFloat32 SampleFormat = iota
	// FormatInt16 returns one []int16 per channel.
	FormatInt16
	// FormatInt16Interleaved returns a single []int16 with channels
	// interleaved frame by frame.
	FormatInt16Interleaved
)

// DecodeOptions configures a Decoder. The zero value is a valid,
// fully-default configuration.
type DecodeOptions struct {
	// SampleFormat chosen by DecodePacketAs; DecodePacket always
	// returns float32 regardless of this setting.
	SampleFormat SampleFormat
}

// Decoder holds the mutable per-stream state needed to turn a sequence
// of Vorbis audio packets into PCM: the overlap-add tail left over from
// the previous block, per channel.
type Decoder struct {
	setup *Setup
	opts  DecodeOptions

	mdctTables map[int]*mdct.Table

	prevOut  [][]float32 // per channel, full windowed IMDCT output of the last block
	havePrev bool
}

// NewDecoder creates a Decoder bound to a parsed Setup.
func NewDecoder(setup *Setup, opts DecodeOptions) *Decoder {
	return &Decoder{
		setup:      setup,
		opts:       opts,
		mdctTables: map[int]*mdct.Table{},
		prevOut:    make([][]float32, setup.Ident.AudioChannels),
	}
}

func (d *Decoder) tableFor(n int) (*mdct.Table, error) {
	if t, ok := d.mdctTables[n]; ok {
		return t, nil
	}
	t, err := mdct.ForSize(n)
	if err != nil {
		return nil, err
	}
	d.mdctTables[n] = t
	return t, nil
}

// DecodePacket decodes one Vorbis audio packet into planar PCM, one
// []float32 per channel. The very first packet only primes the
// overlap-add state and returns (nil, nil).
func (d *Decoder) DecodePacket(packet []byte) ([][]float32, error) {
	r := bitreader.New(packet)
	if r.ReadBool() {
		return nil, ErrBadPacketType
	}

	modes := d.setup.Setup.Modes
	modeBits := ilog(uint32(len(modes) - 1))
	modeIndex := int(r.ReadUint(modeBits))
	if modeIndex >= len(modes) {
		return nil, ErrModeIndexOutOfRange
	}
	mode := modes[modeIndex]

	n0 := d.setup.Ident.BlockSize0()
	n1 := d.setup.Ident.BlockSize1()
	n := n0
	if mode.Blockflag {
		n = n1
	}

	leftWidth, rightWidth := n0/2, n0/2
	if mode.Blockflag {
		prevFlag := r.ReadBool()
		nextFlag := r.ReadBool()
		if prevFlag {
			leftWidth = n1 / 2
		}
		if nextFlag {
			rightWidth = n1 / 2
		}
	}
	if r.Overran() {
		return nil, ErrUnexpectedEndOfPacket
	}

	mapping := d.setup.Setup.Mappings[mode.Mapping]
	channels := int(d.setup.Ident.AudioChannels)
	half := n / 2

	spectrum := make([][]float32, channels)
	for ch := range spectrum {
		spectrum[ch] = make([]float32, half)
	}

	submapOf := func(ch int) int {
		if mapping.Submaps <= 1 {
			return 0
		}
		return int(mapping.Mux[ch])
	}

	for submap := 0; submap < int(mapping.Submaps); submap++ {
		var chans []int
		for ch := 0; ch < channels; ch++ {
			if submapOf(ch) == submap {
				chans = append(chans, ch)
			}
		}
		if len(chans) == 0 {
			continue
		}

		floorCfg := d.setup.Setup.Floors[mapping.SubmapFloor[submap]]
		curves := make(map[int][]float32, len(chans))
		doNotDecode := make([]bool, len(chans))
		for i, ch := range chans {
			curve, used := decodeFloor(r, floorCfg, d.setup.trees, d.setup.lookups, half)
			if r.Overran() {
				return nil, ErrUnexpectedEndOfPacket
			}
			if used {
				curves[ch] = curve
			}
			doNotDecode[i] = !used
		}

		residueCfg := d.setup.Setup.Residues[mapping.SubmapResidue[submap]]
		vectorLen := int(residueCfg.End - residueCfg.Begin)
		if vectorLen < 0 {
			vectorLen = 0
		}
		vectors, err := residue.Decode(r, residueCfg, d.setup.Setup.Codebooks, d.setup.residueBooks(), doNotDecode, vectorLen)
		if err != nil {
			return nil, err
		}

		for i, ch := range chans {
			curve, ok := curves[ch]
			if !ok || vectors[i] == nil {
				continue
			}
			for k := 0; k < vectorLen; k++ {
				bin := int(residueCfg.Begin) + k
				if bin >= half {
					break
				}
				spectrum[ch][bin] = curve[bin] * vectors[i][k]
			}
		}
	}

	applyInverseCoupling(mapping.CouplingSteps, spectrum)

	table, err := d.tableFor(n)
	if err != nil {
		return nil, err
	}
	winShape := blockWindow(n, leftWidth, rightWidth)

	windowed := make([][]float32, channels)
	for ch := 0; ch < channels; ch++ {
		samples := table.IMDCT(spectrum[ch])
		for i, w := range winShape {
			samples[i] *= w
		}
		windowed[ch] = samples
	}

	if !d.havePrev {
		d.prevOut = windowed
		d.havePrev = true
		return nil, nil
	}

	out := make([][]float32, channels)
	for ch := 0; ch < channels; ch++ {
		out[ch] = overlapAdd(d.prevOut[ch], windowed[ch])
	}
	d.prevOut = windowed
	return out, nil
}

func decodeFloor(r *bitreader.Reader, cfg header.FloorConfig, trees []*huffman.Tree, lookups []huffman.VQLookup, n int) ([]float32, bool) {
	switch c := cfg.(type) {
	case *header.Floor1:
		return floor1.Decode(r, c, trees, n)
	case *header.Floor0:
		return floor0.Decode(r, c, trees, lookups, n)
	default:
		return nil, false
	}
}

func ilog(v uint32) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	if n == 0 {
		return 1
	}
	return n
}

// blockWindow builds the asymmetric Vorbis window for a block of length
// n whose rising slope spans leftWidth samples (drawn from the window
// shape of a block twice that width) and whose falling slope spans
// rightWidth samples, with a flat plateau of 1.0 in between. When
// leftWidth or rightWidth is narrower than n/2 (a long block next to a
// short neighbor), the ramp is set back from the block edge by a dead
// zone of exact zeros rather than starting at index 0 — matching the
// reference's left_win_start/right_win_start placement.
func blockWindow(n, leftWidth, rightWidth int) []float32 {
	w := make([]float32, n)

	leftBegin := n/4 - leftWidth/2
	leftEnd := leftBegin + leftWidth
	leftSrc := mdct.Window(2 * leftWidth)
	for i := leftBegin; i < leftEnd; i++ {
		w[i] = leftSrc[i-leftBegin]
	}

	rightBegin := n/2 + n/4 - rightWidth/2
	rightEnd := rightBegin + rightWidth
	for i := leftEnd; i < rightBegin; i++ {
		w[i] = 1
	}
	rightSrc := mdct.Window(2 * rightWidth)
	for i := rightBegin; i < rightEnd; i++ {
		w[i] = rightSrc[rightWidth+(i-rightBegin)]
	}
	return w
}

// overlapAdd combines the previous block's windowed output with the
// current block's, aligning them on center when the two blocks have
// different lengths (a short/long transition).
func overlapAdd(prev, cur []float32) []float32 {
	prevHalf := len(prev) / 2
	half := len(cur) / 2
	out := make([]float32, half)

	switch {
	case prevHalf == half:
		for i := 0; i < half; i++ {
			out[i] = prev[prevHalf+i] + cur[i]
		}
	case prevHalf > half:
		offset := (prevHalf - half) / 2
		for i := 0; i < half; i++ {
			out[i] = prev[prevHalf+offset+i] + cur[i]
		}
	default:
		offset := (half - prevHalf) / 2
		copy(out, cur[:offset])
		for i := 0; i < prevHalf; i++ {
			out[offset+i] = prev[prevHalf+i] + cur[offset+i]
		}
		copy(out[offset+prevHalf:], cur[offset+prevHalf:])
	}
	return out
}
