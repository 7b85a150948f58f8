// SPDX-License-Identifier: EPL-2.0

package gorbis

import (
	"github.com/ik5/gorbis/bitreader"
	"github.com/ik5/gorbis/header"
	"github.com/ik5/gorbis/huffman"
	"github.com/ik5/gorbis/residue"
)

// Setup is the immutable, decoded configuration for one Vorbis logical
// stream: everything parsed from its three header packets, plus the
// prefix trees and VQ lookups built once from the codebooks, so that
// audio packet decoding never rebuilds them. Residue decode still reads
// each codebook's Dimensions from the parsed header tables.
type Setup struct {
	Ident   *header.IdentHeader
	Comment *header.CommentHeader
	Setup   *header.Setup

	trees   []*huffman.Tree
	lookups []huffman.VQLookup
}

// NewSetup parses the three Vorbis setup packets, in wire order, and
// builds the decode-time codebook structures.
func NewSetup(identPacket, commentPacket, setupPacket []byte) (*Setup, error) {
	ident, err := header.ReadIdent(identPacket)
	if err != nil {
		return nil, err
	}
	comment, err := header.ReadComment(commentPacket)
	if err != nil {
		return nil, err
	}
	setupHeader, err := header.ReadSetup(setupPacket, int(ident.AudioChannels))
	if err != nil {
		return nil, err
	}
	if len(setupHeader.Codebooks) == 0 {
		return nil, ErrNoCodebooks
	}

	trees := make([]*huffman.Tree, len(setupHeader.Codebooks))
	lookups := make([]huffman.VQLookup, len(setupHeader.Codebooks))
	for i, cb := range setupHeader.Codebooks {
		tree, err := cb.Tree()
		if err != nil {
			return nil, err
		}
		trees[i] = tree
		if lookup, ok := cb.VQLookup(); ok {
			lookups[i] = lookup
		}
	}

	return &Setup{
		Ident:   ident,
		Comment: comment,
		Setup:   setupHeader,
		trees:   trees,
		lookups: lookups,
	}, nil
}

// BlockSize0 returns the short block length in samples.
func (s *Setup) BlockSize0() int { return s.Ident.BlockSize0() }

// BlockSize1 returns the long block length in samples.
func (s *Setup) BlockSize1() int { return s.Ident.BlockSize1() }

// Channels returns the stream's channel count.
func (s *Setup) Channels() int { return int(s.Ident.AudioChannels) }

// SampleRate returns the stream's sample rate in Hz.
func (s *Setup) SampleRate() int { return int(s.Ident.AudioSampleRate) }

// residueBooks bundles the decode-time tree/lookup views for every
// codebook, the shape the residue package wants.
func (s *Setup) residueBooks() residue.Books {
	return residue.Books{Trees: s.trees, Lookups: s.lookups}
}

// blockSizeOf reads just enough of an audio packet to determine the
// blocksize its mode selects, for cheap previews.
func (s *Setup) blockSizeOf(packet []byte) (int, error) {
	r := bitreader.New(packet)
	if r.ReadBool() {
		return 0, ErrBadPacketType
	}
	modes := s.Setup.Modes
	modeBits := ilog(uint32(len(modes) - 1))
	modeIndex := int(r.ReadUint(modeBits))
	if r.Overran() || modeIndex >= len(modes) {
		return 0, ErrModeIndexOutOfRange
	}
	if modes[modeIndex].Blockflag {
		return s.Ident.BlockSize1(), nil
	}
	return s.Ident.BlockSize0(), nil
}
