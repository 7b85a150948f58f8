// SPDX-License-Identifier: EPL-2.0

// Package residue implements Vorbis residue types 0, 1, and 2: the
// partitioned vector-quantization decode that reconstructs the
// per-channel spectral residue vectors added to the floor curve.
package residue

import (
	"github.com/ik5/gorbis/bitreader"
	"github.com/ik5/gorbis/header"
	"github.com/ik5/gorbis/huffman"
)

const maxPasses = 8

// Books groups the decode-time helpers for one codebook: its prefix
// tree and, where present, its VQ lookup table.
type Books struct {
	Trees   []*huffman.Tree
	Lookups []huffman.VQLookup
}

// Decode reconstructs the residue vectors for a residue configuration.
// vectorLen is end-begin, the length in samples of each channel's
// residue vector; doNotDecode marks channels the mapping's floor
// determined carry no energy this packet and whose residue should stay
// zero. For every type the returned slice has one row per channel, nil
// for channels marked in doNotDecode; type 2 decodes one interleaved
// vector and deinterleaves it into those rows itself.
func Decode(r *bitreader.Reader, cfg *header.Residue, books []*header.Codebook, decodeBooks Books, doNotDecode []bool, vectorLen int) ([][]float32, error) {
	switch cfg.Type {
	case 2:
		return decodeType2(r, cfg, books, decodeBooks, doNotDecode, vectorLen)
	default:
		return decodePartitioned(r, cfg, books, decodeBooks, activeChannels(doNotDecode, vectorLen), cfg.Type == 0)
	}
}

func activeChannels(doNotDecode []bool, vectorLen int) [][]float32 {
	out := make([][]float32, len(doNotDecode))
	for i := range out {
		if !doNotDecode[i] {
			out[i] = make([]float32, vectorLen)
		}
	}
	return out
}

// decodePartitioned runs the shared classify+read algorithm (residue
// type 1 and, with deinterleavedWrite set, type 0) across a set of
// channel vectors that may already exist (type 2's virtual channel) or
// be freshly allocated (types 0 and 1).
func decodePartitioned(r *bitreader.Reader, cfg *header.Residue, books []*header.Codebook, decodeBooks Books, out [][]float32, deinterleavedWrite bool) ([][]float32, error) {
	n := len(out)
	if n == 0 {
		return out, nil
	}
	vectorLen := 0
	for _, v := range out {
		if v != nil {
			vectorLen = len(v)
			break
		}
	}
	if vectorLen == 0 {
		return out, nil
	}

	classbook := books[cfg.Classbook]
	classDim := classbook.Dimensions
	if classDim <= 0 {
		classDim = 1
	}
	classTree := decodeBooks.Trees[cfg.Classbook]

	partitionSize := int(cfg.PartitionSize)
	if partitionSize <= 0 {
		partitionSize = 1
	}
	totalPartitions := vectorLen / partitionSize

	classifications := make([][]int, n)
	for i := range classifications {
		if out[i] != nil {
			classifications[i] = make([]int, totalPartitions)
		}
	}

	for pass := 0; pass < maxPasses; pass++ {
		partition := 0
		for partition < totalPartitions {
			if pass == 0 && partition%classDim == 0 {
				for ch := 0; ch < n; ch++ {
					if out[ch] == nil {
						continue
					}
					if r.Overran() {
						return out, nil
					}
					entry := classTree.Decode(r)
					decomposeClass(int(entry), int(cfg.Classifications), classDim, classifications[ch], partition)
				}
			}

			for ch := 0; ch < n; ch++ {
				if out[ch] == nil {
					continue
				}
				class := classifications[ch][partition]
				bookIdx := cfg.Books[class][pass]
				if bookIdx < 0 {
					continue
				}
				if r.Overran() {
					return out, nil
				}
				tree := decodeBooks.Trees[int(bookIdx)]
				lookup := decodeBooks.Lookups[int(bookIdx)]
				dim := books[int(bookIdx)].Dimensions
				if dim <= 0 {
					dim = 1
				}
				base := partition * partitionSize
				count := partitionSize / dim
				for k := 0; k < count; k++ {
					entry := tree.Decode(r)
					if r.Overran() {
						return out, nil
					}
					vec := lookup.Vector(entry)
					writeVector(out[ch], vec, base, k, dim, count, deinterleavedWrite)
				}
			}
			partition++
		}
	}
	return out, nil
}

// decomposeClass splits a classbook entry into classDim classification
// digits in base classifications, writing them into
// classifications[partition:partition+classDim] with the digit for the
// last partition in the group extracted first.
func decomposeClass(entry, classifications, classDim int, dst []int, partition int) {
	temp := entry
	for i := classDim - 1; i >= 0; i-- {
		if partition+i >= len(dst) {
			temp /= classifications
			continue
		}
		dst[partition+i] = temp % classifications
		temp /= classifications
	}
}

// writeVector places one decoded VQ vector into a channel's residue
// output. Type 1 (and type 2's virtual vector) writes contiguously;
// type 0 interleaves values across the partition at a fixed stride so
// that adjacent frequency bins draw from different codewords.
func writeVector(dst []float32, vec []float32, base, k, dim, count int, deinterleaved bool) {
	for d, v := range vec {
		var idx int
		if deinterleaved {
			idx = base + d*count + k
		} else {
			idx = base + k*dim + d
		}
		if idx < len(dst) {
			dst[idx] += v
		}
	}
}

func decodeType2(r *bitreader.Reader, cfg *header.Residue, books []*header.Codebook, decodeBooks Books, doNotDecode []bool, vectorLen int) ([][]float32, error) {
	channels := len(doNotDecode)
	allSilent := true
	for _, dn := range doNotDecode {
		if !dn {
			allSilent = false
			break
		}
	}
	if allSilent {
		return make([][]float32, channels), nil
	}

	virtual := make([]float32, channels*vectorLen)
	out, err := decodePartitioned(r, cfg, books, decodeBooks, [][]float32{virtual}, false)
	if err != nil {
		return nil, err
	}
	merged := out[0]

	result := make([][]float32, channels)
	for ch := range result {
		if doNotDecode[ch] {
			continue
		}
		result[ch] = make([]float32, vectorLen)
	}
	for i, v := range merged {
		ch := i % channels
		sample := i / channels
		if result[ch] != nil {
			result[ch][sample] = v
		}
	}
	return result, nil
}
