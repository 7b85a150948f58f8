// SPDX-License-Identifier: EPL-2.0

// Package floor0 implements the Vorbis floor type 0 (LSP/Bark-warped)
// envelope decoder: amplitude and coefficient decode, and the
// Bark-scale line-spectral-pair curve synthesis.
package floor0

import (
	"math"

	"github.com/ik5/gorbis/bitreader"
	"github.com/ik5/gorbis/header"
	"github.com/ik5/gorbis/huffman"
)

// Decode reads a floor-0 curve of n frequency bins (n == blocksize/2).
// If used is false, the channel carries no energy this packet.
func Decode(r *bitreader.Reader, cfg *header.Floor0, books []*huffman.Tree, lookups []huffman.VQLookup, n int) (curve []float32, used bool) {
	amplitude := int(r.ReadUint(cfg.AmplitudeBits))
	if amplitude <= 0 {
		return nil, false
	}

	bookBits := ilog(uint32(len(cfg.BookList) - 1))
	bookNum := int(r.ReadUint(bookBits))
	if bookNum >= len(cfg.BookList) {
		return nil, false
	}
	book := int(cfg.BookList[bookNum])

	// The coefficient array holds cos(running angle sum), not the bare
	// LSP values the wire format carries: floor_zero_compute_curve wants
	// cosines directly, so the cosine is taken here once rather than
	// once per curve bin.
	coeff := make([]float32, 0, cfg.Order)
	tree := books[book]
	lookup := lookups[book]
	last := float32(0)
	for len(coeff) < cfg.Order {
		entry := tree.Decode(r)
		if r.Overran() {
			return nil, false
		}
		vec := lookup.Vector(entry)
		var lastRaw float32
		for _, v := range vec {
			if len(coeff) >= cfg.Order {
				break
			}
			coeff = append(coeff, float32(math.Cos(float64(v+last))))
			lastRaw = v
		}
		last += lastRaw
	}

	cosOmega := barkMapCosOmega(n, cfg.Rate, cfg.BarkMapSize)
	curve = computeCurve(coeff, amplitude, int(cfg.AmplitudeOffset), int(cfg.AmplitudeBits), cosOmega)
	return curve, true
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

// bark converts a linear frequency in Hz to the Bark psychoacoustic
// scale, using the standard analytic approximation shared across Vorbis
// implementations.
func bark(x float64) float64 {
	return 13.1*math.Atan(0.00074*x) + 2.24*math.Atan(0.0000000185*x*x) + 0.0001*x
}

// barkMapCosOmega precomputes cos(omega) for each of the n frequency
// bins of a floor-0 curve, where omega is the bin's Bark-warped angular
// frequency scaled into [0, pi].
func barkMapCosOmega(n, rate, barkMapSize int) []float32 {
	out := make([]float32, n)
	maxBark := bark(float64(rate) / 2.0)
	for i := 0; i < n; i++ {
		freq := float64(rate) * float64(i) / float64(2*n)
		scaled := bark(freq) * float64(barkMapSize) / maxBark
		idx := int(scaled)
		if idx >= barkMapSize {
			idx = barkMapSize - 1
		}
		angle := math.Pi * float64(idx) / float64(barkMapSize)
		out[i] = float32(math.Cos(angle))
	}
	return out
}

// computeCurve synthesizes the linear-magnitude spectral envelope from a
// line-spectral-pair coefficient set (already cosine-transformed by
// Decode): odd-indexed coefficients build the P polynomial, even-indexed
// build Q, each term scaled by 4 as the LSP factorization requires, and
// the envelope at each bin is exp(0.11512925 * (commonTerm/sqrt(P+Q) -
// amplitudeOffset)).
func computeCurve(coeff []float32, amplitude, amplitudeOffset, amplitudeBits int, cosOmega []float32) []float32 {
	order := len(coeff)
	n := len(cosOmega)
	out := make([]float32, n)

	commonTerm := float32(amplitude) * float32(amplitudeOffset) / float32((uint64(1)<<uint(amplitudeBits))-1)

	var pUpper, qUpper int
	if order&1 == 1 {
		pUpper = (order - 3) / 2
		qUpper = (order - 1) / 2
	} else {
		v := (order - 2) / 2
		pUpper, qUpper = v, v
	}

	for i := 0; i < n; i++ {
		w := cosOmega[i]

		var p, q float32
		if order&1 == 1 {
			p = 1 - w*w
			q = 0.25
		} else {
			p = (1 - w) / 2
			q = (1 + w) / 2
		}
		for j := 0; j <= pUpper; j++ {
			pm := coeff[2*j+1] - w
			p *= 4 * pm * pm
		}
		for j := 0; j <= qUpper; j++ {
			qm := coeff[2*j] - w
			q *= 4 * qm * qm
		}

		mag := p + q
		if mag <= 0 {
			mag = 1e-9
		}
		out[i] = float32(math.Exp(0.11512925 * (float64(commonTerm)/math.Sqrt(float64(mag)) - float64(amplitudeOffset))))
	}
	return out
}
