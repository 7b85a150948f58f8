// SPDX-License-Identifier: EPL-2.0

// Package mdct implements the windowed inverse modified discrete cosine
// transform used to turn a block's floor*residue spectrum back into
// time-domain samples, via an N/4-point complex FFT with pre- and
// post-rotation twiddle factors rather than a hand-unrolled radix
// decomposition.
package mdct

import (
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Table holds the precomputed twiddle factors and FFT plan for one
// blocksize. Tables are cheap to build (O(n)) but the FFT plan itself
// is worth caching across packets, so callers should keep one Table per
// distinct blocksize a stream uses (at most two: short and long).
type Table struct {
	n      int
	sincos []complex64
	plan   *algofft.Plan[complex64]
}

var (
	tableCache   = map[int]*Table{}
	tableCacheMu sync.Mutex
)

// ForSize returns the shared Table for blocksize n, building and caching
// it on first use.
func ForSize(n int) (*Table, error) {
	tableCacheMu.Lock()
	defer tableCacheMu.Unlock()
	if t, ok := tableCache[n]; ok {
		return t, nil
	}
	t, err := newTable(n)
	if err != nil {
		return nil, err
	}
	tableCache[n] = t
	return t, nil
}

func newTable(n int) (*Table, error) {
	n4 := n / 4
	plan, err := algofft.NewPlan32(n4)
	if err != nil {
		return nil, err
	}
	sincos := make([]complex64, n4)
	for k := 0; k < n4; k++ {
		angle := 2 * math.Pi * (float64(k) + 0.125) / float64(n)
		sincos[k] = complex(float32(math.Cos(angle)), float32(math.Sin(angle)))
	}
	return &Table{n: n, sincos: sincos, plan: plan}, nil
}

// IMDCT computes the inverse MDCT of coeff (n/2 frequency-domain
// values), returning n time-domain samples.
func (t *Table) IMDCT(coeff []float32) []float32 {
	n := t.n
	n2 := n / 2
	n4 := n / 4

	z := make([]complex64, n4)
	for k := 0; k < n4; k++ {
		x1 := coeff[2*k]
		x2 := coeff[n2-1-2*k]
		w := t.sincos[k]
		re := x1*real(w) - x2*imag(w)
		im := x1*imag(w) + x2*real(w)
		z[k] = complex(re, im)
	}

	if err := t.plan.Inverse(z, z); err != nil {
		panic(err)
	}
	// algofft normalizes by 1/N on Inverse; undo that so downstream
	// windowing sees the same magnitude convention as an unnormalized
	// N/4-point DFT.
	scale := float32(n4)
	for i := range z {
		z[i] *= complex(scale, 0)
	}

	for k := 0; k < n4; k++ {
		w := t.sincos[k]
		re := real(z[k])
		im := imag(z[k])
		z[k] = complex(im*real(w)-re*imag(w), re*real(w)+im*imag(w))
	}

	out := make([]float32, n)
	for k := 0; k < n4; k++ {
		j := n4 - 1 - k
		out[2*k] = -real(z[k])
		out[n2-1-2*k] = imag(z[k])
		out[n2+2*k] = -imag(z[j])
		out[n-1-2*k] = -real(z[j])
	}
	return out
}
