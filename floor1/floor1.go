// SPDX-License-Identifier: EPL-2.0

// Package floor1 implements the Vorbis floor type 1 piecewise-linear
// envelope decoder: Y-value decode via the class/subclass books, the
// curve-rendering algorithm, and dequantization through the standard
// inverse dB table.
package floor1

import (
	"sort"

	"github.com/ik5/gorbis/bitreader"
	"github.com/ik5/gorbis/header"
	"github.com/ik5/gorbis/huffman"
)

// sortedX is one entry of the X list sorted by value, carrying the
// original index so the Y-values decoded in wire order can be looked up
// by render order.
type sortedX struct {
	x     int
	index int
}

// Decode reads a floor-1 curve. If used is false, the channel carries no
// energy this packet and curve is nil.
func Decode(r *bitreader.Reader, cfg *header.Floor1, books []*huffman.Tree, n int) (curve []float32, used bool) {
	if !r.ReadBool() {
		return nil, false
	}

	values := len(cfg.XList)
	yValues := make([]int, values)
	yValues[0] = int(r.ReadUint(ilogBits(uint32(256 * cfg.Multiplier - 1))))
	yValues[1] = int(r.ReadUint(ilogBits(uint32(256 * cfg.Multiplier - 1))))

	offset := 2
	for _, class := range cfg.PartitionClass {
		dims := int(cfg.ClassDimensions[class])
		subclasses := int(cfg.ClassSubclasses[class])
		csub := 1 << subclasses
		cbits := ilogBits(uint32(csub - 1))

		var cval uint32
		if subclasses > 0 {
			masterbook := int(cfg.ClassMasterbook[class])
			cval = books[masterbook].Decode(r)
		}
		for j := 0; j < dims; j++ {
			book := cfg.SubclassBooks[class][cval&uint32(csub-1)]
			cval >>= uint(cbits)
			if book < 0 {
				yValues[offset+j] = 0
				continue
			}
			entry := books[int(book)].Decode(r)
			yValues[offset+j] = int(entry)
		}
		offset += dims
	}

	if r.Overran() {
		return nil, false
	}

	stepFlags := make([]bool, values)
	finalY := make([]int, values)
	stepFlags[0] = true
	stepFlags[1] = true
	finalY[0] = yValues[0]
	finalY[1] = yValues[1]

	// Points 2..values-1 are reconstructed in decode-index order; each one
	// predicts off the nearest-by-X neighbors among the points already
	// finalized (indices 0..i-1), not the two immediately adjacent in X.
	for i := 2; i < values; i++ {
		lowIdx, highIdx := lowHighNeighbors(cfg.XList, i)
		predicted := renderPoint(cfg.XList[lowIdx], finalY[lowIdx], cfg.XList[highIdx], finalY[highIdx], cfg.XList[i])

		val := yValues[i]
		highroom := cfg.Multiplier*256 - predicted
		lowroom := predicted
		var room int
		if highroom < lowroom {
			room = highroom * 2
		} else {
			room = lowroom * 2
		}

		if val != 0 {
			stepFlags[i] = true
			var finalVal int
			if val >= room {
				if highroom > lowroom {
					finalVal = val - lowroom + predicted
				} else {
					finalVal = predicted - val + highroom - 1
				}
			} else {
				if val&1 != 0 {
					finalVal = predicted - (val+1)/2
				} else {
					finalVal = predicted + val/2
				}
			}
			finalY[i] = finalVal
		} else {
			stepFlags[i] = false
			finalY[i] = predicted
		}
	}

	curve = synthesizeCurve(sortX(cfg.XList), stepFlags, finalY, n)
	return curve, true
}

func ilogBits(v uint32) int {
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

func sortX(xlist []int) []sortedX {
	out := make([]sortedX, len(xlist))
	for i, x := range xlist {
		out[i] = sortedX{x: x, index: i}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].x < out[j].x })
	return out
}

// lowHighNeighbors finds, among the already-finalized points 0..i-1 (in
// decode-index order, not X-sorted order), the nearest one below and the
// nearest one above xlist[i], matching the reference's
// low_neighbor/high_neighbor.
func lowHighNeighbors(xlist []int, i int) (lowIdx, highIdx int) {
	lowIdx, highIdx = -1, -1
	x := xlist[i]
	for j := 0; j < i; j++ {
		if xlist[j] < x && (lowIdx == -1 || xlist[j] > xlist[lowIdx]) {
			lowIdx = j
		}
		if xlist[j] > x && (highIdx == -1 || xlist[j] < xlist[highIdx]) {
			highIdx = j
		}
	}
	return lowIdx, highIdx
}

// renderPoint predicts the Y value at x on the log-line through
// (x0, y0)-(x1, y1). A pure function of its four integer inputs.
func renderPoint(x0, y0, x1, y1, x int) int {
	dy := y1 - y0
	adx := x1 - x0
	ady := dy
	if ady < 0 {
		ady = -ady
	}
	err := ady * (x - x0)
	off := err / adx
	if dy < 0 {
		return y0 - off
	}
	return y0 + off
}

// renderLine fills dst[x0:x1] (exclusive of x1) with a Bresenham-style
// rendered line between (x0,y0) and (x1,y1), matching the reference's
// integer-arithmetic accumulator exactly.
func renderLine(x0, y0, x1, y1 int, dst []float32) {
	dy := y1 - y0
	adx := x1 - x0
	if adx <= 0 {
		return
	}
	ady := dy
	if ady < 0 {
		ady = -ady
	}
	base := dy / adx
	sy := base
	if dy < 0 {
		sy--
	} else {
		sy++
	}
	ady -= abs(base) * adx
	y := y0
	err := 0

	for x := x0; x < x1 && x < len(dst); x++ {
		if x >= 0 {
			dst[x] = dequantize(y)
		}
		err += ady
		if err >= adx {
			err -= adx
			y += sy
		} else {
			y += base
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func dequantize(y int) float32 {
	if y < 0 {
		y = 0
	}
	if y > 255 {
		y = 255
	}
	return inverseDBTable[y]
}

func synthesizeCurve(sorted []sortedX, stepFlags []bool, finalY []int, n int) []float32 {
	curve := make([]float32, n)

	hx, hy := 0, finalY[0]
	for i := 1; i < len(sorted); i++ {
		if !stepFlags[sorted[i].index] {
			continue
		}
		lx, ly := hx, hy
		hx, hy = sorted[i].x, finalY[sorted[i].index]
		if hx > n {
			hx = n
		}
		renderLine(lx, ly, hx, hy, curve)
		if hx >= n {
			break
		}
	}
	if hx < n {
		for x := hx; x < n; x++ {
			curve[x] = dequantize(hy)
		}
	}
	return curve
}
