package header

import (
	"github.com/ik5/gorbis/bitreader"
)

var vorbisSignature = [6]byte{'v', 'o', 'r', 'b', 'i', 's'}

// readHeaderBegin validates the packet type byte and the six-byte
// "vorbis" signature that starts every header packet, returning
// ErrNotVorbisHeader if the type is not want or the signature differs.
func readHeaderBegin(r *bitreader.Reader, want uint8) error {
	packetType := uint8(r.ReadUint(8))
	if packetType != want {
		return ErrNotVorbisHeader
	}
	for _, want := range vorbisSignature {
		if uint8(r.ReadUint(8)) != want {
			return ErrNotVorbisHeader
		}
	}
	if r.Overran() {
		return ErrEndOfPacket
	}
	return nil
}

// ilog returns the position of the highest set bit, i.e. the number of
// bits required to represent v (ilog(0) == 0). Matches the reference
// decoder's ilog helper, used throughout header parsing to size dynamic
// bit-width fields.
func ilog(v uint32) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	return n
}
