package header

import (
	"strings"
	"unicode/utf8"

	"github.com/ik5/gorbis/bitreader"
)

// ReadComment parses the comment header packet (packet type 3).
//
// Comment values with invalid UTF-8, and comments missing an '=' key/value
// separator, are silently dropped rather than causing a parse error. This
// mirrors real-world Vorbis files, which are not always as clean as the
// format demands, and matches the reference decoder's behavior exactly.
func ReadComment(packet []byte) (*CommentHeader, error) {
	r := bitreader.New(packet)
	if err := readHeaderBegin(r, 3); err != nil {
		return nil, err
	}

	vendorLen := r.ReadUint(32)
	vendor := readString(r, int(vendorLen))

	count := r.ReadUint(32)
	h := &CommentHeader{Vendor: vendor}
	for i := uint32(0); i < count; i++ {
		length := r.ReadUint(32)
		raw := readBytes(r, int(length))
		if r.Overran() {
			return nil, ErrEndOfPacket
		}
		if !utf8.Valid(raw) {
			continue
		}
		s := string(raw)
		eq := strings.IndexByte(s, '=')
		if eq < 0 {
			continue
		}
		h.Comments = append(h.Comments, Comment{Key: s[:eq], Value: s[eq+1:]})
	}

	framing := r.ReadBool()
	if r.Overran() {
		return nil, ErrEndOfPacket
	}
	if !framing {
		return nil, ErrMalformedHeader
	}
	return h, nil
}

func readBytes(r *bitreader.Reader, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(r.ReadUint(8))
	}
	return out
}

func readString(r *bitreader.Reader, n int) string {
	return string(readBytes(r, n))
}
