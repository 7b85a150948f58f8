package header

import "github.com/ik5/gorbis/bitreader"

func readResidue(r *bitreader.Reader, codebookCount int) (*Residue, error) {
	res := &Residue{}
	res.Type = uint8(r.ReadUint(16))
	if res.Type > 2 {
		return nil, ErrUnsupportedConfiguration
	}
	res.Begin = r.ReadUint(24)
	res.End = r.ReadUint(24)
	res.PartitionSize = r.ReadUint(24) + 1
	res.Classifications = uint8(r.ReadUint(6)) + 1
	res.Classbook = uint8(r.ReadUint(8))
	if int(res.Classbook) >= codebookCount {
		return nil, ErrMalformedHeader
	}

	res.Books = make([][8]int16, res.Classifications)
	for i := 0; i < int(res.Classifications); i++ {
		for p := 0; p < 8; p++ {
			res.Books[i][p] = -1
		}

		lowBits := r.ReadUint(3)
		var highBits uint32
		hasHighBits := r.ReadBool()
		if hasHighBits {
			highBits = r.ReadUint(5)
		}
		cascade := lowBits | (highBits << 3)

		for p := 0; p < 8; p++ {
			if cascade&(1<<uint(p)) == 0 {
				continue
			}
			book := int16(r.ReadUint(8))
			if int(book) >= codebookCount {
				return nil, ErrMalformedHeader
			}
			res.Books[i][p] = book
		}
	}

	if r.Overran() {
		return nil, ErrEndOfPacket
	}
	return res, nil
}
