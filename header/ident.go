package header

import "github.com/ik5/gorbis/bitreader"

// ReadIdent parses the identification header packet (packet type 1).
func ReadIdent(packet []byte) (*IdentHeader, error) {
	r := bitreader.New(packet)
	if err := readHeaderBegin(r, 1); err != nil {
		return nil, err
	}

	version := r.ReadUint(32)
	if version != 0 {
		return nil, ErrUnsupportedVersion
	}

	h := &IdentHeader{}
	h.AudioChannels = uint8(r.ReadUint(8))
	h.AudioSampleRate = r.ReadUint(32)
	h.BitrateMaximum = r.ReadInt(32)
	h.BitrateNominal = r.ReadInt(32)
	h.BitrateMinimum = r.ReadInt(32)

	blocksizeByte := uint8(r.ReadUint(8))
	h.Blocksize0 = blocksizeByte & 0x0f
	h.Blocksize1 = blocksizeByte >> 4

	framing := r.ReadBool()

	if r.Overran() {
		return nil, ErrEndOfPacket
	}
	if h.AudioChannels == 0 || h.AudioSampleRate == 0 {
		return nil, ErrMalformedHeader
	}
	if h.Blocksize0 < 6 || h.Blocksize0 > 13 || h.Blocksize1 < 6 || h.Blocksize1 > 13 {
		return nil, ErrMalformedHeader
	}
	if h.Blocksize0 > h.Blocksize1 {
		return nil, ErrMalformedHeader
	}
	if !framing {
		return nil, ErrMalformedHeader
	}

	return h, nil
}
