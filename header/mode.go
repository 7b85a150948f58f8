package header

import "github.com/ik5/gorbis/bitreader"

func readMode(r *bitreader.Reader, mappingCount int) (*Mode, error) {
	m := &Mode{}
	m.Blockflag = r.ReadBool()
	windowType := r.ReadUint(16)
	transformType := r.ReadUint(16)
	if windowType != 0 || transformType != 0 {
		return nil, ErrUnsupportedConfiguration
	}
	mapping := uint8(r.ReadUint(8))
	if int(mapping) >= mappingCount {
		return nil, ErrMalformedHeader
	}
	m.Mapping = mapping

	if r.Overran() {
		return nil, ErrEndOfPacket
	}
	return m, nil
}
