package header

import "github.com/ik5/gorbis/bitreader"

// Setup is the fully parsed setup packet (packet type 5): every codebook,
// floor, residue, mapping, and mode a stream's audio packets reference.
type Setup struct {
	Codebooks []*Codebook
	Floors    []FloorConfig
	Residues  []*Residue
	Mappings  []*Mapping
	Modes     []*Mode
}

// ReadSetup parses the setup header packet given the stream's channel
// count (from the already-parsed identification header, needed to
// validate mapping coupling-step channel indices).
func ReadSetup(packet []byte, channels int) (*Setup, error) {
	r := bitreader.New(packet)
	if err := readHeaderBegin(r, 5); err != nil {
		return nil, err
	}

	s := &Setup{}

	codebookCount := int(r.ReadUint(8)) + 1
	s.Codebooks = make([]*Codebook, codebookCount)
	for i := range s.Codebooks {
		cb, err := readCodebook(r)
		if err != nil {
			return nil, err
		}
		s.Codebooks[i] = cb
	}

	timeCount := int(r.ReadUint(6)) + 1
	for i := 0; i < timeCount; i++ {
		reserved := r.ReadUint(16)
		if reserved != 0 {
			return nil, ErrMalformedHeader
		}
	}

	floorCount := int(r.ReadUint(6)) + 1
	s.Floors = make([]FloorConfig, floorCount)
	for i := range s.Floors {
		f, err := readFloor(r, codebookCount)
		if err != nil {
			return nil, err
		}
		s.Floors[i] = f
	}

	residueCount := int(r.ReadUint(6)) + 1
	s.Residues = make([]*Residue, residueCount)
	for i := range s.Residues {
		res, err := readResidue(r, codebookCount)
		if err != nil {
			return nil, err
		}
		s.Residues[i] = res
	}

	mappingCount := int(r.ReadUint(6)) + 1
	s.Mappings = make([]*Mapping, mappingCount)
	for i := range s.Mappings {
		m, err := readMapping(r, channels, floorCount, residueCount)
		if err != nil {
			return nil, err
		}
		s.Mappings[i] = m
	}

	modeCount := int(r.ReadUint(6)) + 1
	s.Modes = make([]*Mode, modeCount)
	for i := range s.Modes {
		m, err := readMode(r, mappingCount)
		if err != nil {
			return nil, err
		}
		s.Modes[i] = m
	}

	framing := r.ReadBool()
	if r.Overran() {
		return nil, ErrEndOfPacket
	}
	if !framing {
		return nil, ErrMalformedHeader
	}

	return s, nil
}
