package header

import "github.com/ik5/gorbis/bitreader"

func readMapping(r *bitreader.Reader, channels int, floorCount, residueCount int) (*Mapping, error) {
	m := &Mapping{}

	mappingType := r.ReadUint(16)
	if mappingType != 0 {
		return nil, ErrUnsupportedConfiguration
	}

	hasSubmaps := r.ReadBool()
	if hasSubmaps {
		m.Submaps = uint8(r.ReadUint(4)) + 1
	} else {
		m.Submaps = 1
	}

	hasCoupling := r.ReadBool()
	if hasCoupling {
		steps := int(r.ReadUint(8)) + 1
		chanBits := ilog(uint32(channels - 1))
		seen := make(map[uint8]bool)
		for i := 0; i < steps; i++ {
			mag := uint8(r.ReadUint(chanBits))
			ang := uint8(r.ReadUint(chanBits))
			if int(mag) >= channels || int(ang) >= channels || mag == ang {
				return nil, ErrMalformedHeader
			}
			if seen[mag] || seen[ang] {
				return nil, ErrMalformedHeader
			}
			seen[mag] = true
			seen[ang] = true
			m.CouplingSteps = append(m.CouplingSteps, CouplingStep{Magnitude: mag, Angle: ang})
		}
	}

	reserved := r.ReadUint(2)
	if reserved != 0 {
		return nil, ErrMalformedHeader
	}

	m.Mux = make([]uint8, channels)
	if m.Submaps > 1 {
		for ch := 0; ch < channels; ch++ {
			mux := uint8(r.ReadUint(4))
			if int(mux) >= int(m.Submaps) {
				return nil, ErrMalformedHeader
			}
			m.Mux[ch] = mux
		}
	}

	m.SubmapFloor = make([]uint8, m.Submaps)
	m.SubmapResidue = make([]uint8, m.Submaps)
	for i := 0; i < int(m.Submaps); i++ {
		r.ReadUint(8) // unused placeholder byte, reserved
		floorIdx := uint8(r.ReadUint(8))
		residueIdx := uint8(r.ReadUint(8))
		if int(floorIdx) >= floorCount || int(residueIdx) >= residueCount {
			return nil, ErrMalformedHeader
		}
		m.SubmapFloor[i] = floorIdx
		m.SubmapResidue[i] = residueIdx
	}

	if r.Overran() {
		return nil, ErrEndOfPacket
	}
	return m, nil
}
