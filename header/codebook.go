package header

import (
	"github.com/ik5/gorbis/bitreader"
	"github.com/ik5/gorbis/huffman"
)

const codebookSyncPattern = 0x564342

func readCodebook(r *bitreader.Reader) (*Codebook, error) {
	sync := r.ReadUint(24)
	if sync != codebookSyncPattern {
		return nil, ErrMalformedHeader
	}

	dimensions := int(r.ReadUint(16))
	entries := int(r.ReadUint(24))

	cb := &Codebook{Dimensions: dimensions, Entries: entries}

	ordered := r.ReadBool()
	if ordered {
		lengths, err := readOrderedLengths(r, entries)
		if err != nil {
			return nil, err
		}
		cb.Lengths = lengths
	} else {
		sparse := r.ReadBool()
		lengths := make([]uint8, entries)
		for i := 0; i < entries; i++ {
			used := true
			if sparse {
				used = r.ReadBool()
			}
			if used {
				length := uint8(r.ReadUint(5)) + 1
				lengths[i] = length
			}
		}
		cb.Lengths = lengths
	}
	if r.Overran() {
		return nil, ErrEndOfPacket
	}

	lookupType := uint8(r.ReadUint(4))
	if lookupType > 2 {
		return nil, ErrUnsupportedConfiguration
	}
	if lookupType != 0 {
		lookup := codebookLookup{Type: lookupType}
		lookup.MinValue = r.ReadFloat32()
		lookup.DeltaValue = r.ReadFloat32()
		lookup.ValueBits = uint8(r.ReadUint(4)) + 1
		lookup.SequenceP = r.ReadBool()

		var lookupValues int
		switch lookupType {
		case 1:
			lookupValues = huffman.Lookup1Values(entries, dimensions)
		case 2:
			lookupValues = entries * dimensions
		}
		if lookupValues < 0 {
			return nil, ErrMalformedHeader
		}
		multiplicands := make([]uint32, lookupValues)
		for i := range multiplicands {
			multiplicands[i] = r.ReadUint(int(lookup.ValueBits))
		}
		lookup.Multiplicands = multiplicands

		cb.HasLookup = true
		cb.Lookup = lookup
	}

	if r.Overran() {
		return nil, ErrEndOfPacket
	}
	return cb, nil
}

// Tree builds the prefix-code decode tree for this codebook's entry
// lengths. Called once per codebook while assembling a Setup.
func (cb *Codebook) Tree() (*huffman.Tree, error) {
	tree, err := huffman.NewTree(cb.Lengths)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// VQLookup builds the vector-quantization lookup table for this codebook,
// or reports ok == false if the codebook carries no VQ lookup.
func (cb *Codebook) VQLookup() (lookup huffman.VQLookup, ok bool) {
	if !cb.HasLookup {
		return huffman.VQLookup{}, false
	}
	return huffman.VQLookup{
		Type:          huffman.LookupType(cb.Lookup.Type),
		MinValue:      cb.Lookup.MinValue,
		DeltaValue:    cb.Lookup.DeltaValue,
		SequenceP:     cb.Lookup.SequenceP,
		Multiplicands: cb.Lookup.Multiplicands,
		Dimensions:    cb.Dimensions,
	}, true
}

func readOrderedLengths(r *bitreader.Reader, entries int) ([]uint8, error) {
	lengths := make([]uint8, entries)
	current := 0
	length := int(r.ReadUint(5)) + 1
	for current < entries {
		remaining := entries - current
		bits := ilog(uint32(remaining))
		num := int(r.ReadUint(bits))
		if num < 0 || current+num > entries {
			return nil, ErrMalformedHeader
		}
		for i := 0; i < num; i++ {
			lengths[current+i] = uint8(length)
		}
		current += num
		length++
		if length > 32 {
			return nil, ErrMalformedHeader
		}
	}
	return lengths, nil
}
