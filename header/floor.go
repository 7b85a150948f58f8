package header

import "github.com/ik5/gorbis/bitreader"

func readFloor(r *bitreader.Reader, codebookCount int) (FloorConfig, error) {
	floorType := r.ReadUint(16)
	switch floorType {
	case 0:
		return readFloor0(r, codebookCount)
	case 1:
		return readFloor1(r, codebookCount)
	default:
		return nil, ErrUnsupportedConfiguration
	}
}

func readFloor0(r *bitreader.Reader, codebookCount int) (*Floor0, error) {
	f := &Floor0{}
	f.Order = int(r.ReadUint(8))
	f.Rate = int(r.ReadUint(16))
	f.BarkMapSize = int(r.ReadUint(16))
	f.AmplitudeBits = int(r.ReadUint(6))
	if f.AmplitudeBits > 64 {
		return nil, ErrMalformedHeader
	}
	f.AmplitudeOffset = int(r.ReadUint(8))
	numBooks := int(r.ReadUint(4)) + 1
	f.BookList = make([]uint8, numBooks)
	for i := range f.BookList {
		idx := uint8(r.ReadUint(8))
		if int(idx) >= codebookCount {
			return nil, ErrMalformedHeader
		}
		f.BookList[i] = idx
	}
	if r.Overran() {
		return nil, ErrEndOfPacket
	}
	return f, nil
}

func readFloor1(r *bitreader.Reader, codebookCount int) (*Floor1, error) {
	f := &Floor1{}

	partitions := int(r.ReadUint(5))
	f.PartitionClass = make([]uint8, partitions)
	maxClass := -1
	for i := range f.PartitionClass {
		c := uint8(r.ReadUint(4))
		f.PartitionClass[i] = c
		if int(c) > maxClass {
			maxClass = int(c)
		}
	}

	classCount := maxClass + 1
	f.ClassDimensions = make([]uint8, classCount)
	f.ClassSubclasses = make([]uint8, classCount)
	f.ClassMasterbook = make([]int16, classCount)
	f.SubclassBooks = make([][]int16, classCount)

	for i := 0; i < classCount; i++ {
		f.ClassDimensions[i] = uint8(r.ReadUint(3)) + 1
		f.ClassSubclasses[i] = uint8(r.ReadUint(2))
		if f.ClassSubclasses[i] != 0 {
			mb := int16(r.ReadUint(8))
			if int(mb) >= codebookCount {
				return nil, ErrMalformedHeader
			}
			f.ClassMasterbook[i] = mb
		} else {
			f.ClassMasterbook[i] = -1
		}

		numSub := 1 << f.ClassSubclasses[i]
		books := make([]int16, numSub)
		for j := 0; j < numSub; j++ {
			b := int16(r.ReadUint(8)) - 1
			if b >= int16(codebookCount) {
				return nil, ErrMalformedHeader
			}
			books[j] = b
		}
		f.SubclassBooks[i] = books
	}

	f.Multiplier = int(r.ReadUint(2)) + 1
	rangebits := int(r.ReadUint(4))

	f.XList = []int{0, 1 << uint(rangebits)}
	for i := range f.PartitionClass {
		class := f.PartitionClass[i]
		dims := int(f.ClassDimensions[class])
		for j := 0; j < dims; j++ {
			f.XList = append(f.XList, int(r.ReadUint(rangebits)))
		}
	}
	if len(f.XList) > 65 {
		return nil, ErrMalformedHeader
	}

	if r.Overran() {
		return nil, ErrEndOfPacket
	}

	if hasDuplicateX(f.XList) {
		return nil, ErrMalformedHeader
	}

	return f, nil
}

func hasDuplicateX(xs []int) bool {
	seen := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			return true
		}
		seen[x] = struct{}{}
	}
	return false
}
