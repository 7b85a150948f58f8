package huffman

import "errors"

var (
	// ErrInvalidCodebook is returned when the given code lengths cannot
	// form a usable prefix code: an overfull tree with more than one
	// live entry, or a single live entry whose length isn't 1.
	ErrInvalidCodebook = errors.New("huffman: code lengths form no usable prefix code")

	// ErrIncompleteCodebook is returned for an underfull tree: one that
	// leaves unreachable leaves in the prefix-code space.
	ErrIncompleteCodebook = errors.New("huffman: code lengths do not form a complete prefix code")

	// ErrNoLookup is returned when a vector lookup is requested on a
	// codebook that carries no VQ lookup table.
	ErrNoLookup = errors.New("huffman: codebook has no vector quantization lookup")

	// ErrEntryOutOfRange is returned when a decoded entry number is not
	// less than the codebook's entry count.
	ErrEntryOutOfRange = errors.New("huffman: entry number out of range")
)
