package header

import "errors"

var (
	// ErrNotVorbisHeader is returned when a packet's type/signature bytes
	// don't identify it as a Vorbis header packet of the expected kind.
	ErrNotVorbisHeader = errors.New("header: packet is not a Vorbis header of the expected type")

	// ErrUnsupportedVersion is returned for a nonzero Vorbis version field.
	ErrUnsupportedVersion = errors.New("header: unsupported Vorbis version")

	// ErrMalformedHeader is returned when a header packet's fields fail
	// validation (bad blocksize, zero channels, bad framing bit, etc).
	ErrMalformedHeader = errors.New("header: malformed header packet")

	// ErrUnsupportedConfiguration is returned for a structurally valid
	// but unsupported setup value, such as a floor type outside {0, 1}.
	ErrUnsupportedConfiguration = errors.New("header: unsupported configuration")

	// ErrEndOfPacket is returned when a header packet runs out of bits
	// before all required fields could be read. Unlike audio-packet
	// residue decode, this is always fatal during header parsing.
	ErrEndOfPacket = errors.New("header: unexpected end of packet")
)
