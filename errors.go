// SPDX-License-Identifier: EPL-2.0

package gorbis

import "errors"

var (
	// ErrModeIndexOutOfRange is returned when an audio packet selects a
	// mode number the setup header never defined.
	ErrModeIndexOutOfRange = errors.New("gorbis: mode index out of range")
	// ErrUnexpectedEndOfPacket is returned when the bit reader ran out of
	// data at a point where the packet is not allowed to end.
	ErrUnexpectedEndOfPacket = errors.New("gorbis: unexpected end of packet")
	// ErrBadPacketType is returned when an audio packet's leading bit is
	// not the required 0 (audio packets are never type 1/3/5 headers).
	ErrBadPacketType = errors.New("gorbis: not an audio packet")
	// ErrNoCodebooks is returned by NewSetup when the setup header
	// somehow carries zero codebooks, which the format never permits.
	ErrNoCodebooks = errors.New("gorbis: setup header has no codebooks")
)
