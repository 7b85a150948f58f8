// Package header parses the three Vorbis setup packets — identification,
// comment, and setup — into the immutable tables a decoder needs for every
// subsequent audio packet: codebooks, floor configurations, residues,
// channel mappings, and modes.
//
// Parsing a full setup follows the wire order the format requires: the
// identification header first (it carries the channel count mapping
// headers validate against), then comment, then setup.
//
//	ident, err := header.ReadIdent(identPacket)
//	comment, err := header.ReadComment(commentPacket)
//	setup, err := header.ReadSetup(setupPacket, int(ident.AudioChannels))
//
// Any error here is fatal to the stream: no partial Setup is ever handed
// back.
package header
