// SPDX-License-Identifier: EPL-2.0

// Package gorbis is a pure-Go decoder for the core of the Vorbis I audio
// codec: given the three setup packets and a stream of audio packets, it
// reconstructs PCM samples, one slice per channel.
//
// # Decoding a Vorbis stream
//
// Building a Decoder takes the three Vorbis setup packets, in order:
//
//	setup, err := gorbis.NewSetup(identPacket, commentPacket, setupPacket)
//	dec := gorbis.NewDecoder(setup, gorbis.DecodeOptions{})
//
//	for {
//		pcm, err := dec.DecodePacket(audioPacket)
//		// pcm is [][]float32, one slice per channel, or nil on the
//		// first packet (which only primes the overlap-add state)
//	}
//
// gorbis itself has no opinion about how packets arrive — see
// formats/vorbis for an Ogg-container-backed audio.Source built on top
// of this package.
//
// # Format Decoders
//
// The sibling formats/ packages provide audio.Source implementations;
// formats/vorbis is built on this core, while formats/wav parses PCM WAV
// files on its own:
//
//	// WAV
//	wavDecoder := wav.Decoder{}
//	src, _ := wavDecoder.Decode(reader)
//
//	// Vorbis
//	vorbisDecoder := vorbis.Decoder{}
//	src, _ := vorbisDecoder.Decode(reader)
//
// All decoders return an audio.Source interface which can be used with
// the audio processing functions.
//
// # Writing WAV Files
//
// The package can write PCM WAV files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	wav.WriteWAV16(file, 8000, samples)
//
// See the individual subpackages for more detailed documentation.
package gorbis
