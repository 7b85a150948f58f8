// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"io"

	"github.com/ik5/gorbis"
	"github.com/ik5/gorbis/audio"
	"github.com/jfreymuth/ogg"
)

// ErrMissingHeaders is returned when the Ogg stream ends before all
// three Vorbis setup packets (identification, comment, setup) arrive.
var ErrMissingHeaders = errors.New("vorbis: ogg stream ended before setup packets were complete")

// source adapts a gorbis.Decoder fed by an Ogg packet stream to
// audio.Source, decoding one Vorbis audio packet at a time and
// buffering its PCM until ReadSamples drains it.
type source struct {
	ogg *ogg.Decoder
	dec *gorbis.Decoder

	sampleRate int
	channels   int

	pending [][]float32 // per-channel leftover samples from the last decoded packet
	pos     int         // frame offset already consumed from pending
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func framesOf(pcm [][]float32) []float32 {
	if len(pcm) == 0 {
		return nil
	}
	return pcm[0]
}

// fill decodes audio packets until pending has unread frames or the
// stream is exhausted.
func (s *source) fill() error {
	for s.pos >= len(framesOf(s.pending)) {
		if s.eof {
			return nil
		}
		packet, _, err := s.ogg.Decode()
		if err != nil {
			s.eof = true
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		pcm, err := s.dec.DecodePacket(packet)
		if err != nil {
			return err
		}
		if pcm == nil {
			// priming packet: primes overlap-add state, no audio yet
			continue
		}
		s.pending = pcm
		s.pos = 0
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 || s.channels == 0 {
		return 0, nil
	}

	framesWanted := len(dst) / s.channels
	framesWritten := 0

	for framesWritten < framesWanted {
		if err := s.fill(); err != nil {
			return framesWritten * s.channels, err
		}
		available := len(framesOf(s.pending)) - s.pos
		if available <= 0 {
			break
		}
		n := framesWanted - framesWritten
		if n > available {
			n = available
		}
		for i := 0; i < n; i++ {
			for ch := 0; ch < s.channels; ch++ {
				dst[(framesWritten+i)*s.channels+ch] = s.pending[ch][s.pos+i]
			}
		}
		s.pos += n
		framesWritten += n
	}

	samples := framesWritten * s.channels
	if s.eof && s.pos >= len(framesOf(s.pending)) {
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder decodes Ogg Vorbis streams by demuxing Ogg pages with
// github.com/jfreymuth/ogg and handing the resulting packets to the
// core Vorbis decoder in the gorbis package.
type Decoder struct{}

// Decode reads the three Vorbis setup packets from the start of the
// Ogg stream and returns an audio.Source that lazily decodes the rest.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	od := ogg.NewDecoder(r)

	var headerPackets [][]byte
	for len(headerPackets) < 3 {
		packet, _, err := od.Decode()
		if err != nil {
			return nil, ErrMissingHeaders
		}
		headerPackets = append(headerPackets, packet)
	}

	setup, err := gorbis.NewSetup(headerPackets[0], headerPackets[1], headerPackets[2])
	if err != nil {
		return nil, err
	}

	dec := gorbis.NewDecoder(setup, gorbis.DecodeOptions{SampleFormat: gorbis.FormatFloat32})

	return &source{
		ogg:        od,
		dec:        dec,
		sampleRate: int(setup.Ident.AudioSampleRate),
		channels:   int(setup.Ident.AudioChannels),
	}, nil
}
