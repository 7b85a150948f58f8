// SPDX-License-Identifier: EPL-2.0

package gorbis

import "github.com/ik5/gorbis/utils"

// DecodePacketAs decodes like DecodePacket but converts the result to
// d.opts.SampleFormat. FormatFloat32 returns exactly what DecodePacket
// would; the int16 formats quantize through utils.Float32ToInt16.
func (d *Decoder) DecodePacketAs(packet []byte) (interface{}, error) {
	pcm, err := d.DecodePacket(packet)
	if err != nil || pcm == nil {
		return nil, err
	}

	switch d.opts.SampleFormat {
	case FormatInt16:
		out := make([][]int16, len(pcm))
		for ch, samples := range pcm {
			row := make([]int16, len(samples))
			for i, s := range samples {
				row[i] = utils.Float32ToInt16(s)
			}
			out[ch] = row
		}
		return out, nil
	case FormatInt16Interleaved:
		if len(pcm) == 0 {
			return []int16{}, nil
		}
		frames := len(pcm[0])
		out := make([]int16, frames*len(pcm))
		for i := 0; i < frames; i++ {
			for ch, samples := range pcm {
				out[i*len(pcm)+ch] = utils.Float32ToInt16(samples[i])
			}
		}
		return out, nil
	default:
		return pcm, nil
	}
}

// DecodedSampleCount previews how many PCM frames a packet will yield
// once decoded, without running the floor/residue/IMDCT pipeline: just
// enough of the packet header to pick the mode and its blocksize.
func (s *Setup) DecodedSampleCount(packet []byte) (int, error) {
	n, err := s.blockSizeOf(packet)
	if err != nil {
		return 0, err
	}
	return n / 2, nil
}
