// SPDX-License-Identifier: EPL-2.0

// Command vorbisinfo prints the stream parameters of an Ogg Vorbis file
// and, when given an output path, decodes it to a mono 16-bit WAV.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/gorbis/formats/vorbis"
	"github.com/ik5/gorbis/formats/wav"
	"github.com/ik5/gorbis/utils"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: vorbisinfo <input.ogg> [output.wav]")
		os.Exit(1)
	}
	inPath := os.Args[1]

	inFile, err := os.Open(inPath)
	if err != nil {
		panic(err)
	}
	defer inFile.Close()

	dec := vorbis.Decoder{}
	src, err := dec.Decode(inFile)
	if err != nil {
		panic(err)
	}
	defer src.Close()

	fmt.Printf("Sample rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Channels: %d\n", src.Channels())

	if len(os.Args) < 3 {
		return
	}
	outPath := os.Args[2]

	// WriteWAV16 is mono-only, so multi-channel streams are downmixed by
	// plain averaging as they're read; resampling and general mixing are
	// out of scope, this CLI just needs something playable.
	channels := src.Channels()
	var pcm16 []int16
	buf := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(buf)
		frames := n / channels
		for f := 0; f < frames; f++ {
			var sum float32
			for c := 0; c < channels; c++ {
				sum += buf[f*channels+c]
			}
			pcm16 = append(pcm16, utils.Float32ToInt16(sum/float32(channels)))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		panic(err)
	}
	defer outFile.Close()

	if err := wav.WriteWAV16(outFile, src.SampleRate(), pcm16); err != nil {
		panic(err)
	}
	fmt.Println("Wrote:", outPath)
}
