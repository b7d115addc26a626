// Package wavio decodes WAV files into mono float64 PCM for offline analysis.
package wavio

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// ReadMono decodes a WAV file, mixes all channels down to mono, and rescales
// samples to [-1, 1]. It returns the samples and the file's sample rate.
func ReadMono(path string) ([]float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode wav: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, 0, fmt.Errorf("missing format in WAV file: %s", path)
	}

	bitDepth := int(decoder.SampleBitDepth())
	if bitDepth == 0 {
		bitDepth = buf.SourceBitDepth
	}
	if bitDepth == 0 {
		return nil, 0, fmt.Errorf("unknown bit depth for WAV file: %s", path)
	}

	scale := float64(int64(1) << (bitDepth - 1))
	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels

	mono := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c]) / scale
		}
		mono[i] = sum / float64(channels)
	}

	return mono, float64(buf.Format.SampleRate), nil
}
