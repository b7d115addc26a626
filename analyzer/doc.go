// Package analyzer produces spectral frames from decoded PCM audio without a
// live analyzer node, for frame-accurate offline export.
//
// The pipeline reproduces conventional analyzer byte output: per output frame
// it slices sampleRate/fps samples from the buffer, zero-pads or truncates to
// the FFT size, applies a Hann window, runs a forward FFT, converts bin
// magnitudes to decibels clamped to [minDecibels, maxDecibels], and rescales
// that range to bytes. Identical inputs always yield byte-identical frames,
// so an offline export agrees exactly with a live preview of the same audio.
package analyzer
