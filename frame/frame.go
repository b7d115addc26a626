// Package frame defines the spectral frame exchanged between audio analyzers
// and the node-graph evaluator.
//
// A frame is one sampled instant of spectral and time-domain audio data. The
// byte scaling matches conventional hardware analyzer output: frequency bins
// hold decibel magnitudes rescaled to [0,255], time-domain samples hold the
// waveform rescaled from [-1,1] to [0,255].
package frame

// Reserved port identifiers resolved from frame fields when a node input is
// left unconnected and carries no stored default. The evaluator and the input
// sentinel both key on these names.
const (
	FieldFrequencyAnalysis = "frequencyAnalysis"
	FieldAudioSignal       = "audioSignal"
	FieldSampleRate        = "sampleRate"
	FieldFFTSize           = "fftSize"
	FieldTime              = "time"
)

// Frame holds one analyzer snapshot driving a single evaluation pass.
type Frame struct {
	// FrequencyData holds fftSize/2 byte-scaled magnitude bins.
	FrequencyData []byte
	// TimeDomainData holds fftSize byte-scaled waveform samples.
	TimeDomainData []byte
	// SampleRate is the audio sample rate in Hz.
	SampleRate float64
	// FFTSize is the analyzer FFT length that produced FrequencyData.
	FFTSize int
	// Time is the playback position of this frame in seconds.
	Time float64
}

// BinCount returns the number of frequency bins (fftSize/2).
func (f *Frame) BinCount() int {
	return len(f.FrequencyData)
}

// FrequencyPerBin returns the bin width in Hz: (sampleRate/2) / (fftSize/2).
func (f *Frame) FrequencyPerBin() float64 {
	if f.FFTSize == 0 {
		return 0
	}
	return (f.SampleRate / 2) / (float64(f.FFTSize) / 2)
}

// Field returns the frame field bound to a reserved port identifier, or
// (nil, false) for unreserved names.
func (f *Frame) Field(id string) (any, bool) {
	switch id {
	case FieldFrequencyAnalysis:
		return f, true
	case FieldAudioSignal:
		return f.TimeDomainData, true
	case FieldSampleRate:
		return f.SampleRate, true
	case FieldFFTSize:
		return float64(f.FFTSize), true
	case FieldTime:
		return f.Time, true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := &Frame{
		SampleRate: f.SampleRate,
		FFTSize:    f.FFTSize,
		Time:       f.Time,
	}
	if f.FrequencyData != nil {
		out.FrequencyData = append([]byte(nil), f.FrequencyData...)
	}
	if f.TimeDomainData != nil {
		out.TimeDomainData = append([]byte(nil), f.TimeDomainData...)
	}
	return out
}
