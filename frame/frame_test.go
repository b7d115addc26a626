package frame

import "testing"

// TestFrequencyPerBin verifies bin width for common analyzer configurations.
func TestFrequencyPerBin(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		fftSize    int
		want       float64
	}{
		{"44100/2048", 44100, 2048, 44100.0 / 2048},
		{"48000/1024", 48000, 1024, 48000.0 / 1024},
		{"zero fft size", 48000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Frame{SampleRate: tt.sampleRate, FFTSize: tt.fftSize}
			if got := f.FrequencyPerBin(); got != tt.want {
				t.Errorf("FrequencyPerBin() = %f, want %f", got, tt.want)
			}
		})
	}
}

// TestField verifies reserved port identifiers resolve to frame fields.
func TestField(t *testing.T) {
	f := &Frame{
		FrequencyData:  []byte{1, 2, 3},
		TimeDomainData: []byte{4, 5, 6},
		SampleRate:     44100,
		FFTSize:        2048,
		Time:           1.5,
	}

	if v, ok := f.Field(FieldFrequencyAnalysis); !ok || v != f {
		t.Errorf("Field(%q) = %v, %v, want frame itself", FieldFrequencyAnalysis, v, ok)
	}
	if v, ok := f.Field(FieldSampleRate); !ok || v != 44100.0 {
		t.Errorf("Field(%q) = %v, %v, want 44100", FieldSampleRate, v, ok)
	}
	if v, ok := f.Field(FieldTime); !ok || v != 1.5 {
		t.Errorf("Field(%q) = %v, %v, want 1.5", FieldTime, v, ok)
	}
	if _, ok := f.Field("unknownField"); ok {
		t.Error("Field(unknownField) resolved, want miss")
	}
}

// TestClone verifies clones share no backing storage.
func TestClone(t *testing.T) {
	f := &Frame{
		FrequencyData:  []byte{10, 20},
		TimeDomainData: []byte{30, 40},
		SampleRate:     48000,
		FFTSize:        512,
	}

	c := f.Clone()
	c.FrequencyData[0] = 99
	c.TimeDomainData[1] = 99

	if f.FrequencyData[0] != 10 || f.TimeDomainData[1] != 40 {
		t.Error("Clone() shares backing arrays with original")
	}
}
