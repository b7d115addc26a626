package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

func computeBand(t *testing.T, f *frame.Frame, start, end float64) graph.Outputs {
	t.Helper()

	kind := frequencyBandKind()
	out, err := kind.Compute(graph.Inputs{
		frame.FieldFrequencyAnalysis: f,
		"startFrequency":             start,
		"endFrequency":               end,
	}, f, &graph.Handle{})
	require.NoError(t, err)
	return out
}

func TestFrequencyBandSelectsBins(t *testing.T) {
	bins := make([]byte, 20)
	for i := range bins {
		bins[i] = byte(i)
	}
	f := spectrumFrame(bins, 0)
	require.Equal(t, 50.0, f.FrequencyPerBin())

	out := computeBand(t, f, 100, 250)

	band, ok := out["band"].(Band)
	require.True(t, ok)
	// Bin centers 100, 150, 200 and 250 Hz fall inside the range.
	assert.Equal(t, []byte{2, 3, 4, 5}, band.Bins)
	assert.Equal(t, 2, band.StartBin)
	assert.Equal(t, 50.0, band.FrequencyPerBin)
	assert.Equal(t, 2.0, out["startBin"])
	assert.Equal(t, 50.0, out["frequencyPerBin"])
}

func TestFrequencyBandInvertedRange(t *testing.T) {
	f := spectrumFrame(uniformSpectrum(20, 100), 0)

	out := computeBand(t, f, 250, 100)

	band, ok := out["band"].(Band)
	require.True(t, ok)
	assert.Empty(t, band.Bins)
}

func TestFrequencyBandMissingAnalysis(t *testing.T) {
	kind := frequencyBandKind()
	out, err := kind.Compute(graph.Inputs{
		"startFrequency": 20.0,
		"endFrequency":   150.0,
	}, &frame.Frame{}, &graph.Handle{})
	require.NoError(t, err)

	band, ok := out["band"].(Band)
	require.True(t, ok)
	assert.Empty(t, band.Bins)
	assert.Equal(t, 0.0, out["frequencyPerBin"])
}

// The band shares the frame's bin storage rather than copying it.
func TestFrequencyBandSharesStorage(t *testing.T) {
	f := spectrumFrame(uniformSpectrum(20, 7), 0)

	out := computeBand(t, f, 100, 250)
	band := out["band"].(Band)

	f.FrequencyData[2] = 99
	assert.Equal(t, byte(99), band.Bins[0])
}

func TestBandInfoAverage(t *testing.T) {
	tests := []struct {
		name string
		band Band
		want float64
	}{
		{"uniform", Band{Bins: []byte{10, 10, 10}}, 10},
		{"mixed", Band{Bins: []byte{0, 50, 100, 250}}, 100},
		{"single", Band{Bins: []byte{255}}, 255},
		{"empty", Band{}, 0},
	}

	kind := bandInfoKind()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := kind.Compute(graph.Inputs{"band": tt.band}, &frame.Frame{}, &graph.Handle{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out["average"])
		})
	}
}
