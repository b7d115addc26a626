package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

// harmonicSpectrum places strong peaks at the fundamental and its first
// harmonics over a quiet noise floor. Bin width is 10 Hz (see spectrumFrame).
func harmonicSpectrum(fundamentalBin, harmonics int, peak, floor byte) []byte {
	bins := uniformSpectrum(100, floor)
	for k := 1; k <= harmonics; k++ {
		if idx := fundamentalBin * k; idx < len(bins) {
			bins[idx] = peak
		}
	}
	return bins
}

func TestHarmonicScorePitchedContent(t *testing.T) {
	// Fundamental at 100 Hz with five harmonics well above the floor.
	f := spectrumFrame(harmonicSpectrum(10, 5, 200, 5), 0)

	score := harmonicScore(f, 80, 200, 5, 35, 1.5)
	assert.Greater(t, score, 0.7)
	assert.LessOrEqual(t, score, 1.0)
}

func TestHarmonicScoreNoiseGatesToZero(t *testing.T) {
	// A flat spectrum scores an SNR near 1 and must gate to silence.
	f := spectrumFrame(uniformSpectrum(100, 30), 0)

	assert.Equal(t, 0.0, harmonicScore(f, 80, 200, 5, 35, 1.5))
}

func TestHarmonicScoreDegenerateInputs(t *testing.T) {
	f := spectrumFrame(harmonicSpectrum(10, 5, 200, 5), 0)

	assert.Equal(t, 0.0, harmonicScore(nil, 80, 200, 5, 35, 1.5), "missing analysis")
	assert.Equal(t, 0.0, harmonicScore(&frame.Frame{}, 80, 200, 5, 35, 1.5), "empty spectrum")
	assert.Equal(t, 0.0, harmonicScore(f, 200, 80, 5, 35, 1.5), "inverted range")
	assert.Equal(t, 0.0, harmonicScore(f, 80, 200, 0, 35, 1.5), "no harmonics requested")
}

func TestPeakNearTolerance(t *testing.T) {
	bins := uniformSpectrum(100, 0)
	bins[10] = 200

	// 35 cents of detune still finds the 100 Hz peak.
	assert.Equal(t, 200.0, peakNear(bins, 10, 101, 1.0204))
	// A half-octave away does not.
	assert.Equal(t, 0.0, peakNear(bins, 10, 150, 1.0204))
}

func TestHarmonicPresenceSmoothing(t *testing.T) {
	kind := harmonicPresenceKind()
	h := &graph.Handle{}

	pitched := spectrumFrame(harmonicSpectrum(10, 5, 200, 5), 0)
	silent := spectrumFrame(uniformSpectrum(100, 0), 0.1)

	compute := func(f *frame.Frame) float64 {
		out, err := kind.Compute(graph.Inputs{
			frame.FieldFrequencyAnalysis: f,
			"startFrequency":             80.0,
			"endFrequency":               200.0,
			"maxHarmonics":               5.0,
			"toleranceCents":             35.0,
			"smoothMs":                   150.0,
			"minSNR":                     1.5,
		}, f, h)
		require.NoError(t, err)
		return out["presence"].(float64)
	}

	first := compute(pitched)
	assert.Greater(t, first, 0.7, "first frame snaps to the raw score")

	// One 100 ms step toward silence covers less than the full distance.
	second := compute(silent)
	assert.Less(t, second, first)
	assert.Greater(t, second, 0.0)
}
