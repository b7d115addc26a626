package nodes

import (
	"math"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

type harmonicState struct {
	smoothed    float64
	lastTime    float64
	initialized bool
}

// harmonicPresenceKind scores periodic/pitched content inside a frequency
// band by testing spectral energy at integer multiples of candidate
// fundamentals, tolerant to pitch deviation of toleranceCents. The raw score
// is gated to zero below minSNR (mean harmonic energy over mean spectrum
// energy) and smoothed over smoothMs.
func harmonicPresenceKind() *graph.Kind {
	return &graph.Kind{
		Name:  KindHarmonicPresence,
		Label: "Harmonic Presence",
		Inputs: []graph.Port{
			{ID: frame.FieldFrequencyAnalysis, Label: "Frequency Analysis", Type: graph.TypeFrequencyAnalysis},
			{ID: "startFrequency", Label: "Start Frequency", Type: graph.TypeNumber, Default: 80.0},
			{ID: "endFrequency", Label: "End Frequency", Type: graph.TypeNumber, Default: 1000.0},
			{ID: "maxHarmonics", Label: "Max Harmonics", Type: graph.TypeNumber, Default: 5.0},
			{ID: "toleranceCents", Label: "Tolerance (cents)", Type: graph.TypeNumber, Default: 35.0},
			{ID: "smoothMs", Label: "Smoothing (ms)", Type: graph.TypeNumber, Default: 150.0},
			{ID: "minSNR", Label: "Min SNR", Type: graph.TypeNumber, Default: 1.5},
		},
		Outputs: []graph.Port{
			{ID: "presence", Label: "Presence", Type: graph.TypeNumber},
		},
		Compute: func(in graph.Inputs, f *frame.Frame, h *graph.Handle) (graph.Outputs, error) {
			state, _ := h.State().(*harmonicState)
			if state == nil {
				state = &harmonicState{}
				h.SetState(state)
			}

			fa, _ := in[frame.FieldFrequencyAnalysis].(*frame.Frame)
			target := harmonicScore(fa,
				graph.ToNumber(in["startFrequency"]),
				graph.ToNumber(in["endFrequency"]),
				int(graph.ToNumber(in["maxHarmonics"])),
				graph.ToNumber(in["toleranceCents"]),
				graph.ToNumber(in["minSNR"]),
			)

			smoothMs := graph.ToNumber(in["smoothMs"])
			if !state.initialized {
				state.smoothed = target
				state.lastTime = f.Time
				state.initialized = true
			} else {
				elapsedMs := (f.Time - state.lastTime) * 1000
				state.lastTime = f.Time
				if elapsedMs > 0 {
					state.smoothed += (target - state.smoothed) * smoothingCoeff(elapsedMs, smoothMs)
				}
			}

			return graph.Outputs{"presence": state.smoothed}, nil
		},
	}
}

// harmonicScore returns the unsmoothed presence in [0,1] for one frame.
func harmonicScore(fa *frame.Frame, startFreq, endFreq float64, maxHarmonics int, toleranceCents, minSNR float64) float64 {
	if fa == nil || fa.BinCount() == 0 {
		return 0
	}

	fpb := fa.FrequencyPerBin()
	if fpb <= 0 || startFreq > endFreq || maxHarmonics < 1 {
		return 0
	}

	bins := fa.FrequencyData
	nyquist := fa.SampleRate / 2

	noise := 0.0
	for _, v := range bins {
		noise += float64(v)
	}
	noise /= float64(len(bins))

	tolerance := math.Pow(2, toleranceCents/1200)
	best := 0.0

	for b := 1; b < len(bins); b++ {
		fundamental := float64(b) * fpb
		if fundamental < startFreq {
			continue
		}
		if fundamental > endFreq {
			break
		}

		sum := 0.0
		count := 0
		for k := 1; k <= maxHarmonics; k++ {
			harmonic := fundamental * float64(k)
			if harmonic > nyquist {
				break
			}
			sum += peakNear(bins, fpb, harmonic, tolerance)
			count++
		}
		if count == 0 {
			continue
		}
		if score := sum / float64(count); score > best {
			best = score
		}
	}

	// The +1 keeps the ratio finite for silent spectra on the byte scale.
	snr := best / (noise + 1)
	if snr < minSNR {
		return 0
	}

	presence := best / 255
	if presence > 1 {
		presence = 1
	}
	return presence
}

// peakNear returns the largest bin value whose center lies within the
// tolerance factor around freq.
func peakNear(bins []byte, fpb, freq, tolerance float64) float64 {
	lo := int(math.Floor(freq / tolerance / fpb))
	hi := int(math.Ceil(freq * tolerance / fpb))
	if lo < 0 {
		lo = 0
	}
	if hi > len(bins)-1 {
		hi = len(bins) - 1
	}

	peak := 0.0
	for i := lo; i <= hi; i++ {
		if v := float64(bins[i]); v > peak {
			peak = v
		}
	}
	return peak
}
