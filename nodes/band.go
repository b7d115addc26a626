package nodes

import (
	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

// Band is a contiguous slice of frequency bins with enough context to map
// bin indices back to Hz downstream.
type Band struct {
	// Bins are the byte-scaled magnitude bins inside the band.
	Bins []byte
	// StartBin is the index of the band's first bin in the full spectrum.
	StartBin int
	// FrequencyPerBin is the bin width in Hz.
	FrequencyPerBin float64
}

// frequencyBandKind selects the spectrum bins whose center frequency lies in
// [startFrequency, endFrequency]. An inverted range yields an empty band.
func frequencyBandKind() *graph.Kind {
	return &graph.Kind{
		Name:  KindFrequencyBand,
		Label: "Frequency Band",
		Inputs: []graph.Port{
			{ID: frame.FieldFrequencyAnalysis, Label: "Frequency Analysis", Type: graph.TypeFrequencyAnalysis},
			{ID: "startFrequency", Label: "Start Frequency", Type: graph.TypeNumber, Default: 20.0},
			{ID: "endFrequency", Label: "End Frequency", Type: graph.TypeNumber, Default: 150.0},
		},
		Outputs: []graph.Port{
			{ID: "band", Label: "Band", Type: graph.TypeBand},
			{ID: "startBin", Label: "Start Bin", Type: graph.TypeNumber},
			{ID: "frequencyPerBin", Label: "Frequency Per Bin", Type: graph.TypeNumber},
		},
		Compute: func(in graph.Inputs, _ *frame.Frame, _ *graph.Handle) (graph.Outputs, error) {
			fa, _ := in[frame.FieldFrequencyAnalysis].(*frame.Frame)
			if fa == nil || fa.BinCount() == 0 {
				return graph.Outputs{
					"band":            Band{},
					"startBin":        0.0,
					"frequencyPerBin": 0.0,
				}, nil
			}

			fpb := fa.FrequencyPerBin()
			start := graph.ToNumber(in["startFrequency"])
			end := graph.ToNumber(in["endFrequency"])

			band := Band{FrequencyPerBin: fpb}
			if fpb > 0 && start <= end {
				lo, hi := -1, -1
				for i := 0; i < fa.BinCount(); i++ {
					center := float64(i) * fpb
					if center < start || center > end {
						continue
					}
					if lo < 0 {
						lo = i
					}
					hi = i
				}
				if lo >= 0 {
					band.Bins = fa.FrequencyData[lo : hi+1]
					band.StartBin = lo
				}
			}

			return graph.Outputs{
				"band":            band,
				"startBin":        float64(band.StartBin),
				"frequencyPerBin": fpb,
			}, nil
		},
	}
}

// bandInfoKind reduces a band to its average bin value.
func bandInfoKind() *graph.Kind {
	return &graph.Kind{
		Name:  KindBandInfo,
		Label: "Band Info",
		Inputs: []graph.Port{
			{ID: "band", Label: "Band", Type: graph.TypeBand},
		},
		Outputs: []graph.Port{
			{ID: "average", Label: "Average", Type: graph.TypeNumber},
		},
		Compute: func(in graph.Inputs, _ *frame.Frame, _ *graph.Handle) (graph.Outputs, error) {
			band, _ := in["band"].(Band)
			if len(band.Bins) == 0 {
				return graph.Outputs{"average": 0.0}, nil
			}

			sum := 0.0
			for _, v := range band.Bins {
				sum += float64(v)
			}
			return graph.Outputs{"average": sum / float64(len(band.Bins))}, nil
		},
	}
}
