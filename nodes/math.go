package nodes

import (
	"math"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

// sineKind is a low-frequency oscillator: offset + amplitude * sin(2*pi*f*t).
// Its time port falls back to the frame clock when unconnected, so a bare
// sine node oscillates with playback.
func sineKind() *graph.Kind {
	return &graph.Kind{
		Name:  KindSine,
		Label: "Sine",
		Inputs: []graph.Port{
			{ID: "frequency", Label: "Frequency (Hz)", Type: graph.TypeNumber, Default: 1.0},
			{ID: "amplitude", Label: "Amplitude", Type: graph.TypeNumber, Default: 1.0},
			{ID: "offset", Label: "Offset", Type: graph.TypeNumber, Default: 0.0},
			{ID: frame.FieldTime, Label: "Time", Type: graph.TypeNumber},
		},
		Outputs: []graph.Port{
			{ID: graph.PortValue, Label: "Value", Type: graph.TypeNumber},
		},
		Compute: func(in graph.Inputs, _ *frame.Frame, _ *graph.Handle) (graph.Outputs, error) {
			freq := graph.ToNumber(in["frequency"])
			amp := graph.ToNumber(in["amplitude"])
			offset := graph.ToNumber(in["offset"])
			t := graph.ToNumber(in[frame.FieldTime])

			return graph.Outputs{graph.PortValue: offset + amp*math.Sin(2*math.Pi*freq*t)}, nil
		},
	}
}

// multiplyKind multiplies two numeric signals.
func multiplyKind() *graph.Kind {
	return &graph.Kind{
		Name:  KindMultiply,
		Label: "Multiply",
		Inputs: []graph.Port{
			{ID: "a", Label: "A", Type: graph.TypeNumber, Default: 1.0},
			{ID: "b", Label: "B", Type: graph.TypeNumber, Default: 1.0},
		},
		Outputs: []graph.Port{
			{ID: graph.PortValue, Label: "Value", Type: graph.TypeNumber},
		},
		Compute: func(in graph.Inputs, _ *frame.Frame, _ *graph.Handle) (graph.Outputs, error) {
			return graph.Outputs{graph.PortValue: graph.ToNumber(in["a"]) * graph.ToNumber(in["b"])}, nil
		},
	}
}

// addKind sums two numeric signals.
func addKind() *graph.Kind {
	return &graph.Kind{
		Name:  KindAdd,
		Label: "Add",
		Inputs: []graph.Port{
			{ID: "a", Label: "A", Type: graph.TypeNumber, Default: 0.0},
			{ID: "b", Label: "B", Type: graph.TypeNumber, Default: 0.0},
		},
		Outputs: []graph.Port{
			{ID: graph.PortValue, Label: "Value", Type: graph.TypeNumber},
		},
		Compute: func(in graph.Inputs, _ *frame.Frame, _ *graph.Handle) (graph.Outputs, error) {
			return graph.Outputs{graph.PortValue: graph.ToNumber(in["a"]) + graph.ToNumber(in["b"])}, nil
		},
	}
}
