package nodes

import (
	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

type gateState struct {
	open bool
}

// hysteresisGateKind is a Schmitt trigger with independent thresholds: the
// gate opens only once the input exceeds high and closes only once it falls
// below low. Values strictly between the thresholds never change its state.
func hysteresisGateKind() *graph.Kind {
	return &graph.Kind{
		Name:  KindHysteresisGate,
		Label: "Hysteresis Gate",
		Inputs: []graph.Port{
			{ID: graph.PortValue, Label: "Value", Type: graph.TypeNumber},
			{ID: "low", Label: "Low Threshold", Type: graph.TypeNumber, Default: 0.33},
			{ID: "high", Label: "High Threshold", Type: graph.TypeNumber, Default: 0.45},
		},
		Outputs: []graph.Port{
			{ID: "gate", Label: "Gate", Type: graph.TypeNumber},
		},
		Compute: func(in graph.Inputs, _ *frame.Frame, h *graph.Handle) (graph.Outputs, error) {
			v := graph.ToNumber(in[graph.PortValue])
			low := graph.ToNumber(in["low"])
			high := graph.ToNumber(in["high"])

			state, _ := h.State().(*gateState)
			if state == nil {
				state = &gateState{}
				h.SetState(state)
			}

			switch {
			case v > high:
				state.open = true
			case v < low:
				state.open = false
			}

			out := 0.0
			if state.open {
				out = 1.0
			}
			return graph.Outputs{"gate": out}, nil
		},
	}
}
