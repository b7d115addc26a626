package nodes

import (
	"math"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

type envelopeState struct {
	envelope    float64
	lastTime    float64
	initialized bool
}

// envelopeFollowerKind is a one-pole attack/release smoother. The envelope
// rises toward inputs above it using the attack time constant and decays
// using the release constant. Elapsed time comes from the frame clock, so
// the response is independent of frame rate and identical between live and
// offline runs.
func envelopeFollowerKind() *graph.Kind {
	return &graph.Kind{
		Name:  KindEnvelopeFollower,
		Label: "Envelope Follower",
		Inputs: []graph.Port{
			{ID: graph.PortValue, Label: "Value", Type: graph.TypeNumber},
			{ID: "attackMs", Label: "Attack (ms)", Type: graph.TypeNumber, Default: 20.0},
			{ID: "releaseMs", Label: "Release (ms)", Type: graph.TypeNumber, Default: 150.0},
		},
		Outputs: []graph.Port{
			{ID: "envelope", Label: "Envelope", Type: graph.TypeNumber},
		},
		Compute: func(in graph.Inputs, f *frame.Frame, h *graph.Handle) (graph.Outputs, error) {
			input := graph.ToNumber(in[graph.PortValue])
			attackMs := graph.ToNumber(in["attackMs"])
			releaseMs := graph.ToNumber(in["releaseMs"])

			state, _ := h.State().(*envelopeState)
			if state == nil {
				state = &envelopeState{}
				h.SetState(state)
			}

			if !state.initialized {
				state.envelope = input
				state.lastTime = f.Time
				state.initialized = true
				return graph.Outputs{"envelope": state.envelope}, nil
			}

			elapsedMs := (f.Time - state.lastTime) * 1000
			state.lastTime = f.Time

			if elapsedMs > 0 {
				constant := releaseMs
				if input > state.envelope {
					constant = attackMs
				}
				state.envelope += (input - state.envelope) * smoothingCoeff(elapsedMs, constant)
			}

			return graph.Outputs{"envelope": state.envelope}, nil
		},
	}
}

// smoothingCoeff returns the one-pole step coefficient for a half-life style
// time constant: after timeConstantMs the envelope has covered half the
// remaining distance.
func smoothingCoeff(elapsedMs, timeConstantMs float64) float64 {
	if timeConstantMs <= 0 {
		return 1
	}
	return 1 - math.Exp(-math.Ln2*elapsedMs/timeConstantMs)
}
