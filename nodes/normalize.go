package nodes

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

// normalizeKind is a stateless clamped linear remap from
// [inputMin, inputMax] to [outputMin, outputMax].
func normalizeKind() *graph.Kind {
	return &graph.Kind{
		Name:  KindNormalize,
		Label: "Normalize",
		Inputs: []graph.Port{
			{ID: graph.PortValue, Label: "Value", Type: graph.TypeNumber},
			{ID: "inputMin", Label: "Input Min", Type: graph.TypeNumber, Default: 0.0},
			{ID: "inputMax", Label: "Input Max", Type: graph.TypeNumber, Default: 255.0},
			{ID: "outputMin", Label: "Output Min", Type: graph.TypeNumber, Default: 0.0},
			{ID: "outputMax", Label: "Output Max", Type: graph.TypeNumber, Default: 1.0},
		},
		Outputs: []graph.Port{
			{ID: graph.PortValue, Label: "Value", Type: graph.TypeNumber},
		},
		Compute: func(in graph.Inputs, _ *frame.Frame, _ *graph.Handle) (graph.Outputs, error) {
			v := graph.ToNumber(in[graph.PortValue])
			inMin := graph.ToNumber(in["inputMin"])
			inMax := graph.ToNumber(in["inputMax"])
			outMin := graph.ToNumber(in["outputMin"])
			outMax := graph.ToNumber(in["outputMax"])

			if inMax == inMin {
				return graph.Outputs{graph.PortValue: outMin}, nil
			}

			t := (v - inMin) / (inMax - inMin)
			if t < 0 {
				t = 0
			}
			if t > 1 {
				t = 1
			}
			return graph.Outputs{graph.PortValue: outMin + t*(outMax-outMin)}, nil
		},
	}
}

type adaptiveSample struct {
	time  float64
	value float64
}

type adaptiveState struct {
	samples []adaptiveSample
}

// adaptiveNormalizeKind maps the input into [0,1] against the qLow/qHigh
// quantiles of a sliding time window of recent samples. While the signal
// stays under freezeBelow the window is not updated, so near-silence is
// never amplified into noisy full-range output. A window holding a single
// constant value degrades to 0.5.
func adaptiveNormalizeKind() *graph.Kind {
	return &graph.Kind{
		Name:  KindAdaptiveNormalize,
		Label: "Adaptive Normalize",
		Inputs: []graph.Port{
			{ID: graph.PortValue, Label: "Value", Type: graph.TypeNumber},
			{ID: "windowMs", Label: "Window (ms)", Type: graph.TypeNumber, Default: 4000.0},
			{ID: "qLow", Label: "Low Quantile", Type: graph.TypeNumber, Default: 0.05},
			{ID: "qHigh", Label: "High Quantile", Type: graph.TypeNumber, Default: 0.95},
			{ID: "freezeBelow", Label: "Freeze Below", Type: graph.TypeNumber, Default: 0.0},
		},
		Outputs: []graph.Port{
			{ID: graph.PortValue, Label: "Value", Type: graph.TypeNumber},
		},
		Compute: func(in graph.Inputs, f *frame.Frame, h *graph.Handle) (graph.Outputs, error) {
			v := graph.ToNumber(in[graph.PortValue])
			windowMs := graph.ToNumber(in["windowMs"])
			qLow := graph.ToNumber(in["qLow"])
			qHigh := graph.ToNumber(in["qHigh"])
			freezeBelow := graph.ToNumber(in["freezeBelow"])

			state, _ := h.State().(*adaptiveState)
			if state == nil {
				state = &adaptiveState{}
				h.SetState(state)
			}

			if v >= freezeBelow {
				state.samples = append(state.samples, adaptiveSample{time: f.Time, value: v})
			}
			state.prune(f.Time, windowMs)

			if len(state.samples) == 0 {
				// Nothing to normalize against: the signal has stayed
				// under the floor, so report silence instead of an
				// amplified guess.
				return graph.Outputs{graph.PortValue: 0.0}, nil
			}

			low := state.quantile(qLow)
			high := state.quantile(qHigh)
			if high-low < 1e-12 {
				return graph.Outputs{graph.PortValue: 0.5}, nil
			}

			t := (v - low) / (high - low)
			if t < 0 {
				t = 0
			}
			if t > 1 {
				t = 1
			}
			return graph.Outputs{graph.PortValue: t}, nil
		},
	}
}

func (s *adaptiveState) prune(now, windowMs float64) {
	cutoff := now - windowMs/1000
	keep := 0
	for keep < len(s.samples) && s.samples[keep].time < cutoff {
		keep++
	}
	if keep > 0 {
		s.samples = append(s.samples[:0], s.samples[keep:]...)
	}
}

// quantile returns the q-th quantile of the window using linear
// interpolation between adjacent order statistics.
func (s *adaptiveState) quantile(q float64) float64 {
	n := len(s.samples)
	if n == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	sorted := make([]float64, n)
	for i, sample := range s.samples {
		sorted[i] = sample.value
	}
	sort.Float64s(sorted)

	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
