package nodes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

// spectrumFrame builds a frame with the given magnitude bins. The sample rate
// and FFT size are chosen so the bin width is exactly 10 Hz.
func spectrumFrame(bins []byte, time float64) *frame.Frame {
	return &frame.Frame{
		FrequencyData: bins,
		SampleRate:    2000,
		FFTSize:       2 * len(bins),
		Time:          time,
	}
}

// uniformSpectrum returns count bins all holding v.
func uniformSpectrum(count int, v byte) []byte {
	bins := make([]byte, count)
	for i := range bins {
		bins[i] = v
	}
	return bins
}

// singleKindNetwork wires input -> node -> output around one node under test.
func singleKindNetwork(kind string, inputValues map[string]any) *graph.Network {
	return &graph.Network{
		Name:    "p",
		Enabled: true,
		Nodes: []*graph.Node{
			{ID: "in", Kind: graph.KindInput},
			{ID: "n", Kind: kind, InputValues: inputValues},
			{ID: "out", Kind: graph.KindOutput, ValueType: graph.TypeNumber},
		},
		Edges: []*graph.Edge{
			{Source: "n", Target: "out", TargetHandle: graph.PortValue},
		},
	}
}

func evalNumber(t *testing.T, eval *graph.Evaluator, net *graph.Network, f *frame.Frame) float64 {
	t.Helper()

	value, err := eval.Evaluate(net, f)
	require.NoError(t, err)
	n, ok := value.(float64)
	require.True(t, ok, "expected numeric output, got %T", value)
	return n
}
