package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

// beatChain builds band -> info -> envelope -> adaptive normalize -> gate
// through the edit-time connection validator.
func beatChain(t *testing.T, reg *graph.Registry) *graph.Network {
	t.Helper()

	net := &graph.Network{
		Name:    "pulse",
		Enabled: true,
		Nodes: []*graph.Node{
			{ID: "in", Kind: graph.KindInput},
			{ID: "band", Kind: KindFrequencyBand, InputValues: map[string]any{
				"startFrequency": 80.0,
				"endFrequency":   150.0,
			}},
			{ID: "info", Kind: KindBandInfo},
			{ID: "env", Kind: KindEnvelopeFollower, InputValues: map[string]any{
				"attackMs":  6.0,
				"releaseMs": 120.0,
			}},
			{ID: "norm", Kind: KindAdaptiveNormalize, InputValues: map[string]any{
				"windowMs":    4000.0,
				"qLow":        0.5,
				"qHigh":       0.98,
				"freezeBelow": 140.0,
			}},
			{ID: "gate", Kind: KindHysteresisGate, InputValues: map[string]any{
				"low":  0.33,
				"high": 0.45,
			}},
			{ID: "out", Kind: graph.KindOutput, ValueType: graph.TypeNumber},
		},
	}

	edges := []*graph.Edge{
		{Source: "in", SourceHandle: frame.FieldFrequencyAnalysis, Target: "band", TargetHandle: frame.FieldFrequencyAnalysis},
		{Source: "band", SourceHandle: "band", Target: "info", TargetHandle: "band"},
		{Source: "info", SourceHandle: "average", Target: "env", TargetHandle: graph.PortValue},
		{Source: "env", SourceHandle: "envelope", Target: "norm", TargetHandle: graph.PortValue},
		{Source: "norm", SourceHandle: graph.PortValue, Target: "gate", TargetHandle: graph.PortValue},
		{Source: "gate", SourceHandle: "gate", Target: "out", TargetHandle: graph.PortValue},
	}
	for _, edge := range edges {
		require.NoError(t, net.Connect(reg, edge))
	}
	require.NoError(t, net.Validate(reg))
	return net
}

// Driving the full beat-detection chain with silent spectra for far longer
// than the release constant must leave the gate closed on every frame.
func TestBeatChainSilenceStaysClosed(t *testing.T) {
	reg := NewRegistry()
	eval := graph.NewEvaluator(reg)
	net := beatChain(t, reg)

	silent := make([]byte, 1024)
	for i := 0; i < 180; i++ {
		f := &frame.Frame{
			FrequencyData: silent,
			SampleRate:    44100,
			FFTSize:       2048,
			Time:          float64(i) / 60,
		}
		value, err := eval.Evaluate(net, f)
		require.NoError(t, err)
		assert.Equal(t, 0.0, value, "frame %d", i)
	}
}
