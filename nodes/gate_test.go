package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

func stepGate(t *testing.T, kind *graph.Kind, h *graph.Handle, v float64) float64 {
	t.Helper()

	out, err := kind.Compute(graph.Inputs{
		graph.PortValue: v,
		"low":           0.33,
		"high":          0.45,
	}, &frame.Frame{}, h)
	require.NoError(t, err)
	return out["gate"].(float64)
}

func TestHysteresisGateThresholds(t *testing.T) {
	kind := hysteresisGateKind()
	h := &graph.Handle{}

	steps := []struct {
		input float64
		want  float64
	}{
		{0.0, 0},  // starts closed
		{0.40, 0}, // between thresholds, stays closed
		{0.45, 0}, // must exceed high, not merely reach it
		{0.50, 1}, // opens
		{0.40, 1}, // between thresholds, stays open
		{0.33, 1}, // must fall below low, not merely reach it
		{0.30, 0}, // closes
		{0.40, 0}, // between thresholds, stays closed
	}

	for i, step := range steps {
		got := stepGate(t, kind, h, step.input)
		assert.Equal(t, step.want, got, "step %d input %v", i, step.input)
	}
}

// Values wandering strictly between the thresholds never toggle the gate.
func TestHysteresisGateAntiChatter(t *testing.T) {
	between := []float64{0.34, 0.44, 0.38, 0.41, 0.335, 0.449, 0.40}

	t.Run("stays closed", func(t *testing.T) {
		kind := hysteresisGateKind()
		h := &graph.Handle{}

		for _, v := range between {
			assert.Equal(t, 0.0, stepGate(t, kind, h, v))
		}
	})

	t.Run("stays open", func(t *testing.T) {
		kind := hysteresisGateKind()
		h := &graph.Handle{}
		require.Equal(t, 1.0, stepGate(t, kind, h, 0.9))

		for _, v := range between {
			assert.Equal(t, 1.0, stepGate(t, kind, h, v))
		}
	})
}
