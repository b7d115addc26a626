package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

func stepEnvelope(t *testing.T, kind *graph.Kind, h *graph.Handle, input, attackMs, releaseMs, time float64) float64 {
	t.Helper()

	out, err := kind.Compute(graph.Inputs{
		graph.PortValue: input,
		"attackMs":      attackMs,
		"releaseMs":     releaseMs,
	}, &frame.Frame{Time: time}, h)
	require.NoError(t, err)
	return out["envelope"].(float64)
}

func TestEnvelopeFollowerFirstFrameSnaps(t *testing.T) {
	kind := envelopeFollowerKind()
	h := &graph.Handle{}

	env := stepEnvelope(t, kind, h, 100, 6, 120, 0)
	assert.Equal(t, 100.0, env, "first frame adopts the input directly")
}

func TestEnvelopeFollowerAttackConvergence(t *testing.T) {
	kind := envelopeFollowerKind()
	h := &graph.Handle{}

	prev := stepEnvelope(t, kind, h, 0, 6, 120, 0)
	require.Equal(t, 0.0, prev)

	// Constant target of 100 at 10 ms steps with a 6 ms attack half-life.
	var env float64
	for i := 1; i <= 20; i++ {
		env = stepEnvelope(t, kind, h, 100, 6, 120, float64(i)*0.010)
		assert.GreaterOrEqual(t, env, prev, "attack must be monotone")
		assert.LessOrEqual(t, env, 100.0, "envelope never overshoots the target")
		prev = env
	}
	assert.InDelta(t, 100.0, env, 0.5, "converged after many attack half-lives")
}

func TestEnvelopeFollowerReleaseDecay(t *testing.T) {
	kind := envelopeFollowerKind()
	h := &graph.Handle{}

	stepEnvelope(t, kind, h, 100, 6, 120, 0)

	prev := 100.0
	var env float64
	for i := 1; i <= 200; i++ {
		env = stepEnvelope(t, kind, h, 0, 6, 120, float64(i)*0.010)
		assert.LessOrEqual(t, env, prev, "release must be monotone")
		assert.GreaterOrEqual(t, env, 0.0, "envelope never undershoots the target")
		prev = env
	}
	// 2 s is well past a 120 ms release half-life.
	assert.Less(t, env, 0.01)
}

func TestEnvelopeFollowerFrameClock(t *testing.T) {
	kind := envelopeFollowerKind()
	h := &graph.Handle{}

	stepEnvelope(t, kind, h, 0, 6, 120, 1.0)

	// A repeated frame time means zero elapsed time and no movement.
	env := stepEnvelope(t, kind, h, 100, 6, 120, 1.0)
	assert.Equal(t, 0.0, env)
}

func TestSmoothingCoeff(t *testing.T) {
	// One half-life covers exactly half the remaining distance.
	assert.InDelta(t, 0.5, smoothingCoeff(120, 120), 1e-12)
	// A non-positive time constant snaps immediately.
	assert.Equal(t, 1.0, smoothingCoeff(10, 0))
	assert.Equal(t, 1.0, smoothingCoeff(10, -5))
}
