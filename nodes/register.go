package nodes

import "github.com/cwbudde/algo-reactive/graph"

// Kind names, persisted by string reference in serialized networks.
const (
	KindFrequencyBand     = "frequencyBand"
	KindBandInfo          = "bandInfo"
	KindEnvelopeFollower  = "envelopeFollower"
	KindAdaptiveNormalize = "adaptiveNormalize"
	KindHysteresisGate    = "hysteresisGate"
	KindHarmonicPresence  = "harmonicPresence"
	KindNormalize         = "normalize"
	KindSine              = "sine"
	KindMultiply          = "multiply"
	KindAdd               = "add"
)

// Register adds every built-in DSP kind to the registry.
func Register(reg *graph.Registry) error {
	for _, kind := range []*graph.Kind{
		frequencyBandKind(),
		bandInfoKind(),
		envelopeFollowerKind(),
		adaptiveNormalizeKind(),
		hysteresisGateKind(),
		harmonicPresenceKind(),
		normalizeKind(),
		sineKind(),
		multiplyKind(),
		addKind(),
	} {
		if err := reg.Register(kind); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding the sentinels and every built-in
// DSP kind.
func NewRegistry() *graph.Registry {
	reg := graph.NewRegistry()
	if err := Register(reg); err != nil {
		panic(err)
	}
	return reg
}
