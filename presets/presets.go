// Package presets holds the built-in template graphs users instantiate when
// enabling animation on a parameter. Templates reference the reserved
// INPUT/OUTPUT aliases for the sentinel nodes and are cloned into fresh,
// collision-free networks by graph.Instantiate.
package presets

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-reactive/graph"
	"github.com/cwbudde/algo-reactive/nodes"
)

// Template ids.
const (
	BassPulse      = "bass-pulse"
	BeatGate       = "beat-gate"
	MelodyPresence = "melody-presence"
	LFO            = "lfo"
)

var templates = map[string]graph.Template{
	BassPulse: {
		ID:   BassPulse,
		Name: "Bass Pulse",
		Nodes: []graph.TemplateNode{
			{ID: "band", Kind: nodes.KindFrequencyBand, InputValues: map[string]any{
				"startFrequency": 20.0,
				"endFrequency":   150.0,
			}},
			{ID: "info", Kind: nodes.KindBandInfo},
			{ID: "env", Kind: nodes.KindEnvelopeFollower, InputValues: map[string]any{
				"attackMs":  10.0,
				"releaseMs": 200.0,
			}},
			{ID: "norm", Kind: nodes.KindAdaptiveNormalize, InputValues: map[string]any{
				"windowMs":    3000.0,
				"qLow":        0.1,
				"qHigh":       0.95,
				"freezeBelow": 40.0,
			}},
		},
		Edges: []graph.Edge{
			{Source: graph.InputAlias, SourceHandle: "frequencyAnalysis", Target: "band", TargetHandle: "frequencyAnalysis"},
			{Source: "band", SourceHandle: "band", Target: "info", TargetHandle: "band"},
			{Source: "info", SourceHandle: "average", Target: "env", TargetHandle: graph.PortValue},
			{Source: "env", SourceHandle: "envelope", Target: "norm", TargetHandle: graph.PortValue},
			{Source: "norm", SourceHandle: graph.PortValue, Target: graph.OutputAlias, TargetHandle: graph.PortValue},
		},
	},
	BeatGate: {
		ID:   BeatGate,
		Name: "Beat Gate",
		Nodes: []graph.TemplateNode{
			{ID: "band", Kind: nodes.KindFrequencyBand, InputValues: map[string]any{
				"startFrequency": 40.0,
				"endFrequency":   130.0,
			}},
			{ID: "info", Kind: nodes.KindBandInfo},
			{ID: "env", Kind: nodes.KindEnvelopeFollower, InputValues: map[string]any{
				"attackMs":  6.0,
				"releaseMs": 120.0,
			}},
			{ID: "norm", Kind: nodes.KindAdaptiveNormalize, InputValues: map[string]any{
				"windowMs":    4000.0,
				"qLow":        0.5,
				"qHigh":       0.98,
				"freezeBelow": 140.0,
			}},
			{ID: "gate", Kind: nodes.KindHysteresisGate, InputValues: map[string]any{
				"low":  0.33,
				"high": 0.45,
			}},
		},
		Edges: []graph.Edge{
			{Source: graph.InputAlias, SourceHandle: "frequencyAnalysis", Target: "band", TargetHandle: "frequencyAnalysis"},
			{Source: "band", SourceHandle: "band", Target: "info", TargetHandle: "band"},
			{Source: "info", SourceHandle: "average", Target: "env", TargetHandle: graph.PortValue},
			{Source: "env", SourceHandle: "envelope", Target: "norm", TargetHandle: graph.PortValue},
			{Source: "norm", SourceHandle: graph.PortValue, Target: "gate", TargetHandle: graph.PortValue},
			{Source: "gate", SourceHandle: "gate", Target: graph.OutputAlias, TargetHandle: graph.PortValue},
		},
	},
	MelodyPresence: {
		ID:   MelodyPresence,
		Name: "Melody Presence",
		Nodes: []graph.TemplateNode{
			{ID: "harmonic", Kind: nodes.KindHarmonicPresence, InputValues: map[string]any{
				"startFrequency": 180.0,
				"endFrequency":   1200.0,
				"maxHarmonics":   5.0,
				"toleranceCents": 35.0,
				"smoothMs":       150.0,
				"minSNR":         1.5,
			}},
		},
		Edges: []graph.Edge{
			{Source: graph.InputAlias, SourceHandle: "frequencyAnalysis", Target: "harmonic", TargetHandle: "frequencyAnalysis"},
			{Source: "harmonic", SourceHandle: "presence", Target: graph.OutputAlias, TargetHandle: graph.PortValue},
		},
	},
	LFO: {
		ID:   LFO,
		Name: "LFO",
		Nodes: []graph.TemplateNode{
			{ID: "osc", Kind: nodes.KindSine, InputValues: map[string]any{
				"frequency": 0.5,
				"amplitude": 0.5,
				"offset":    0.5,
			}},
		},
		Edges: []graph.Edge{
			{Source: "osc", SourceHandle: graph.PortValue, Target: graph.OutputAlias, TargetHandle: graph.PortValue},
		},
	},
}

// Lookup returns the template with the given id.
func Lookup(id string) (graph.Template, bool) {
	tpl, ok := templates[id]
	return tpl, ok
}

// IDs returns all built-in template ids, sorted.
func IDs() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Instantiate clones the named template into a fresh network for the given
// parameter.
func Instantiate(reg *graph.Registry, id, parameterID string, valueType graph.PortType) (*graph.Network, error) {
	tpl, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s", id)
	}
	return graph.Instantiate(reg, tpl, parameterID, valueType)
}
