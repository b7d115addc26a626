package graph

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-reactive/frame"
)

// PortType identifies the value type carried by a port.
type PortType string

const (
	TypeNumber            PortType = "number"
	TypeString            PortType = "string"
	TypeBoolean           PortType = "boolean"
	TypeFrequencyAnalysis PortType = "frequencyAnalysis"
	TypeAudioSignal       PortType = "audioSignal"
	TypeBand              PortType = "band"
	TypeAny               PortType = "any"
)

// CanConnect reports whether a source port type may feed a target port type.
// This is enforced by the connection validator at graph-edit time, never
// during evaluation.
func CanConnect(source, target PortType) bool {
	if source == TypeAny || target == TypeAny {
		return true
	}
	if source == target {
		return true
	}
	// Numbers and booleans interchange: gates emit 0/1 and numeric inputs
	// accept truth values.
	if (source == TypeNumber && target == TypeBoolean) ||
		(source == TypeBoolean && target == TypeNumber) {
		return true
	}
	return false
}

// Port describes one input or output of a node kind. Default, when set on an
// input port, is the kind-level fallback used when a node has neither a
// feeding edge nor a stored per-instance value.
type Port struct {
	ID      string
	Label   string
	Type    PortType
	Default any
}

// Inputs holds a node's resolved input values keyed by port id.
type Inputs map[string]any

// Outputs holds a node's computed output values keyed by port id.
type Outputs map[string]any

// Handle carries a node's identity and persisted state into its compute
// function. State is keyed by node id and survives across evaluations of the
// same network instance; duplicating a network yields fresh handles.
type Handle struct {
	id    string
	state any
}

// ID returns the owning node's id.
func (h *Handle) ID() string { return h.id }

// State returns the node's persisted state, or nil before first use.
func (h *Handle) State() any { return h.state }

// SetState replaces the node's persisted state.
func (h *Handle) SetState(state any) { h.state = state }

// ComputeFunc is a node kind's pure compute behavior: a function of the
// resolved inputs, the current frame, and (for stateful kinds) the node's
// own handle.
type ComputeFunc func(in Inputs, f *frame.Frame, h *Handle) (Outputs, error)

// Kind defines a node type: its port signature and compute behavior.
type Kind struct {
	Name    string
	Label   string
	Inputs  []Port
	Outputs []Port
	Compute ComputeFunc
}

// InputPort returns the declared input port with the given id.
func (k *Kind) InputPort(id string) (Port, bool) {
	for _, p := range k.Inputs {
		if p.ID == id {
			return p, true
		}
	}
	return Port{}, false
}

// OutputPort returns the declared output port with the given id.
func (k *Kind) OutputPort(id string) (Port, bool) {
	for _, p := range k.Outputs {
		if p.ID == id {
			return p, true
		}
	}
	return Port{}, false
}

// Registry maps kind names to their static definitions.
type Registry struct {
	kinds map[string]*Kind
}

// NewRegistry returns a registry pre-populated with the input and output
// sentinel kinds.
func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string]*Kind)}
	r.MustRegister(inputKind())
	r.MustRegister(outputKind())
	return r
}

// Register adds a kind definition. Registering a name twice is an error.
func (r *Registry) Register(k *Kind) error {
	if k == nil || k.Name == "" {
		return fmt.Errorf("kind must have a name")
	}
	if _, ok := r.kinds[k.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, k.Name)
	}
	r.kinds[k.Name] = k
	return nil
}

// MustRegister is Register that panics on error, for static initialization.
func (r *Registry) MustRegister(k *Kind) {
	if err := r.Register(k); err != nil {
		panic(err)
	}
}

// Lookup resolves a kind by name.
func (r *Registry) Lookup(name string) (*Kind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// Names returns all registered kind names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
