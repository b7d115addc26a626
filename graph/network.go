package graph

import (
	"fmt"

	"github.com/cwbudde/algo-reactive/frame"
)

// Sentinel kind names. Every network contains exactly one node of each.
const (
	KindInput  = "input"
	KindOutput = "output"
)

// PortValue is the output sentinel's single input port id, and the port id
// under which every single-output kind publishes its result.
const PortValue = "value"

// Point is a node's editor canvas position. The engine carries it only so
// persisted graphs round-trip losslessly.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one processing unit instance inside a network.
type Node struct {
	ID          string
	Kind        string
	InputValues map[string]any
	// ValueType is the bound parameter's type. Only meaningful on the
	// output sentinel, where it is persisted so the node can be
	// reconstructed without external context.
	ValueType PortType
	Position  Point
}

// Clone returns a deep copy of the node. Persisted state is not part of the
// node and is never cloned.
func (n *Node) Clone() *Node {
	out := &Node{
		ID:        n.ID,
		Kind:      n.Kind,
		ValueType: n.ValueType,
		Position:  n.Position,
	}
	if n.InputValues != nil {
		out.InputValues = make(map[string]any, len(n.InputValues))
		for k, v := range n.InputValues {
			out.InputValues[k] = v
		}
	}
	return out
}

// Edge connects a source node's output handle to a target node's input
// handle. An empty SourceHandle selects the source kind's first declared
// output.
type Edge struct {
	Source       string `json:"source"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	Target       string `json:"target"`
	TargetHandle string `json:"targetHandle"`
}

// Network is the per-parameter node graph bound to one animatable value.
type Network struct {
	Name      string
	Enabled   bool
	Minimized bool
	Nodes     []*Node
	Edges     []*Edge

	// handles holds per-node persistent DSP state, keyed by node id. It
	// belongs to this network instance alone; duplicated networks start
	// with fresh state.
	handles map[string]*Handle
}

// NewScaffold returns a minimal enabled network holding only the two
// sentinels, as created when animation is first enabled on a parameter.
func NewScaffold(name string, valueType PortType) *Network {
	return &Network{
		Name:    name,
		Enabled: true,
		Nodes: []*Node{
			{ID: name + "-" + InputAlias, Kind: KindInput},
			{ID: name + "-" + OutputAlias, Kind: KindOutput, ValueType: valueType},
		},
	}
}

// NodeByID returns the node with the given id.
func (n *Network) NodeByID(id string) (*Node, bool) {
	for _, node := range n.Nodes {
		if node.ID == id {
			return node, true
		}
	}
	return nil, false
}

// InputNode returns the network's input sentinel.
func (n *Network) InputNode() (*Node, bool) {
	return n.firstOfKind(KindInput)
}

// OutputNode returns the network's output sentinel.
func (n *Network) OutputNode() (*Node, bool) {
	return n.firstOfKind(KindOutput)
}

func (n *Network) firstOfKind(kind string) (*Node, bool) {
	for _, node := range n.Nodes {
		if node.Kind == kind {
			return node, true
		}
	}
	return nil, false
}

// handle returns the node's state handle, creating it on first use.
func (n *Network) handle(id string) *Handle {
	if n.handles == nil {
		n.handles = make(map[string]*Handle)
	}
	h, ok := n.handles[id]
	if !ok {
		h = &Handle{id: id}
		n.handles[id] = h
	}
	return h
}

// ResetState discards all persisted node state.
func (n *Network) ResetState() {
	n.handles = nil
}

// Validate checks the network's structural invariants against a registry:
// exactly one sentinel of each kind, resolvable kind references, and edges
// whose endpoints and port types are valid.
func (n *Network) Validate(reg *Registry) error {
	inputs, outputs := 0, 0
	for _, node := range n.Nodes {
		switch node.Kind {
		case KindInput:
			inputs++
		case KindOutput:
			outputs++
		}
		if _, ok := reg.Lookup(node.Kind); !ok {
			return fmt.Errorf("%w: %q at node %s", ErrUnknownKind, node.Kind, node.ID)
		}
	}
	if inputs != 1 || outputs != 1 {
		return fmt.Errorf("%w: %d inputs, %d outputs", ErrSentinelCount, inputs, outputs)
	}

	for _, edge := range n.Edges {
		if err := n.validateEdge(reg, edge); err != nil {
			return err
		}
	}
	return nil
}

// Connect validates an edge against the registry and appends it. Incompatible
// port types are rejected here, at graph-edit time, and are never observable
// during evaluation.
func (n *Network) Connect(reg *Registry, edge *Edge) error {
	if err := n.validateEdge(reg, edge); err != nil {
		return err
	}
	n.Edges = append(n.Edges, edge)
	return nil
}

func (n *Network) validateEdge(reg *Registry, edge *Edge) error {
	source, ok := n.NodeByID(edge.Source)
	if !ok {
		return fmt.Errorf("%w: source %s", ErrMissingNode, edge.Source)
	}
	target, ok := n.NodeByID(edge.Target)
	if !ok {
		return fmt.Errorf("%w: target %s", ErrMissingNode, edge.Target)
	}

	sourceKind, ok := reg.Lookup(source.Kind)
	if !ok {
		return fmt.Errorf("%w: %q at node %s", ErrUnknownKind, source.Kind, source.ID)
	}
	targetKind, ok := reg.Lookup(target.Kind)
	if !ok {
		return fmt.Errorf("%w: %q at node %s", ErrUnknownKind, target.Kind, target.ID)
	}

	sourcePort, err := resolveSourcePort(sourceKind, edge.SourceHandle)
	if err != nil {
		return err
	}
	targetPort, ok := targetKind.InputPort(edge.TargetHandle)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownPort, target.ID, edge.TargetHandle)
	}

	targetType := targetPort.Type
	if target.Kind == KindOutput && target.ValueType != "" {
		targetType = target.ValueType
	}
	if !CanConnect(sourcePort.Type, targetType) {
		return fmt.Errorf("%w: %s (%s) -> %s (%s)",
			ErrIncompatiblePorts, sourcePort.ID, sourcePort.Type, targetPort.ID, targetType)
	}
	return nil
}

func resolveSourcePort(kind *Kind, handle string) (Port, error) {
	if handle == "" {
		if len(kind.Outputs) == 0 {
			return Port{}, fmt.Errorf("%w: kind %s has no outputs", ErrUnknownPort, kind.Name)
		}
		return kind.Outputs[0], nil
	}
	p, ok := kind.OutputPort(handle)
	if !ok {
		return Port{}, fmt.Errorf("%w: %s.%s", ErrUnknownPort, kind.Name, handle)
	}
	return p, nil
}

// inputKind returns the input sentinel definition. Its outputs are named
// frame fields and its compute simply projects the current frame.
func inputKind() *Kind {
	return &Kind{
		Name:  KindInput,
		Label: "Input",
		Outputs: []Port{
			{ID: frame.FieldFrequencyAnalysis, Label: "Frequency Analysis", Type: TypeFrequencyAnalysis},
			{ID: frame.FieldAudioSignal, Label: "Audio Signal", Type: TypeAudioSignal},
			{ID: frame.FieldSampleRate, Label: "Sample Rate", Type: TypeNumber},
			{ID: frame.FieldFFTSize, Label: "FFT Size", Type: TypeNumber},
			{ID: frame.FieldTime, Label: "Time", Type: TypeNumber},
		},
		Compute: func(_ Inputs, f *frame.Frame, _ *Handle) (Outputs, error) {
			out := Outputs{}
			for _, id := range []string{
				frame.FieldFrequencyAnalysis,
				frame.FieldAudioSignal,
				frame.FieldSampleRate,
				frame.FieldFFTSize,
				frame.FieldTime,
			} {
				if v, ok := f.Field(id); ok {
					out[id] = v
				}
			}
			return out, nil
		},
	}
}

// outputKind returns the output sentinel definition: it forwards its single
// resolved input as the network's final value.
func outputKind() *Kind {
	return &Kind{
		Name:   KindOutput,
		Label:  "Output",
		Inputs: []Port{{ID: PortValue, Label: "Value", Type: TypeAny}},
		Compute: func(in Inputs, _ *frame.Frame, _ *Handle) (Outputs, error) {
			return Outputs{PortValue: in[PortValue]}, nil
		},
	}
}
