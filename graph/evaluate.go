package graph

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-reactive/frame"
)

// NodeTrace is one node's resolved inputs and computed outputs from the most
// recent evaluation, published to an injected observer for external
// inspection UIs. The evaluator only ever writes traces, never reads them.
type NodeTrace struct {
	Network string
	NodeID  string
	Kind    string
	Inputs  Inputs
	Outputs Outputs
}

// Observer receives node traces during evaluation.
type Observer func(NodeTrace)

// EvalOption configures an Evaluator.
type EvalOption func(*Evaluator)

// WithObserver installs a trace observer.
func WithObserver(obs Observer) EvalOption {
	return func(e *Evaluator) {
		e.observer = obs
	}
}

// Evaluator computes a network's bound parameter value for one frame.
//
// Evaluation is a memoized single pass from the output sentinel: each node is
// computed at most once per call, and the per-call cache is discarded
// afterward. A single Evaluator may serve many networks, but a given network
// must only ever be evaluated from one goroutine since node DSP state is not
// safe for concurrent mutation.
type Evaluator struct {
	registry *Registry
	observer Observer
}

// NewEvaluator returns an evaluator resolving kinds against reg.
func NewEvaluator(reg *Registry, opts ...EvalOption) *Evaluator {
	e := &Evaluator{registry: reg}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Evaluate computes net's output value for the given frame.
//
// A nil or disabled network, a missing output sentinel, or an unresolvable
// kind reference fails the call; such errors are local to this network and
// frame, and callers must not let them block sibling evaluations.
func (e *Evaluator) Evaluate(net *Network, f *frame.Frame) (any, error) {
	if net == nil {
		return nil, ErrNoNetwork
	}
	if f == nil {
		return nil, ErrNoFrame
	}
	if !net.Enabled {
		return nil, fmt.Errorf("%w: %s", ErrNetworkDisabled, net.Name)
	}

	output, ok := net.OutputNode()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoOutputNode, net.Name)
	}

	pass := &evalPass{
		eval:    e,
		net:     net,
		frame:   f,
		memo:    make(map[string]Outputs),
		onStack: make(map[string]bool),
	}

	outs, err := pass.evalNode(output)
	if err != nil {
		return nil, err
	}
	return outs[PortValue], nil
}

// evalPass is the per-call evaluation context. The memo cache lives exactly
// as long as one Evaluate call and is never shared across networks or frames.
type evalPass struct {
	eval    *Evaluator
	net     *Network
	frame   *frame.Frame
	memo    map[string]Outputs
	onStack map[string]bool
}

func (p *evalPass) evalNode(node *Node) (Outputs, error) {
	if outs, ok := p.memo[node.ID]; ok {
		return outs, nil
	}
	if p.onStack[node.ID] {
		return nil, fmt.Errorf("%w: at node %s", ErrCycle, node.ID)
	}
	p.onStack[node.ID] = true
	defer delete(p.onStack, node.ID)

	kind, ok := p.eval.registry.Lookup(node.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q at node %s", ErrUnknownKind, node.Kind, node.ID)
	}

	in, err := p.resolveInputs(node, kind)
	if err != nil {
		return nil, err
	}

	outs, err := kind.Compute(in, p.frame, p.net.handle(node.ID))
	if err != nil {
		return nil, fmt.Errorf("node %s (%s): %w", node.ID, node.Kind, err)
	}

	p.memo[node.ID] = outs

	if p.eval.observer != nil {
		p.eval.observer(NodeTrace{
			Network: p.net.Name,
			NodeID:  node.ID,
			Kind:    node.Kind,
			Inputs:  in,
			Outputs: outs,
		})
	}
	return outs, nil
}

// resolveInputs produces the node's input map. For each declared input port:
// a feeding edge wins, then the node's stored default, then - for reserved
// frame-field port ids - the matching field of the current frame.
func (p *evalPass) resolveInputs(node *Node, kind *Kind) (Inputs, error) {
	in := make(Inputs, len(kind.Inputs))

	for _, port := range kind.Inputs {
		edge, ok := p.incomingEdge(node.ID, port.ID)
		if ok {
			v, err := p.resolveEdge(edge)
			if err != nil {
				return nil, err
			}
			in[port.ID] = coerce(port.Type, v)
			continue
		}

		if v, ok := node.InputValues[port.ID]; ok {
			in[port.ID] = coerce(port.Type, v)
			continue
		}

		if v, ok := p.frame.Field(port.ID); ok {
			in[port.ID] = coerce(port.Type, v)
			continue
		}

		if port.Default != nil {
			in[port.ID] = coerce(port.Type, port.Default)
			continue
		}

		in[port.ID] = zeroValue(port.Type)
	}
	return in, nil
}

func (p *evalPass) incomingEdge(nodeID, portID string) (*Edge, bool) {
	for _, edge := range p.net.Edges {
		if edge.Target == nodeID && edge.TargetHandle == portID {
			return edge, true
		}
	}
	return nil, false
}

func (p *evalPass) resolveEdge(edge *Edge) (any, error) {
	source, ok := p.net.NodeByID(edge.Source)
	if !ok {
		return nil, fmt.Errorf("%w: source %s", ErrMissingNode, edge.Source)
	}

	outs, err := p.evalNode(source)
	if err != nil {
		return nil, err
	}

	handle := edge.SourceHandle
	if handle == "" {
		// No handle selects the first value of a multi-valued output.
		sourceKind, ok := p.eval.registry.Lookup(source.Kind)
		if !ok {
			return nil, fmt.Errorf("%w: %q at node %s", ErrUnknownKind, source.Kind, source.ID)
		}
		if len(sourceKind.Outputs) == 0 {
			return nil, fmt.Errorf("%w: kind %s has no outputs", ErrUnknownPort, source.Kind)
		}
		handle = sourceKind.Outputs[0].ID
	}
	return outs[handle], nil
}

// coerce adapts a resolved value to the port's declared type. Numeric ports
// receive string-to-number coercion with non-numeric strings coercing to 0;
// string ports receive string coercion; other port types pass through.
func coerce(t PortType, v any) any {
	switch t {
	case TypeNumber:
		return ToNumber(v)
	case TypeString:
		return ToString(v)
	case TypeBoolean:
		return ToBool(v)
	default:
		return v
	}
}

func zeroValue(t PortType) any {
	switch t {
	case TypeNumber:
		return 0.0
	case TypeString:
		return ""
	case TypeBoolean:
		return false
	default:
		return nil
	}
}

// ToNumber coerces a port value to float64. Non-numeric strings and
// unconvertible values coerce to 0.
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case byte:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		n, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ToString coerces a port value to string.
func ToString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", x)
	}
}

// ToBool coerces a port value to bool: non-zero numbers and the string
// "true" are true.
func ToBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x == "true"
	default:
		return ToNumber(v) != 0
	}
}
