// Package engine drives per-frame evaluation of many parameter networks and
// implements the silent-degrade error policy: an evaluation failure is local
// to one parameter and one frame, and the bound parameter holds its last
// valid value (or its static default) so the visual output never blanks out
// mid-performance.
package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/graph"
)

type binding struct {
	network      *graph.Network
	defaultValue any
	lastValue    any
	hasLast      bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger installs the logger used for degraded evaluations.
func WithLogger(log *logrus.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithObserver installs a node-trace observer on the engine's evaluator.
func WithObserver(obs graph.Observer) Option {
	return func(e *Engine) {
		e.observer = obs
	}
}

// Engine evaluates every bound parameter network once per frame.
//
// Evaluation is single-threaded and cooperative: EvaluateFrame runs inside
// the host's per-rendered-frame callback. Networks have no evaluation-order
// dependency on each other and only share the frame read-only.
type Engine struct {
	registry *graph.Registry
	eval     *graph.Evaluator
	bindings map[string]*binding
	order    []string
	observer graph.Observer
	log      *logrus.Logger
}

// New returns an engine resolving node kinds against reg.
func New(reg *graph.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: reg,
		bindings: make(map[string]*binding),
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	evalOpts := []graph.EvalOption{}
	if e.observer != nil {
		evalOpts = append(evalOpts, graph.WithObserver(e.observer))
	}
	e.eval = graph.NewEvaluator(reg, evalOpts...)
	return e
}

// Bind attaches a network to a parameter id. defaultValue is the parameter's
// static value, reported until the network produces its first valid result
// and whenever evaluation degrades with no last-good value.
func (e *Engine) Bind(parameterID string, net *graph.Network, defaultValue any) {
	if _, ok := e.bindings[parameterID]; !ok {
		e.order = append(e.order, parameterID)
	}
	e.bindings[parameterID] = &binding{network: net, defaultValue: defaultValue}
}

// Unbind destroys a parameter's binding, discarding network state.
func (e *Engine) Unbind(parameterID string) {
	if _, ok := e.bindings[parameterID]; !ok {
		return
	}
	delete(e.bindings, parameterID)
	for i, id := range e.order {
		if id == parameterID {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Network returns the network bound to a parameter id.
func (e *Engine) Network(parameterID string) (*graph.Network, bool) {
	b, ok := e.bindings[parameterID]
	if !ok {
		return nil, false
	}
	return b.network, true
}

// ParameterIDs returns the bound parameter ids in binding order.
func (e *Engine) ParameterIDs() []string {
	return append([]string(nil), e.order...)
}

// EvaluateFrame computes one value per bound parameter for the given frame.
//
// Per-network errors never propagate: the failing parameter reports its last
// valid value or its static default, and sibling networks evaluate normally.
func (e *Engine) EvaluateFrame(f *frame.Frame) map[string]any {
	values := make(map[string]any, len(e.bindings))

	for _, id := range e.order {
		b := e.bindings[id]

		value, err := e.eval.Evaluate(b.network, f)
		if err != nil {
			e.log.WithFields(logrus.Fields{
				"parameter": id,
				"error":     err,
			}).Debug("network evaluation degraded")

			values[id] = e.degradedValue(b)
			continue
		}

		b.lastValue = value
		b.hasLast = true
		values[id] = value
	}
	return values
}

func (e *Engine) degradedValue(b *binding) any {
	if b.hasLast {
		return b.lastValue
	}
	return b.defaultValue
}
