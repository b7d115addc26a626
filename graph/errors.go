package graph

import "errors"

var (
	// ErrNoNetwork is returned when evaluating a nil network.
	ErrNoNetwork = errors.New("no network")
	// ErrNoFrame is returned when evaluating without a frame.
	ErrNoFrame = errors.New("no frame")
	// ErrNetworkDisabled is returned when evaluating a disabled network.
	ErrNetworkDisabled = errors.New("network is disabled")
	// ErrNoOutputNode is returned when a network has no output sentinel.
	ErrNoOutputNode = errors.New("network has no output node")
	// ErrUnknownKind is returned when a node's kind reference cannot be
	// resolved against the registry.
	ErrUnknownKind = errors.New("unknown node kind")
	// ErrMissingNode is returned when an edge references a node id that is
	// not part of the network.
	ErrMissingNode = errors.New("edge references missing node")
	// ErrCycle is returned when evaluation re-enters a node already on the
	// resolution stack.
	ErrCycle = errors.New("cycle in network")
	// ErrIncompatiblePorts is returned by the connection validator for
	// edges between ports whose types cannot be connected.
	ErrIncompatiblePorts = errors.New("incompatible port types")
	// ErrUnknownPort is returned when an edge references a port id the
	// node's kind does not declare.
	ErrUnknownPort = errors.New("unknown port")
	// ErrDuplicateKind is returned when registering a kind name twice.
	ErrDuplicateKind = errors.New("kind already registered")
	// ErrSentinelCount is returned when a network does not contain exactly
	// one input and one output sentinel.
	ErrSentinelCount = errors.New("network must contain exactly one input and one output node")
)
