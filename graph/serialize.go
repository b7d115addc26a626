package graph

import (
	"encoding/json"
	"fmt"
)

// The persisted network shape. Node kinds are persisted by string reference
// and re-resolved against the registry on load; the output sentinel
// additionally persists its bound value type so it can be reconstructed
// without external context.

type serializedNode struct {
	ID       string             `json:"id"`
	Position Point              `json:"position"`
	Data     serializedNodeData `json:"data"`
}

type serializedNodeData struct {
	Kind        string         `json:"kind"`
	InputValues map[string]any `json:"inputValues,omitempty"`
	ValueType   PortType       `json:"valueType,omitempty"`
}

type serializedNetwork struct {
	Name        string           `json:"name"`
	IsEnabled   bool             `json:"isEnabled"`
	IsMinimized bool             `json:"isMinimized"`
	Nodes       []serializedNode `json:"nodes"`
	Edges       []*Edge          `json:"edges"`
}

// MarshalNetwork serializes a network to its persisted JSON shape.
func MarshalNetwork(n *Network) ([]byte, error) {
	if n == nil {
		return nil, ErrNoNetwork
	}

	s := serializedNetwork{
		Name:        n.Name,
		IsEnabled:   n.Enabled,
		IsMinimized: n.Minimized,
		Nodes:       make([]serializedNode, 0, len(n.Nodes)),
		Edges:       n.Edges,
	}
	for _, node := range n.Nodes {
		s.Nodes = append(s.Nodes, serializedNode{
			ID:       node.ID,
			Position: node.Position,
			Data: serializedNodeData{
				Kind:        node.Kind,
				InputValues: node.InputValues,
				ValueType:   node.ValueType,
			},
		})
	}
	return json.Marshal(s)
}

// UnmarshalNetwork reconstructs a network from its persisted JSON shape,
// resolving every kind reference against reg. The loaded network starts with
// fresh node state.
func UnmarshalNetwork(data []byte, reg *Registry) (*Network, error) {
	var s serializedNetwork
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal network: %w", err)
	}

	n := &Network{
		Name:      s.Name,
		Enabled:   s.IsEnabled,
		Minimized: s.IsMinimized,
		Nodes:     make([]*Node, 0, len(s.Nodes)),
		Edges:     s.Edges,
	}
	for _, sn := range s.Nodes {
		if _, ok := reg.Lookup(sn.Data.Kind); !ok {
			return nil, fmt.Errorf("%w: %q at node %s", ErrUnknownKind, sn.Data.Kind, sn.ID)
		}
		n.Nodes = append(n.Nodes, &Node{
			ID:          sn.ID,
			Kind:        sn.Data.Kind,
			InputValues: sn.Data.InputValues,
			ValueType:   sn.Data.ValueType,
			Position:    sn.Position,
		})
	}

	if err := n.Validate(reg); err != nil {
		return nil, err
	}
	return n, nil
}
