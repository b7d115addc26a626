package graph

import "fmt"

// Reserved template identifiers for the sentinel nodes. Template edges
// reference these aliases; instantiation rewrites them like any other node id.
const (
	InputAlias  = "INPUT"
	OutputAlias = "OUTPUT"
)

// TemplateNode is one node of a preset template: a kind reference plus
// instance configuration.
type TemplateNode struct {
	ID          string
	Kind        string
	InputValues map[string]any
	Position    Point
}

// Template is a reusable named graph instantiated per parameter.
type Template struct {
	ID    string
	Name  string
	Nodes []TemplateNode
	Edges []Edge
}

// Instantiate clones a template into a fresh, collision-free network bound
// to parameterID. Every node id (sentinels included) is rewritten to
// "{parameterID}-{templateNodeID}" and the edges are rewired accordingly, so
// the same preset can be instantiated for many parameters without id
// collisions. The output sentinel's declared type is set to valueType.
//
// The returned network carries no node state; stateful kinds initialize
// freshly on first evaluation.
func Instantiate(reg *Registry, tpl Template, parameterID string, valueType PortType) (*Network, error) {
	if parameterID == "" {
		return nil, fmt.Errorf("preset %s: parameter id must not be empty", tpl.ID)
	}

	rewrite := func(id string) string { return parameterID + "-" + id }

	n := &Network{
		Name:    parameterID,
		Enabled: true,
		Nodes: []*Node{
			{ID: rewrite(InputAlias), Kind: KindInput},
			{ID: rewrite(OutputAlias), Kind: KindOutput, ValueType: valueType},
		},
	}

	for _, tn := range tpl.Nodes {
		if tn.ID == InputAlias || tn.ID == OutputAlias {
			return nil, fmt.Errorf("preset %s: node id %q is reserved", tpl.ID, tn.ID)
		}
		if _, ok := reg.Lookup(tn.Kind); !ok {
			return nil, fmt.Errorf("preset %s: %w: %q at node %s", tpl.ID, ErrUnknownKind, tn.Kind, tn.ID)
		}

		node := &Node{
			ID:       rewrite(tn.ID),
			Kind:     tn.Kind,
			Position: tn.Position,
		}
		if tn.InputValues != nil {
			node.InputValues = make(map[string]any, len(tn.InputValues))
			for k, v := range tn.InputValues {
				node.InputValues[k] = v
			}
		}
		n.Nodes = append(n.Nodes, node)
	}

	for _, edge := range tpl.Edges {
		rewired := &Edge{
			Source:       rewrite(edge.Source),
			SourceHandle: edge.SourceHandle,
			Target:       rewrite(edge.Target),
			TargetHandle: edge.TargetHandle,
		}
		if err := n.Connect(reg, rewired); err != nil {
			return nil, fmt.Errorf("preset %s: %w", tpl.ID, err)
		}
	}
	return n, nil
}
