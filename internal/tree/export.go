package tree

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ExportNode is the serialisable form of a Node.
type ExportNode struct {
	Name     string       `yaml:"name" json:"name"`
	Type     string       `yaml:"type" json:"type"`
	Status   string       `yaml:"status,omitempty" json:"status,omitempty"`
	Category string       `yaml:"category,omitempty" json:"category,omitempty"`
	Origin   string       `yaml:"origin,omitempty" json:"origin,omitempty"`
	Children []ExportNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// Export converts the tree below the root, keeping insertion order.
func Export(t *Tree) []ExportNode {
	return exportNodes(t.root.Children)
}

func exportNodes(nodes []*Node) []ExportNode {
	out := make([]ExportNode, 0, len(nodes))
	for _, n := range nodes {
		e := ExportNode{Name: n.Name, Type: n.Kind.String()}
		if n.IsDir() {
			if len(n.Children) > 0 {
				e.Children = exportNodes(n.Children)
			}
		} else {
			e.Status = n.Code.String()
			e.Category = n.Category().String()
			e.Origin = n.Origin
		}
		out = append(out, e)
	}
	return out
}

// EncodeYAML writes the exported tree to w as a YAML sequence.
func EncodeYAML(w io.Writer, t *Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Export(t)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// EncodeJSON writes the exported tree to w as an indented JSON array.
func EncodeJSON(w io.Writer, t *Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Export(t)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
