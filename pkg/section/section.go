package section

// Node is a single entry in the externally authored section tree.
// Trees exist for UI grouping; the engine only ever operates on the
// flattened list.
type Node struct {
	ID          string `yaml:"id" json:"id"`
	Label       string `yaml:"label,omitempty" json:"label,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Children    []Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// Section is the flat form the engine works with.
type Section struct {
	ID       string
	Required bool
}

// Flatten walks the tree depth-first and returns every node that carries
// an ID, in visit order. Nodes without an ID are skipped, not errors.
// The resulting order is significant: it is the deterministic fallback
// search order when recovering the active section.
func Flatten(tree []Node) []Section {
	var out []Section
	for _, node := range tree {
		if node.ID != "" {
			out = append(out, Section{ID: node.ID, Required: node.Required})
		}
		if len(node.Children) > 0 {
			out = append(out, Flatten(node.Children)...)
		}
	}
	return out
}
