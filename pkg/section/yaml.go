package section

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseTree parses a YAML section tree. The expected document is a
// top-level `sections` list of nodes, each with optional children.
func ParseTree(content []byte) ([]Node, error) {
	var doc struct {
		Sections []Node `yaml:"sections"`
	}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrInvalidTree, err)
	}
	if len(doc.Sections) == 0 {
		return nil, ErrEmptyTree
	}
	return doc.Sections, nil
}

// LoadTree reads and parses a YAML section tree from disk. The tree is
// static configuration loaded once at startup; it is not hot-reloaded.
func LoadTree(path string) ([]Node, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidTree, err)
	}
	return ParseTree(content)
}
