package section

import "errors"

var (
	// ErrInvalidTree is returned when a section tree cannot be parsed.
	ErrInvalidTree = errors.New("section: invalid tree")

	// ErrEmptyTree is returned when a parsed tree contains no sections.
	ErrEmptyTree = errors.New("section: empty tree")
)
