package section

// Registry holds the flattened section list. It is immutable after
// construction and safe for concurrent use without locking.
type Registry struct {
	sections []Section
	required map[string]struct{}
	index    map[string]int
}

// NewRegistry builds a registry from a section tree. Duplicate IDs keep
// the first occurrence; the flattened order is preserved.
func NewRegistry(tree []Node) *Registry {
	flat := Flatten(tree)

	r := &Registry{
		sections: make([]Section, 0, len(flat)),
		required: make(map[string]struct{}),
		index:    make(map[string]int, len(flat)),
	}
	for _, s := range flat {
		if _, seen := r.index[s.ID]; seen {
			continue
		}
		r.index[s.ID] = len(r.sections)
		r.sections = append(r.sections, s)
		if s.Required {
			r.required[s.ID] = struct{}{}
		}
	}
	return r
}

// Sections returns the flattened list in registry order.
// The returned slice is a copy and safe to retain.
func (r *Registry) Sections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// IDs returns all section IDs in registry order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.sections))
	for i, s := range r.sections {
		out[i] = s.ID
	}
	return out
}

// Has reports whether the section is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// IsRequired reports whether the section must always be accessible,
// independent of any stored override.
func (r *Registry) IsRequired(id string) bool {
	_, ok := r.required[id]
	return ok
}

// RequiredIDs returns the set of required section IDs.
func (r *Registry) RequiredIDs() map[string]struct{} {
	out := make(map[string]struct{}, len(r.required))
	for id := range r.required {
		out[id] = struct{}{}
	}
	return out
}

// Len returns the number of registered sections.
func (r *Registry) Len() int {
	return len(r.sections)
}
