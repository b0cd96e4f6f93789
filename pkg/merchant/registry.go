package merchant

import "slices"

// Registry is the immutable set of merchant profiles, loaded once at
// process start. It deep-copies its input so later mutations by the
// caller cannot leak in, and is safe for concurrent reads.
type Registry struct {
	profiles map[string]Profile
	order    []string
}

// NewRegistry builds a registry from a list of profiles. Profiles with
// an empty ID are skipped; duplicate IDs keep the first occurrence.
func NewRegistry(profiles []Profile) *Registry {
	r := &Registry{
		profiles: make(map[string]Profile, len(profiles)),
		order:    make([]string, 0, len(profiles)),
	}
	for _, p := range profiles {
		if p.ID == "" {
			continue
		}
		if _, seen := r.profiles[p.ID]; seen {
			continue
		}
		p.DisabledSections = slices.Clone(p.DisabledSections)
		r.profiles[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

// Get returns the profile for the given merchant ID.
func (r *Registry) Get(id string) (Profile, bool) {
	p, ok := r.profiles[id]
	if !ok {
		return Profile{}, false
	}
	p.DisabledSections = slices.Clone(p.DisabledSections)
	return p, true
}

// IDs returns all merchant IDs in registration order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.order)
}

// All returns all profiles in registration order.
func (r *Registry) All() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, id := range r.order {
		p := r.profiles[id]
		p.DisabledSections = slices.Clone(p.DisabledSections)
		out = append(out, p)
	}
	return out
}

// Len returns the number of registered merchants.
func (r *Registry) Len() int {
	return len(r.order)
}

// Merge combines a static profile list with dynamically discovered
// profiles (e.g. stores created at runtime and read back from a shared
// store slot). Static profiles win on ID collision; dynamic profiles
// start with no sections disabled by default.
func Merge(static, dynamic []Profile) []Profile {
	out := make([]Profile, 0, len(static)+len(dynamic))
	seen := make(map[string]struct{}, len(static))

	for _, p := range static {
		if p.ID == "" {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	for _, p := range dynamic {
		if p.ID == "" {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		p.DisabledSections = nil
		out = append(out, p)
	}
	return out
}
