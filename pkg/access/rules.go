package access

// SectionRule maps a section ID to the module IDs gating it. A section
// is available when ANY listed module is accessible (OR semantics).
// Sections with no rule entry are ungated and always open.
type SectionRule map[string][]string

// GroupRule maps a navigation group name to the module IDs that keep it
// rendered, with the same OR semantics. Consumers must force any
// expanded submenu state closed when a group's access turns false.
type GroupRule map[string][]string

// ModuleSource supplies per-merchant module state to the resolver. It
// is implemented by the permission store: the cached entry first, then
// the statically computed default.
type ModuleSource interface {
	Cached(merchantID string) (map[string]bool, bool)
	DefaultFor(merchantID string) (map[string]bool, bool)
}
