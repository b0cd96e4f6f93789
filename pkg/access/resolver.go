package access

import "github.com/eishro/merchantaccess/pkg/section"

// DefaultSection is the preferred landing section when the active one
// becomes unavailable.
const DefaultSection = "overview"

// Resolver answers "does merchant M have access to module/section G"
// over already-loaded state. All predicates are cheap, synchronous and
// total: they never perform I/O beyond the module source's cache, never
// return errors and never panic on incomplete data. A permission check
// that crashes the dashboard is worse than one that over-grants access
// to a non-critical section.
type Resolver struct {
	sections     *section.Registry
	source       ModuleSource
	sectionRules SectionRule
	groupRules   GroupRule
}

// Option configures the resolver.
type Option func(*Resolver)

// WithSectionRules sets the section gating table.
func WithSectionRules(rules SectionRule) Option {
	return func(r *Resolver) { r.sectionRules = rules }
}

// WithGroupRules sets the navigation group gating table.
func WithGroupRules(rules GroupRule) Option {
	return func(r *Resolver) { r.groupRules = rules }
}

// NewResolver creates a resolver over the given registry and module
// source.
func NewResolver(sections *section.Registry, source ModuleSource, opts ...Option) *Resolver {
	r := &Resolver{
		sections:     sections,
		source:       source,
		sectionRules: SectionRule{},
		groupRules:   GroupRule{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HasAccess reports whether the merchant may use any of the required
// module IDs (OR semantics across the list).
//
// An unresolved identity (empty merchant ID) is limited to required
// sections. A merchant with no module data of any kind gets full
// fail-open access. Otherwise a module is accessible when its ID is
// empty, names a required section, is absent from the module source
// (data predating the module fails open), or is explicitly true. Access
// is denied only when every listed ID is present and explicitly false.
func (r *Resolver) HasAccess(merchantID string, required ...string) bool {
	if len(required) == 0 {
		return true
	}

	if merchantID == "" {
		for _, id := range required {
			if r.sections.IsRequired(id) {
				return true
			}
		}
		return false
	}

	source, ok := r.source.Cached(merchantID)
	if !ok {
		source, ok = r.source.DefaultFor(merchantID)
	}
	if !ok {
		// No policy data could be loaded from anywhere: the global
		// safety valve is to grant.
		return true
	}

	for _, id := range required {
		if id == "" {
			return true
		}
		if r.sections.IsRequired(id) {
			return true
		}
		enabled, present := source[id]
		if !present || enabled {
			return true
		}
	}
	return false
}

// IsSectionAvailable reports whether a section should be reachable for
// the merchant. Sections without a rule entry are ungated and open by
// default.
func (r *Resolver) IsSectionAvailable(merchantID, sectionID string) bool {
	rule, ok := r.sectionRules[sectionID]
	if !ok {
		return true
	}
	return r.HasAccess(merchantID, rule...)
}

// GroupVisible reports whether a navigation group should render at all.
// Groups without a rule entry always render.
func (r *Resolver) GroupVisible(merchantID, group string) bool {
	rule, ok := r.groupRules[group]
	if !ok {
		return true
	}
	return r.HasAccess(merchantID, rule...)
}

// Recover picks the active section after a permission change. The
// current section is kept while it stays available; otherwise the
// default section is selected if available, then the first available
// section in registry order. When nothing is available the current
// section is returned unchanged — the view layer renders a locked
// state, the engine never fails.
func (r *Resolver) Recover(merchantID, current string) string {
	if current != "" && r.IsSectionAvailable(merchantID, current) {
		return current
	}
	if r.sections.Has(DefaultSection) && r.IsSectionAvailable(merchantID, DefaultSection) {
		return DefaultSection
	}
	for _, id := range r.sections.IDs() {
		if r.IsSectionAvailable(merchantID, id) {
			return id
		}
	}
	return current
}
