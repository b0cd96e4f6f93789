// Package access is the runtime predicate layer of the merchant
// access-control engine: "does merchant M have access to module or
// section G".
//
// Predicates apply required-section overrides and fail-open defaults
// over state the permission store has already loaded. The fail-open
// rules are deliberate policy, not gaps: sections that policy data
// predates stay reachable, merchants with no policy data at all see
// everything, and an unresolved identity is limited to the sections
// marked required.
package access
