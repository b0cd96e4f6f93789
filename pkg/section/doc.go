// Package section defines the dashboard section registry: a static,
// externally authored tree of feature areas flattened once at startup
// into an ordered list.
//
// Each section carries a stable string ID and a required flag. Required
// sections can never be disabled by the permission store; the flattened
// order doubles as the deterministic fallback order when the engine has
// to pick a replacement active section.
//
// Trees are typically loaded from a YAML file:
//
//	tree, err := section.LoadTree("sections.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg := section.NewRegistry(tree)
//
// The registry is immutable and safe for concurrent use.
package section
