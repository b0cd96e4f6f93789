// Package merchant holds the static merchant registry: the list of
// known merchant profiles with their display data and per-type default
// disabled sections.
//
// The registry is constructed once at startup and injected into the
// access-control engine; there are no package-level mutable globals, so
// tests can run against synthetic registries.
package merchant
