package engine

import "errors"

// ErrMissingDependency is returned by New when a required dependency is
// nil. Everything else in the engine degrades rather than fails, but a
// half-wired engine is a programming error worth failing fast on.
var ErrMissingDependency = errors.New("engine: missing dependency")
