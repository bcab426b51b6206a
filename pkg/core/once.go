package core

import "sync"

// NewOnceIndex wraps fn in a one-shot initializer: the first call to the
// returned func builds the Index, and every later call (including
// concurrent ones racing the first) returns the same pointer without
// rebuilding. This replaces the manually double-checked-locked singleton
// in the design this package is based on (spec.md §9) — the resulting
// *Index is still passed explicitly to NewService rather than read from a
// package-level variable.
func NewOnceIndex(fn func() *Index) func() *Index {
	return sync.OnceValue(fn)
}
