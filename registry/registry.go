// Package registry defines the version-counter contract mergecache consumes.
// A source tracks one external registry (styles or block types) and exposes a
// monotonically non-decreasing counter bumped on every registered change.
// Use Local (default) for in-process counters, or Redis to share counters
// across worker processes.
package registry

import "context"

// Source exposes the current registry version. Missing backing state reads
// as 0. Implementations must never guess on failure: return the error and
// let the cache propagate it.
type Source interface {
	Version(ctx context.Context) (uint64, error)
}
