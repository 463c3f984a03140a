package mergecache

import (
	"context"

	reg "github.com/unkn0wn-root/mergecache/registry"
)

// Generator performs the full merge for an origin. It must be pure with
// respect to the external registries at call time: two calls under the same
// registry versions should produce equivalent artifacts. Errors propagate
// unchanged to the GetOrCompute caller and leave the slot absent.
type Generator[V any] func(ctx context.Context, origin Origin) (V, error)

// Snapshot is the counter pair recorded at the last recomputation. It is
// shared by all four slots: drift in either counter invalidates everything.
type Snapshot struct {
	Style uint64
	Block uint64
}

// Cache is the memoization surface for merged style artifacts.
// V is the caller's artifact type; the cache never inspects it.
type Cache[V any] interface {
	Enabled() bool

	// GetOrCompute returns the cached artifact for origin, recomputing via
	// gen when the slot is absent or either registry counter drifted.
	GetOrCompute(ctx context.Context, origin Origin, gen Generator[V]) (V, error)

	// Clear sets every slot to absent. The snapshot is left untouched; the
	// next GetOrCompute finds the slot absent and recomputes. Idempotent.
	Clear()

	// InvalidateFeature clears the theme and custom slots in response to a
	// configuration-feature change. Default and blocks are unaffected.
	// meta is recorded in logs but not interpreted.
	InvalidateFeature(feature string, meta Fields)

	// Cached reports whether origin currently holds an artifact.
	Cached(origin Origin) bool

	// Snapshot returns the stored counter pair.
	Snapshot() Snapshot
}

// Options tune the cache. StyleVersions and BlockVersions are required;
// everything else has a no-op default.
type Options[V any] struct {
	// Required
	StyleVersions reg.Source // style registry counter
	BlockVersions reg.Source // block-type registry counter

	Logger   Logger // if nil, NopLogger
	Hooks    Hooks  // if nil, NopHooks
	Disabled bool   // bypass: generator runs every call, nothing stored
}

func New[V any](opts Options[V]) (Cache[V], error) {
	return newCache[V](opts)
}
