package mergecache

import (
	"context"
	"fmt"
	"sync"

	reg "github.com/unkn0wn-root/mergecache/registry"
)

type cache[V any] struct {
	styles reg.Source
	blocks reg.Source
	log    Logger
	hooks  Hooks

	enabled bool

	// mu guards the full read-check-maybe-write section, generator call
	// included: at most one recompute per staleness window.
	mu    sync.Mutex
	slots map[Origin]V
	snap  Snapshot
}

func newCache[V any](opts Options[V]) (*cache[V], error) {
	if opts.StyleVersions == nil {
		return nil, fmt.Errorf("mergecache: style version source is required")
	}
	if opts.BlockVersions == nil {
		return nil, fmt.Errorf("mergecache: block version source is required")
	}

	c := &cache[V]{
		styles: opts.StyleVersions,
		blocks: opts.BlockVersions,
		slots:  make(map[Origin]V, len(origins)),
	}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.enabled = !opts.Disabled

	return c, nil
}

func (c *cache[V]) Enabled() bool { return c.enabled }

func (c *cache[V]) GetOrCompute(ctx context.Context, origin Origin, gen Generator[V]) (V, error) {
	var zero V
	if !origin.Valid() {
		return zero, fmt.Errorf("%w: %q", ErrInvalidOrigin, origin)
	}
	if gen == nil {
		return zero, fmt.Errorf("mergecache: generator is required")
	}
	if !c.enabled {
		// bypass: compute fresh, store nothing
		return gen(ctx, origin)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cur, err := c.currentVersions(ctx)
	if err != nil {
		return zero, err
	}

	// Any inequality counts as drift, a decrease included: a registry reset
	// would otherwise pin the snapshot above the live counter and serve
	// stale artifacts forever.
	if cur != c.snap {
		if len(c.slots) > 0 {
			c.hooks.DriftCleared(c.snap, cur)
			c.log.Debug("registry drift; dropped all slots", Fields{
				"style_prev": c.snap.Style, "style_cur": cur.Style,
				"block_prev": c.snap.Block, "block_cur": cur.Block,
			})
		}
		clear(c.slots)
		c.snap = cur
	}

	if v, ok := c.slots[origin]; ok {
		return v, nil
	}

	v, err := gen(ctx, origin)
	if err != nil {
		// no partial write; next call retries from scratch
		c.hooks.ComputeFailed(origin, err)
		c.log.Debug("generator failed; slot left absent", Fields{"origin": origin, "err": err})
		return zero, err
	}
	c.slots[origin] = v
	c.log.Debug("recomputed merge artifact", Fields{
		"origin": origin, "style_ver": cur.Style, "block_ver": cur.Block,
	})
	return v, nil
}

func (c *cache[V]) Clear() {
	c.mu.Lock()
	dropped := len(c.slots)
	clear(c.slots)
	c.mu.Unlock()
	if dropped > 0 {
		c.log.Debug("cleared all slots (snapshot untouched)", Fields{"dropped": dropped})
	}
}

func (c *cache[V]) InvalidateFeature(feature string, meta Fields) {
	c.mu.Lock()
	delete(c.slots, OriginTheme)
	delete(c.slots, OriginCustom)
	c.mu.Unlock()
	c.hooks.FeatureInvalidated(feature)
	c.log.Debug("feature change; invalidated theme and custom", Fields{
		"feature": feature, "meta": meta,
	})
}

func (c *cache[V]) Cached(origin Origin) bool {
	c.mu.Lock()
	_, ok := c.slots[origin]
	c.mu.Unlock()
	return ok
}

func (c *cache[V]) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// currentVersions reads both registries. No stale fallback: if either read
// fails the validity decision cannot be made and the error propagates.
func (c *cache[V]) currentVersions(ctx context.Context) (Snapshot, error) {
	s, err := c.styles.Version(ctx)
	if err != nil {
		c.hooks.VersionFetchError("style", err)
		return Snapshot{}, &VersionError{Registry: "style", Err: err}
	}
	b, err := c.blocks.Version(ctx)
	if err != nil {
		c.hooks.VersionFetchError("block", err)
		return Snapshot{}, &VersionError{Registry: "block", Err: err}
	}
	return Snapshot{Style: s, Block: b}, nil
}
