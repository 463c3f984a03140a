// Package mergecache memoizes an expensive style/configuration merge per
// origin (default, blocks, theme, custom). A caller asks for the merged
// artifact of an origin and passes a generator; the cache either returns the
// stored artifact or runs the generator and stores its result.
//
// Staleness is decided by comparing two external version counters (style
// registry, block-type registry) against a snapshot recorded at the last
// recomputation. The check is O(1) and deliberately coarse: any drift in
// either counter clears all four slots, because each origin's merge may
// transitively depend on both style and block inputs and the cache keeps no
// dependency graph.
//
// Components:
//   - registry.Source: a monotonic version counter. Local (in-process) for
//     single-worker setups, Redis for shared counters across processes.
//   - Generator[V]: performs the full merge for an origin. The cache treats
//     V as opaque; it only stores and returns it.
//
// Usage:
//
//	styles := registry.NewLocal()
//	blocks := registry.NewLocal()
//	mc, _ := mergecache.New[Stylesheet](mergecache.Options[Stylesheet]{
//		StyleVersions: styles,
//		BlockVersions: blocks,
//	})
//	out, err := mc.GetOrCompute(ctx, mergecache.OriginTheme, mergeTheme)
//
// One instance per logical request/context; construct fresh when a worker is
// reused. A single mutex guards the whole get-or-compute section, so a
// multi-threaded host still gets at most one recompute per staleness window.
package mergecache
