package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/mergecache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	DriftEvery       uint64
	ComputeFailEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	driftCtr atomic.Uint64
	failCtr  atomic.Uint64
}

var _ mergecache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DriftCleared(prev, cur mergecache.Snapshot) {
	if h.l == nil || !sample(h.opts.DriftEvery, &h.driftCtr) {
		return
	}
	h.l.Info("mergecache.drift_cleared",
		"style_prev", prev.Style,
		"style_cur", cur.Style,
		"block_prev", prev.Block,
		"block_cur", cur.Block)
}

func (h *Hooks) FeatureInvalidated(feature string) {
	if h.l == nil {
		return
	}
	h.l.Debug("mergecache.feature_invalidated",
		"feature", feature)
}

func (h *Hooks) ComputeFailed(origin mergecache.Origin, err error) {
	if h.l == nil || !sample(h.opts.ComputeFailEvery, &h.failCtr) {
		return
	}
	h.l.Warn("mergecache.compute_failed",
		"origin", origin.String(),
		"err", err)
}

func (h *Hooks) VersionFetchError(registry string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("mergecache.version_fetch_error",
		"registry", registry,
		"err", err)
}
