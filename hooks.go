package mergecache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; the cache calls them from
// inside its critical section.
type Hooks interface {
	// Both counters were re-read and at least one differed from the stored
	// snapshot while slots were occupied; every slot was dropped.
	DriftCleared(prev, cur Snapshot)

	// InvalidateFeature dropped the theme and custom slots.
	FeatureInvalidated(feature string)

	// The generator returned an error; the slot stays absent.
	ComputeFailed(origin Origin, err error)

	// A registry accessor failed. registry ∈ {"style", "block"}.
	VersionFetchError(registry string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) DriftCleared(Snapshot, Snapshot) {}
func (NopHooks) FeatureInvalidated(string)       {}
func (NopHooks) ComputeFailed(Origin, error)     {}
func (NopHooks) VersionFetchError(string, error) {}
