package mergecache

import (
	"errors"
	"fmt"
)

// ErrInvalidOrigin rejects identifiers outside the fixed four-origin set.
// The slot model is closed; unknown origins never grow new slots.
var ErrInvalidOrigin = errors.New("mergecache: invalid origin")

// VersionError reports a failed counter read from one of the external
// registries. The validity check cannot proceed without fresh versions, so
// no cached artifact is returned in its place.
type VersionError struct {
	Registry string // "style" or "block"
	Err      error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("mergecache: %s registry version read failed: %v", e.Registry, e.Err)
}

func (e *VersionError) Unwrap() error { return e.Err }
