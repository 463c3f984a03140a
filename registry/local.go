package registry

import (
	"context"
	"sync"
)

// Local keeps the counter in-process (default).
// Writers call Bump whenever a registered style or block type changes.
type Local struct {
	mu sync.Mutex
	v  uint64
}

var _ Source = (*Local)(nil)

func NewLocal() *Local { return &Local{} }

func (s *Local) Version(_ context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v, nil
}

// Bump increments the counter and returns the new value.
func (s *Local) Bump() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v++
	return s.v
}

// Reset overwrites the counter. Registry rebuilds may move it backwards;
// caches treat any observed inequality as drift, so that is safe.
func (s *Local) Reset(v uint64) {
	s.mu.Lock()
	s.v = v
	s.mu.Unlock()
}
