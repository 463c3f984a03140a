package registry

import (
	"context"
	"sync"
	"testing"
)

func TestLocalStartsAtZero(t *testing.T) {
	s := NewLocal()
	v, err := s.Version(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Fatalf("fresh counter should be 0, got %d", v)
	}
}

func TestLocalBumpAndReset(t *testing.T) {
	ctx := context.Background()
	s := NewLocal()

	if got := s.Bump(); got != 1 {
		t.Fatalf("first bump=%d, want 1", got)
	}
	if got := s.Bump(); got != 2 {
		t.Fatalf("second bump=%d, want 2", got)
	}
	if v, _ := s.Version(ctx); v != 2 {
		t.Fatalf("version=%d, want 2", v)
	}

	s.Reset(7)
	if v, _ := s.Version(ctx); v != 7 {
		t.Fatalf("after reset version=%d, want 7", v)
	}
}

func TestLocalConcurrentBumps(t *testing.T) {
	s := NewLocal()
	const workers, per = 8, 100

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < per; j++ {
				s.Bump()
			}
		}()
	}
	wg.Wait()

	if v, _ := s.Version(context.Background()); v != workers*per {
		t.Fatalf("version=%d, want %d", v, workers*per)
	}
}
