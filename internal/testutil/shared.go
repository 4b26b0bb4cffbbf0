//go:build integration

package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/testcontainers/testcontainers-go"
)

// shared holds one lazily started container per test binary.
type shared[T any] struct {
	mu      sync.Mutex
	started bool
	value   T
	err     error
}

func (s *shared[T]) get(start func() (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		s.value, s.err = start()
		s.started = true
	}
	return s.value, s.err
}

func (s *shared[T]) peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.started && s.err == nil
}

// take hands the container to the caller for cleanup and resets s.
func (s *shared[T]) take() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.value, s.started && s.err == nil
	var zero T
	s.value, s.started, s.err = zero, false, nil
	return v, ok
}

func terminate(ctx context.Context, c testcontainers.Container) error {
	if c == nil {
		return nil
	}
	if err := c.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}
