package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/inspectwise/inspection-service/internal/circuitbreaker"
)

// ErrUnavailable is returned instead of calling the store while its circuit is open.
var ErrUnavailable = fmt.Errorf("photo store unavailable: %w", circuitbreaker.ErrCircuitOpen)

// GuardedStore routes every call through a circuit breaker. Missing
// objects do not count as failures.
type GuardedStore struct {
	store PhotoStore
	cb    *circuitbreaker.CircuitBreaker
}

// NewGuardedStore wraps store with cb.
func NewGuardedStore(store PhotoStore, cb *circuitbreaker.CircuitBreaker) *GuardedStore {
	return &GuardedStore{store: store, cb: cb}
}

// IsFailure reports whether err should count against the photo store's circuit.
func IsFailure(err error) bool {
	return err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, context.Canceled)
}

func (g *GuardedStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return g.unavailable(g.cb.Execute(ctx, func() error {
		return g.store.Put(ctx, key, r, size, contentType)
	}))
}

func (g *GuardedStore) Get(ctx context.Context, key string) (io.ReadCloser, Object, error) {
	var (
		rc  io.ReadCloser
		obj Object
	)
	err := g.cb.Execute(ctx, func() error {
		var getErr error
		rc, obj, getErr = g.store.Get(ctx, key)
		return getErr
	})
	return rc, obj, g.unavailable(err)
}

func (g *GuardedStore) Delete(ctx context.Context, key string) error {
	return g.unavailable(g.cb.Execute(ctx, func() error {
		return g.store.Delete(ctx, key)
	}))
}

// CircuitBreaker exposes the breaker for the readiness probe.
func (g *GuardedStore) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return g.cb
}

func (g *GuardedStore) unavailable(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) && !errors.Is(err, ErrUnavailable) {
		return ErrUnavailable
	}
	return err
}
