package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/inspectwise/inspection-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStore fails every call with err.
type brokenStore struct {
	err   error
	calls int
}

func (b *brokenStore) Put(context.Context, string, io.Reader, int64, string) error {
	b.calls++
	return b.err
}

func (b *brokenStore) Get(context.Context, string) (io.ReadCloser, Object, error) {
	b.calls++
	return nil, Object{}, b.err
}

func (b *brokenStore) Delete(context.Context, string) error {
	b.calls++
	return b.err
}

func photoBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "minio-photos",
		IsFailure:        IsFailure,
	})
}

func TestGuardedStore_PassesThrough(t *testing.T) {
	ctx := context.Background()
	guarded := NewGuardedStore(NewMemoryStore(), photoBreaker())

	require.NoError(t, guarded.Put(ctx, "insp/p1.jpg", bytes.NewReader([]byte("jpeg")), 4, "image/jpeg"))

	rc, obj, err := guarded.Get(ctx, "insp/p1.jpg")
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	assert.Equal(t, "jpeg", string(body))
	assert.Equal(t, "image/jpeg", obj.ContentType)

	require.NoError(t, guarded.Delete(ctx, "insp/p1.jpg"))
	for i := 0; i < 5; i++ {
		_, _, err = guarded.Get(ctx, "insp/p1.jpg")
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, circuitbreaker.StateClosed, guarded.CircuitBreaker().State(), "misses keep the circuit closed")
}

func TestGuardedStore_OpensOnFailures(t *testing.T) {
	ctx := context.Background()
	refused := errors.New("dial tcp 127.0.0.1:9000: connection refused")
	inner := &brokenStore{err: refused}
	guarded := NewGuardedStore(inner, photoBreaker())

	assert.ErrorIs(t, guarded.Put(ctx, "k", bytes.NewReader(nil), 0, "image/png"), refused)
	assert.ErrorIs(t, guarded.Delete(ctx, "k"), refused)
	require.True(t, guarded.CircuitBreaker().IsOpen())

	_, _, err := guarded.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.ErrorIs(t, guarded.Delete(ctx, "k"), ErrUnavailable)
	assert.Equal(t, 2, inner.calls, "open circuit skips the store")
}

func TestIsFailure(t *testing.T) {
	assert.False(t, IsFailure(nil))
	assert.False(t, IsFailure(ErrNotFound))
	assert.False(t, IsFailure(context.Canceled))
	assert.True(t, IsFailure(errors.New("503 Service Unavailable")))
}
