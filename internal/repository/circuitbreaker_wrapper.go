package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/inspectwise/inspection-service/internal/circuitbreaker"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnavailable wraps circuitbreaker.ErrCircuitOpen for callers that only
// know about repository errors.
var ErrUnavailable = fmt.Errorf("store unavailable: %w", circuitbreaker.ErrCircuitOpen)

func guarded[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return result, ErrUnavailable
	}
	return result, err
}

// InspectionRepositoryWithCircuitBreaker guards an inspection store.
type InspectionRepositoryWithCircuitBreaker struct {
	repo           InspectionRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewInspectionRepositoryWithCircuitBreaker wraps repo with cb.
func NewInspectionRepositoryWithCircuitBreaker(repo InspectionRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *InspectionRepositoryWithCircuitBreaker {
	return &InspectionRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *InspectionRepositoryWithCircuitBreaker) Create(ctx context.Context, insp *model.Inspection) error {
	_, err := guarded(ctx, r.circuitBreaker, func() (struct{}, error) {
		return struct{}{}, r.repo.Create(ctx, insp)
	})
	return err
}

func (r *InspectionRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Inspection, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Inspection, error) {
		return r.repo.FindByID(ctx, id)
	})
}

func (r *InspectionRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.Inspection, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.Inspection, error) {
		return r.repo.List(ctx, limit)
	})
}

func (r *InspectionRepositoryWithCircuitBreaker) AddPhoto(ctx context.Context, id primitive.ObjectID, photo model.PhotoRef) error {
	_, err := guarded(ctx, r.circuitBreaker, func() (struct{}, error) {
		return struct{}{}, r.repo.AddPhoto(ctx, id, photo)
	})
	return err
}

func (r *InspectionRepositoryWithCircuitBreaker) RemovePhoto(ctx context.Context, id primitive.ObjectID, photoID string) error {
	_, err := guarded(ctx, r.circuitBreaker, func() (struct{}, error) {
		return struct{}{}, r.repo.RemovePhoto(ctx, id, photoID)
	})
	return err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *InspectionRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// InspectorRepositoryWithCircuitBreaker guards an inspector account store.
type InspectorRepositoryWithCircuitBreaker struct {
	repo           InspectorRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewInspectorRepositoryWithCircuitBreaker wraps repo with cb.
func NewInspectorRepositoryWithCircuitBreaker(repo InspectorRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *InspectorRepositoryWithCircuitBreaker {
	return &InspectorRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *InspectorRepositoryWithCircuitBreaker) Create(ctx context.Context, inspector *model.Inspector) error {
	_, err := guarded(ctx, r.circuitBreaker, func() (struct{}, error) {
		return struct{}{}, r.repo.Create(ctx, inspector)
	})
	return err
}

func (r *InspectorRepositoryWithCircuitBreaker) FindByEmail(ctx context.Context, email string) (*model.Inspector, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Inspector, error) {
		return r.repo.FindByEmail(ctx, email)
	})
}

func (r *InspectorRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Inspector, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Inspector, error) {
		return r.repo.FindByID(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *InspectorRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker guards the logs collection. Writes are
// dropped silently while the circuit is open since logging is best effort.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	_, err := guarded(ctx, r.circuitBreaker, func() (struct{}, error) {
		return struct{}{}, r.repo.Create(ctx, entry)
	})
	if errors.Is(err, ErrUnavailable) {
		return nil
	}
	return err
}

func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	_, err := guarded(ctx, r.circuitBreaker, func() (struct{}, error) {
		return struct{}{}, r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, ErrUnavailable) {
		return nil
	}
	return err
}

func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*LogEntryDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
