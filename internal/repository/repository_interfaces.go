package repository

import (
	"context"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InspectionRepositoryInterface is implemented by the MongoDB and in-memory report stores.
type InspectionRepositoryInterface interface {
	Create(ctx context.Context, insp *model.Inspection) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Inspection, error)
	List(ctx context.Context, limit int) ([]model.Inspection, error)
	AddPhoto(ctx context.Context, id primitive.ObjectID, photo model.PhotoRef) error
	RemovePhoto(ctx context.Context, id primitive.ObjectID, photoID string) error
}

// InspectorRepositoryInterface is implemented by the inspector account stores.
type InspectorRepositoryInterface interface {
	Create(ctx context.Context, inspector *model.Inspector) error
	FindByEmail(ctx context.Context, email string) (*model.Inspector, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Inspector, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ InspectionRepositoryInterface = (*InspectionRepository)(nil)
	_ InspectionRepositoryInterface = (*MemoryInspectionRepository)(nil)
	_ InspectionRepositoryInterface = (*InspectionRepositoryWithCircuitBreaker)(nil)
	_ InspectorRepositoryInterface  = (*InspectorRepository)(nil)
	_ InspectorRepositoryInterface  = (*MemoryInspectorRepository)(nil)
	_ InspectorRepositoryInterface  = (*InspectorRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface       = (*LogsRepository)(nil)
	_ LogsRepositoryInterface       = (*LogsRepositoryWithCircuitBreaker)(nil)
)
