package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InspectorRepository stores inspector accounts in MongoDB.
type InspectorRepository struct {
	collection *mongo.Collection
}

// NewInspectorRepository creates a repository on the inspectors collection.
func NewInspectorRepository(db *MongoDB) *InspectorRepository {
	return &InspectorRepository{collection: db.Inspectors}
}

// Create inserts an account. Emails are stored lower-cased.
func (r *InspectorRepository) Create(ctx context.Context, inspector *model.Inspector) error {
	now := time.Now()
	inspector.Email = strings.ToLower(inspector.Email)
	inspector.CreatedAt = now
	inspector.UpdatedAt = now
	if inspector.ID.IsZero() {
		inspector.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, inspector)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", ErrDuplicate, inspector.Email)
	}
	return err
}

// FindByEmail returns the account with only the fields login needs.
func (r *InspectorRepository) FindByEmail(ctx context.Context, email string) (*model.Inspector, error) {
	projection := bson.M{
		"_id":      1,
		"email":    1,
		"name":     1,
		"password": 1,
		"active":   1,
	}
	opts := options.FindOne().SetProjection(projection)

	var inspector model.Inspector
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}, opts).Decode(&inspector)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inspector, nil
}

// FindByID returns the account without its password hash.
func (r *InspectorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Inspector, error) {
	opts := options.FindOne().SetProjection(bson.M{"password": 0})

	var inspector model.Inspector
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&inspector)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inspector, nil
}
