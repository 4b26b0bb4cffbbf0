package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultListLimit bounds List when the caller passes no limit.
const DefaultListLimit = 50

// InspectionRepository stores inspection reports in MongoDB.
type InspectionRepository struct {
	collection *mongo.Collection
}

// NewInspectionRepository creates a repository on the inspections collection.
func NewInspectionRepository(db *MongoDB) *InspectionRepository {
	return &InspectionRepository{collection: db.Inspections}
}

// Create inserts a report, assigning its ID and timestamps.
func (r *InspectionRepository) Create(ctx context.Context, insp *model.Inspection) error {
	stampNew(insp)

	_, err := r.collection.InsertOne(ctx, insp)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: report %s", ErrDuplicate, insp.ReportID)
	}
	return err
}

// FindByID returns the report with the given ID or ErrNotFound.
func (r *InspectionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Inspection, error) {
	var insp model.Inspection
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&insp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &insp, nil
}

// List returns the most recent reports first.
func (r *InspectionRepository) List(ctx context.Context, limit int) ([]model.Inspection, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "inspected_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	inspections := make([]model.Inspection, 0, limit)
	if err := cursor.All(ctx, &inspections); err != nil {
		return nil, err
	}
	return inspections, nil
}

// AddPhoto appends a photo reference. The photo count guard is part of the
// update filter so concurrent uploads cannot exceed the limit.
func (r *InspectionRepository) AddPhoto(ctx context.Context, id primitive.ObjectID, photo model.PhotoRef) error {
	filter := bson.M{
		"_id": id,
		fmt.Sprintf("photos.%d", model.MaxPhotosPerInspection-1): bson.M{"$exists": false},
	}
	update := bson.M{
		"$push": bson.M{"photos": photo},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.missReason(ctx, id)
	}
	return nil
}

// RemovePhoto drops a photo reference by photo ID.
func (r *InspectionRepository) RemovePhoto(ctx context.Context, id primitive.ObjectID, photoID string) error {
	filter := bson.M{"_id": id, "photos.id": photoID}
	update := bson.M{
		"$pull": bson.M{"photos": bson.M{"id": photoID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// missReason tells a missing report apart from a full one.
func (r *InspectionRepository) missReason(ctx context.Context, id primitive.ObjectID) error {
	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrPhotoLimitReached
}

func stampNew(insp *model.Inspection) {
	now := time.Now()
	if insp.ID.IsZero() {
		insp.ID = primitive.NewObjectID()
	}
	if insp.CreatedAt.IsZero() {
		insp.CreatedAt = now
	}
	insp.UpdatedAt = now
	if insp.Photos == nil {
		insp.Photos = []model.PhotoRef{}
	}
	if insp.DefectTypes == nil {
		insp.DefectTypes = []string{}
	}
}
