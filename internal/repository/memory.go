package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryInspectionRepository keeps reports in process memory. It backs the
// service when MongoDB is disabled; records do not survive a restart.
type MemoryInspectionRepository struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]model.Inspection
}

// NewMemoryInspectionRepository creates an empty in-memory store.
func NewMemoryInspectionRepository() *MemoryInspectionRepository {
	return &MemoryInspectionRepository{items: make(map[primitive.ObjectID]model.Inspection)}
}

func (r *MemoryInspectionRepository) Create(_ context.Context, insp *model.Inspection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.ReportID == insp.ReportID {
			return ErrDuplicate
		}
	}
	stampNew(insp)
	r.items[insp.ID] = cloneInspection(*insp)
	return nil
}

func (r *MemoryInspectionRepository) FindByID(_ context.Context, id primitive.ObjectID) (*model.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	insp, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneInspection(insp)
	return &out, nil
}

func (r *MemoryInspectionRepository) List(_ context.Context, limit int) ([]model.Inspection, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	r.mu.RLock()
	out := make([]model.Inspection, 0, len(r.items))
	for _, insp := range r.items {
		out = append(out, cloneInspection(insp))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].InspectedAt.After(out[j].InspectedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryInspectionRepository) AddPhoto(_ context.Context, id primitive.ObjectID, photo model.PhotoRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	insp, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	if !insp.CanAddPhoto() {
		return ErrPhotoLimitReached
	}
	insp.Photos = append(insp.Photos, photo)
	insp.UpdatedAt = time.Now()
	r.items[id] = insp
	return nil
}

func (r *MemoryInspectionRepository) RemovePhoto(_ context.Context, id primitive.ObjectID, photoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	insp, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	kept := make([]model.PhotoRef, 0, len(insp.Photos))
	for _, p := range insp.Photos {
		if p.ID != photoID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(insp.Photos) {
		return ErrNotFound
	}
	insp.Photos = kept
	insp.UpdatedAt = time.Now()
	r.items[id] = insp
	return nil
}

func cloneInspection(in model.Inspection) model.Inspection {
	out := in
	out.Photos = append([]model.PhotoRef(nil), in.Photos...)
	out.DefectTypes = append([]string(nil), in.DefectTypes...)
	out.Sampling.Steps = append([]string(nil), in.Sampling.Steps...)
	if out.Photos == nil {
		out.Photos = []model.PhotoRef{}
	}
	if out.DefectTypes == nil {
		out.DefectTypes = []string{}
	}
	return out
}

// MemoryInspectorRepository keeps inspector accounts in process memory.
type MemoryInspectorRepository struct {
	mu      sync.RWMutex
	byID    map[primitive.ObjectID]model.Inspector
	byEmail map[string]primitive.ObjectID
}

// NewMemoryInspectorRepository creates an empty in-memory account store.
func NewMemoryInspectorRepository() *MemoryInspectorRepository {
	return &MemoryInspectorRepository{
		byID:    make(map[primitive.ObjectID]model.Inspector),
		byEmail: make(map[string]primitive.ObjectID),
	}
}

func (r *MemoryInspectorRepository) Create(_ context.Context, inspector *model.Inspector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(inspector.Email)
	if _, taken := r.byEmail[email]; taken {
		return ErrDuplicate
	}
	now := time.Now()
	inspector.Email = email
	inspector.CreatedAt = now
	inspector.UpdatedAt = now
	if inspector.ID.IsZero() {
		inspector.ID = primitive.NewObjectID()
	}
	r.byID[inspector.ID] = *inspector
	r.byEmail[email] = inspector.ID
	return nil
}

func (r *MemoryInspectorRepository) FindByEmail(_ context.Context, email string) (*model.Inspector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	inspector := r.byID[id]
	return &inspector, nil
}

func (r *MemoryInspectorRepository) FindByID(_ context.Context, id primitive.ObjectID) (*model.Inspector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inspector, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	inspector.Password = ""
	return &inspector, nil
}
