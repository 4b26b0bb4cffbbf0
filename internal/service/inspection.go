package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/metrics"
	"github.com/inspectwise/inspection-service/internal/repository"
	"github.com/inspectwise/inspection-service/internal/storage"
)

// DefaultMaxPhotoBytes bounds a single photo upload.
const DefaultMaxPhotoBytes = 10 << 20

var (
	// ErrInvalidID is returned for a malformed inspection ID.
	ErrInvalidID = errors.New("invalid inspection id")
	// ErrInspectionNotFound is returned when no report has the given ID.
	ErrInspectionNotFound = errors.New("inspection not found")
	// ErrReportConflict is returned when a report ID is already taken.
	ErrReportConflict = errors.New("report already exists")
	// ErrPhotoNotFound is returned when a report has no photo with the given ID.
	ErrPhotoNotFound = errors.New("photo not found")
	// ErrPhotoLimitReached is returned when a report already holds the maximum number of photos.
	ErrPhotoLimitReached = errors.New("photo limit reached")
	// ErrUnsupportedMedia is returned for uploads that are not images.
	ErrUnsupportedMedia = errors.New("photo must be an image")
	// ErrPhotoTooLarge is returned for uploads above the configured size.
	ErrPhotoTooLarge = errors.New("photo too large")
	// ErrEmptyPhoto is returned for zero-byte uploads.
	ErrEmptyPhoto = errors.New("photo is empty")
)

// PhotoUpload is a photo received from a client.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// InspectionService records finished inspections and their photo evidence.
type InspectionService interface {
	Create(ctx context.Context, req *dto.CreateInspectionRequest, inspectorID string) (*model.Inspection, error)
	Get(ctx context.Context, id string) (*model.Inspection, error)
	List(ctx context.Context, limit int) ([]model.Inspection, error)
	AddPhoto(ctx context.Context, id string, upload PhotoUpload) (*model.PhotoRef, error)
	GetPhoto(ctx context.Context, id, photoID string) (io.ReadCloser, model.PhotoRef, error)
	RemovePhoto(ctx context.Context, id, photoID string) error
}

// InspectionOption configures an InspectionServiceImpl.
type InspectionOption func(*InspectionServiceImpl)

// WithMaxPhotoBytes overrides DefaultMaxPhotoBytes.
func WithMaxPhotoBytes(n int64) InspectionOption {
	return func(s *InspectionServiceImpl) {
		if n > 0 {
			s.maxPhotoBytes = n
		}
	}
}

// WithClock sets the time source used for report IDs.
func WithClock(now func() time.Time) InspectionOption {
	return func(s *InspectionServiceImpl) {
		s.now = now
	}
}

// InspectionServiceImpl implements InspectionService.
type InspectionServiceImpl struct {
	calc          PlanCalculator
	repo          repository.InspectionRepositoryInterface
	photos        storage.PhotoStore
	maxPhotoBytes int64
	now           func() time.Time
}

// NewInspectionService creates a new inspection service.
func NewInspectionService(
	calc PlanCalculator,
	repo repository.InspectionRepositoryInterface,
	photos storage.PhotoStore,
	opts ...InspectionOption,
) *InspectionServiceImpl {
	s := &InspectionServiceImpl{
		calc:          calc,
		repo:          repo,
		photos:        photos,
		maxPhotoBytes: DefaultMaxPhotoBytes,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create judges the lot and stores the resulting report.
func (s *InspectionServiceImpl) Create(ctx context.Context, req *dto.CreateInspectionRequest, inspectorID string) (*model.Inspection, error) {
	result, verdict, err := s.calc.Judge(req.Shape(), req.QualityLevel, req.DefectsFound)
	if err != nil {
		return nil, err
	}

	now := s.now()
	insp := &model.Inspection{
		ReportID:     model.NewReportID(req.Batch.PartID, now),
		Batch:        req.Batch,
		Sampling:     result,
		DefectsFound: req.DefectsFound,
		Verdict:      verdict,
		VerdictText:  verdict.Summary(),
		DefectTypes:  model.DefectTypeList(req.DefectTypes, req.OtherDefect, req.OtherDefectNotes),
		Photos:       []model.PhotoRef{},
		InspectorID:  inspectorID,
		InspectedAt:  now,
	}

	if err := s.repo.Create(ctx, insp); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrReportConflict, insp.ReportID)
		}
		return nil, fmt.Errorf("failed to store inspection: %w", err)
	}
	return insp, nil
}

// Get returns a report by ID.
func (s *InspectionServiceImpl) Get(ctx context.Context, id string) (*model.Inspection, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	insp, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return insp, nil
}

// List returns the most recent reports.
func (s *InspectionServiceImpl) List(ctx context.Context, limit int) ([]model.Inspection, error) {
	return s.repo.List(ctx, limit)
}

// AddPhoto stores the blob first and then attaches its reference. If the
// reference cannot be attached the blob is removed again.
func (s *InspectionServiceImpl) AddPhoto(ctx context.Context, id string, upload PhotoUpload) (*model.PhotoRef, error) {
	ref, err := s.addPhoto(ctx, id, upload)
	metrics.RecordPhoto("upload", photoResult(err))
	return ref, err
}

func (s *InspectionServiceImpl) addPhoto(ctx context.Context, id string, upload PhotoUpload) (*model.PhotoRef, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkUpload(upload); err != nil {
		return nil, err
	}

	insp, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !insp.CanAddPhoto() {
		return nil, ErrPhotoLimitReached
	}

	ref := model.PhotoRef{
		ID:          uuid.NewString(),
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		UploadedAt:  s.now(),
	}
	ref.ObjectKey = photoKey(oid, ref.ID, upload.ContentType)

	if err := s.photos.Put(ctx, ref.ObjectKey, upload.Body, upload.Size, upload.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	if err := s.repo.AddPhoto(ctx, oid, ref); err != nil {
		if delErr := s.photos.Delete(context.WithoutCancel(ctx), ref.ObjectKey); delErr != nil {
			log.Warn().Err(delErr).Str("object_key", ref.ObjectKey).Msg("failed to remove orphaned photo")
		}
		return nil, mapRepoErr(err)
	}
	return &ref, nil
}

// GetPhoto opens a stored photo. The caller closes the reader.
func (s *InspectionServiceImpl) GetPhoto(ctx context.Context, id, photoID string) (io.ReadCloser, model.PhotoRef, error) {
	insp, err := s.Get(ctx, id)
	if err != nil {
		return nil, model.PhotoRef{}, err
	}
	ref, ok := insp.Photo(photoID)
	if !ok {
		return nil, model.PhotoRef{}, ErrPhotoNotFound
	}

	rc, _, err := s.photos.Get(ctx, ref.ObjectKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, model.PhotoRef{}, ErrPhotoNotFound
	}
	if err != nil {
		return nil, model.PhotoRef{}, err
	}
	return rc, ref, nil
}

// RemovePhoto detaches a photo and deletes its blob.
func (s *InspectionServiceImpl) RemovePhoto(ctx context.Context, id, photoID string) error {
	err := s.removePhoto(ctx, id, photoID)
	metrics.RecordPhoto("remove", photoResult(err))
	return err
}

func (s *InspectionServiceImpl) removePhoto(ctx context.Context, id, photoID string) error {
	insp, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	ref, ok := insp.Photo(photoID)
	if !ok {
		return ErrPhotoNotFound
	}

	if err := s.repo.RemovePhoto(ctx, insp.ID, photoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	if err := s.photos.Delete(ctx, ref.ObjectKey); err != nil {
		log.Warn().Err(err).Str("object_key", ref.ObjectKey).Msg("failed to delete photo blob")
	}
	return nil
}

func (s *InspectionServiceImpl) checkUpload(upload PhotoUpload) error {
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return fmt.Errorf("%w: %q", ErrUnsupportedMedia, upload.ContentType)
	}
	if upload.Size <= 0 {
		return ErrEmptyPhoto
	}
	if upload.Size > s.maxPhotoBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrPhotoTooLarge, upload.Size, s.maxPhotoBytes)
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrInspectionNotFound
	case errors.Is(err, repository.ErrPhotoLimitReached):
		return ErrPhotoLimitReached
	default:
		return err
	}
}

// photoKey builds inspections/<report>/<photo><ext>.
func photoKey(id primitive.ObjectID, photoID, contentType string) string {
	ext := ""
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	return "inspections/" + id.Hex() + "/" + photoID + ext
}

func photoResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrPhotoLimitReached):
		return "limit_reached"
	case errors.Is(err, ErrUnsupportedMedia), errors.Is(err, ErrPhotoTooLarge), errors.Is(err, ErrEmptyPhoto):
		return "rejected"
	case errors.Is(err, ErrInspectionNotFound), errors.Is(err, ErrPhotoNotFound), errors.Is(err, ErrInvalidID):
		return "not_found"
	default:
		return "error"
	}
}
