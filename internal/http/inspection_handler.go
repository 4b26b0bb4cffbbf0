package http

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/i18n"
	"github.com/inspectwise/inspection-service/internal/middleware"
	"github.com/inspectwise/inspection-service/internal/service"
)

const (
	// photoFormField is the multipart field carrying an uploaded photo.
	photoFormField = "photo"

	defaultListLimit = 50
	maxListLimit     = 200

	// multipartOverhead is the allowance for boundaries and part headers on top of the photo itself.
	multipartOverhead = 1 << 20
)

// InspectionHandler serves the inspection report and photo routes.
type InspectionHandler struct {
	inspections   service.InspectionService
	maxPhotoBytes int64
}

// NewInspectionHandler creates an InspectionHandler. maxPhotoBytes bounds
// the request body of a photo upload; zero selects service.DefaultMaxPhotoBytes.
func NewInspectionHandler(inspections service.InspectionService, maxPhotoBytes int64) *InspectionHandler {
	if maxPhotoBytes <= 0 {
		maxPhotoBytes = service.DefaultMaxPhotoBytes
	}
	return &InspectionHandler{
		inspections:   inspections,
		maxPhotoBytes: maxPhotoBytes,
	}
}

// loggingService returns the audit sink installed by the router, if any.
func loggingService(c *gin.Context) service.LoggingService {
	if v, exists := c.Get(loggingServiceKey); exists {
		if ls, ok := v.(service.LoggingService); ok {
			return ls
		}
	}
	return nil
}

// Create handles POST /api/inspections.
//
// @Summary      Record an inspection
// @Description  Judges the lot and stores the report with its batch details and defect types.
// @Tags         Inspections
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Param        request body dto.CreateInspectionRequest true "Finished inspection"
// @Success      201 {object} dto.SuccessResponse{data=dto.InspectionResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid lot, quality level or defect count"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      409 {object} dto.ErrorResponse "Report ID already taken"
// @Failure      422 {object} dto.ErrorResponse "No plan for the inputs"
// @Failure      503 {object} dto.ErrorResponse "Report store unavailable"
// @Security     BearerAuth
// @Router       /api/inspections [post]
func (h *InspectionHandler) Create(c *gin.Context) {
	req, ok := decode[dto.CreateInspectionRequest](c)
	if !ok {
		return
	}

	ls := loggingService(c)
	insp, err := h.inspections.Create(c.Request.Context(), req, middleware.InspectorID(c))
	if err != nil {
		middleware.AuditLogError(ls, c, model.ActionCreateInspection, "", "Failed to record inspection", err, map[string]interface{}{
			"part_id": req.Batch.PartID,
		})
		respondError(c, err)
		return
	}

	c.Set(middleware.ReportIDKey, insp.ID.Hex())
	middleware.AuditLog(ls, c, model.ActionCreateInspection, insp.ID.Hex(), "Inspection recorded", map[string]interface{}{
		"report":        insp.ReportID,
		"lot_size":      insp.Sampling.LotSize,
		"quality_level": string(insp.Sampling.Plan.QualityLevel),
		"outcome":       string(insp.Verdict.Outcome),
	})

	NewResponseBuilder(c).SuccessCreated(dto.NewInspectionResponse(insp))
}

// List handles GET /api/inspections.
//
// @Summary      List inspections
// @Description  Returns the most recent reports, newest first.
// @Tags         Inspections
// @Produce      json
// @Param        limit query int false "Maximum number of reports (1-200)" default(50)
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.InspectionResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      503 {object} dto.ErrorResponse "Report store unavailable"
// @Security     BearerAuth
// @Router       /api/inspections [get]
func (h *InspectionHandler) List(c *gin.Context) {
	limit, err := listLimit(c.Query("limit"))
	if err != nil {
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err,
			map[string]string{"limit": "must be an integer between 1 and 200"})
		return
	}

	reports, err := h.inspections.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.InspectionResponse, len(reports))
	for i := range reports {
		out[i] = dto.NewInspectionResponse(&reports[i])
	}
	NewResponseBuilder(c).SuccessOK(out)
}

func listLimit(raw string) (int, error) {
	if raw == "" {
		return defaultListLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > maxListLimit {
		return 0, errors.New("limit out of range")
	}
	return n, nil
}

// Get handles GET /api/inspections/:id.
//
// @Summary      Get an inspection
// @Tags         Inspections
// @Produce      json
// @Param        id path string true "Inspection ID"
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=dto.InspectionResponse}
// @Failure      404 {object} dto.ErrorResponse "Inspection not found"
// @Failure      503 {object} dto.ErrorResponse "Report store unavailable"
// @Security     BearerAuth
// @Router       /api/inspections/{id} [get]
func (h *InspectionHandler) Get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ReportIDKey, id)

	insp, err := h.inspections.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewInspectionResponse(insp))
}

// AddPhoto handles POST /api/inspections/:id/photos.
//
// @Summary      Attach a photo
// @Description  Uploads one image as multipart field "photo". A report holds at most 10 photos.
// @Tags         Inspections
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Inspection ID"
// @Param        photo formData file true "Image file"
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Success      201 {object} dto.SuccessResponse{data=model.PhotoRef}
// @Failure      400 {object} dto.ErrorResponse "No photo in request"
// @Failure      404 {object} dto.ErrorResponse "Inspection not found"
// @Failure      409 {object} dto.ErrorResponse "Photo limit reached"
// @Failure      413 {object} dto.ErrorResponse "Photo too large"
// @Failure      415 {object} dto.ErrorResponse "Not an image"
// @Failure      503 {object} dto.ErrorResponse "Photo store unavailable"
// @Security     BearerAuth
// @Router       /api/inspections/{id}/photos [post]
func (h *InspectionHandler) AddPhoto(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ReportIDKey, id)
	builder := NewResponseBuilder(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxPhotoBytes+multipartOverhead)
	header, err := c.FormFile(photoFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			builder.Error(http.StatusRequestEntityTooLarge, i18n.ErrKeyPhotoTooLarge, err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyPhotoMissing, err)
		return
	}

	file, err := header.Open()
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyPhotoMissing, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	ls := loggingService(c)
	ref, err := h.inspections.AddPhoto(c.Request.Context(), id, service.PhotoUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		middleware.AuditLogError(ls, c, model.ActionAddPhoto, id, "Failed to attach photo", err, map[string]interface{}{
			"file_name": header.Filename,
		})
		respondError(c, err)
		return
	}

	middleware.AuditLog(ls, c, model.ActionAddPhoto, id, "Photo attached", map[string]interface{}{
		"photo_id":  ref.ID,
		"file_name": ref.FileName,
		"size":      ref.Size,
	})
	builder.SuccessCreated(ref)
}

// GetPhoto handles GET /api/inspections/:id/photos/:photoId.
//
// @Summary      Download a photo
// @Tags         Inspections
// @Produce      image/jpeg,image/png,image/webp
// @Param        id path string true "Inspection ID"
// @Param        photoId path string true "Photo ID"
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Success      200 {file} binary
// @Failure      404 {object} dto.ErrorResponse "Inspection or photo not found"
// @Failure      503 {object} dto.ErrorResponse "Photo store unavailable"
// @Security     BearerAuth
// @Router       /api/inspections/{id}/photos/{photoId} [get]
func (h *InspectionHandler) GetPhoto(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ReportIDKey, id)

	rc, ref, err := h.inspections.GetPhoto(c.Request.Context(), id, c.Param("photoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() {
		_ = rc.Close()
	}()

	headers := map[string]string{
		"Content-Disposition": mime.FormatMediaType("inline", map[string]string{"filename": ref.FileName}),
		"Cache-Control":       "private, max-age=3600",
	}
	c.DataFromReader(http.StatusOK, ref.Size, ref.ContentType, rc, headers)
}

// RemovePhoto handles DELETE /api/inspections/:id/photos/:photoId.
//
// @Summary      Remove a photo
// @Tags         Inspections
// @Param        id path string true "Inspection ID"
// @Param        photoId path string true "Photo ID"
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Inspection or photo not found"
// @Failure      503 {object} dto.ErrorResponse "Report store unavailable"
// @Security     BearerAuth
// @Router       /api/inspections/{id}/photos/{photoId} [delete]
func (h *InspectionHandler) RemovePhoto(c *gin.Context) {
	id := c.Param("id")
	photoID := c.Param("photoId")
	c.Set(middleware.ReportIDKey, id)

	ls := loggingService(c)
	if err := h.inspections.RemovePhoto(c.Request.Context(), id, photoID); err != nil {
		middleware.AuditLogError(ls, c, model.ActionRemovePhoto, id, "Failed to remove photo", err, map[string]interface{}{
			"photo_id": photoID,
		})
		respondError(c, err)
		return
	}

	middleware.AuditLog(ls, c, model.ActionRemovePhoto, id, "Photo removed", map[string]interface{}{
		"photo_id": photoID,
	})
	c.Status(http.StatusNoContent)
}

// History handles GET /api/inspections/:id/history.
//
// @Summary      Report audit trail
// @Description  Lists who created the report and attached or removed photos, newest first. Audit writes are asynchronous, so the latest action may appear with a short delay.
// @Tags         Inspections
// @Produce      json
// @Param        id path string true "Inspection ID"
// @Param        limit query int false "Maximum number of events (1-200)" default(50)
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=dto.HistoryResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      404 {object} dto.ErrorResponse "Inspection not found"
// @Failure      503 {object} dto.ErrorResponse "Log store unavailable"
// @Security     BearerAuth
// @Router       /api/inspections/{id}/history [get]
func (h *InspectionHandler) History(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ReportIDKey, id)
	builder := NewResponseBuilder(c)

	limit, err := listLimit(c.Query("limit"))
	if err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err,
			map[string]string{"limit": "must be an integer between 1 and 200"})
		return
	}

	ls := loggingService(c)
	if ls == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, errors.New("audit log is not configured"))
		return
	}

	ctx := c.Request.Context()
	if _, err := h.inspections.Get(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	opts := model.ReportHistory(id, limit)
	entries, err := ls.QueryLogs(ctx, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := ls.CountLogs(ctx, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	builder.SuccessOK(dto.NewHistoryResponse(id, total, entries))
}
