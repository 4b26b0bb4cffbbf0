package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/i18n"
	"github.com/inspectwise/inspection-service/internal/repository"
	"github.com/inspectwise/inspection-service/internal/sampling"
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/inspectwise/inspection-service/internal/storage"
)

// errorMapping pairs a sentinel error with the status and message key it is answered with.
type errorMapping struct {
	target error
	status int
	key    string
}

// errorMappings is checked in order; the first errors.Is match wins. Quality
// levels are rejected while decoding, so an invalid input reaching the
// calculator is the packaging.
var errorMappings = []errorMapping{
	{sampling.ErrLotSizeTooSmall, http.StatusBadRequest, i18n.ErrKeyLotSizeTooSmall},
	{sampling.ErrInvalidInput, http.StatusBadRequest, i18n.ErrKeyInvalidLotShape},
	{sampling.ErrNoPlanForInputs, http.StatusUnprocessableEntity, i18n.ErrKeyNoSamplingPlan},
	{sampling.ErrContainerTooSmall, http.StatusUnprocessableEntity, i18n.ErrKeyContainerTooSmall},

	{service.ErrInvalidID, http.StatusNotFound, i18n.ErrKeyInspectionNotFound},
	{service.ErrInspectionNotFound, http.StatusNotFound, i18n.ErrKeyInspectionNotFound},
	{service.ErrPhotoNotFound, http.StatusNotFound, i18n.ErrKeyPhotoNotFound},
	{service.ErrReportConflict, http.StatusConflict, i18n.ErrKeyConflict},
	{service.ErrPhotoLimitReached, http.StatusConflict, i18n.ErrKeyPhotoLimitReached},
	{service.ErrUnsupportedMedia, http.StatusUnsupportedMediaType, i18n.ErrKeyPhotoNotImage},
	{service.ErrPhotoTooLarge, http.StatusRequestEntityTooLarge, i18n.ErrKeyPhotoTooLarge},
	{service.ErrEmptyPhoto, http.StatusBadRequest, i18n.ErrKeyPhotoMissing},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials},
	{service.ErrInspectorExists, http.StatusConflict, i18n.ErrKeyEmailAlreadyInUse},
	{service.ErrInvalidToken, http.StatusUnauthorized, i18n.ErrKeyInvalidToken},

	{repository.ErrUnavailable, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
	{storage.ErrUnavailable, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, i18n.ErrKeyTimeout},
}

// classify returns the status and message key for err.
func classify(err error) (int, string) {
	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Key
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.key
		}
	}
	return http.StatusInternalServerError, i18n.ErrKeyInternalError
}

// respondError writes the error envelope for err. Validation errors carry
// the offending field in details.
func respondError(c *gin.Context, err error) {
	status, key := classify(err)
	builder := NewResponseBuilder(c)

	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		builder.ErrorWithDetails(status, key, err, map[string]string{ve.Field: ve.Message})
		return
	}
	builder.Error(status, key, err)
}

// respondBindError answers a request body that could not be decoded. A
// quality level outside the supported set fails inside JSON decoding and
// gets its own message.
func respondBindError(c *gin.Context, err error) {
	if errors.Is(err, sampling.ErrInvalidInput) {
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidQualityLevel, err,
			map[string]string{"quality_level": "must be one of 1.0, 2.5, 4.0"})
		return
	}
	NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}
