package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/i18n"
	"github.com/inspectwise/inspection-service/internal/middleware"
)

// Envelopes are pooled; gin serialises synchronously, so an envelope can be
// returned as soon as c.JSON returns.
var (
	successResponsePool = sync.Pool{New: func() interface{} { return new(dto.SuccessResponse) }}
	errorResponsePool   = sync.Pool{New: func() interface{} { return new(dto.ErrorResponse) }}
)

func getSuccessResponse() *dto.SuccessResponse {
	return successResponsePool.Get().(*dto.SuccessResponse)
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	return errorResponsePool.Get().(*dto.ErrorResponse)
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// ResponseBuilder writes the standard success and error envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in a SuccessResponse stamped with the request ID.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	defer putSuccessResponse(resp)

	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()
	b.c.JSON(statusCode, resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with an ErrorResponse whose message is messageKey translated
// for the caller's Accept-Language. err, when set, is attached to the gin
// context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, err, nil)
}

// ErrorWithDetails is Error plus a map of field name to problem.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, err error, details map[string]string) {
	resp := getErrorResponse()
	defer putErrorResponse(resp)

	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()
	resp.Details = details

	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)
}

// Validator is implemented by request DTOs that check their own fields.
type Validator interface {
	Validate() error
}

// BuildRequest binds the JSON body of c into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate is BuildRequest followed by Validate when T
// implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// decode binds and validates the body of c. On failure it has already
// answered the request and returns false.
func decode[T any](c *gin.Context) (*T, bool) {
	req, err := BuildRequestAndValidate[T](c)
	if err == nil {
		return req, true
	}
	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		respondError(c, err)
	} else {
		respondBindError(c, err)
	}
	return nil, false
}
