package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/i18n"
	"github.com/inspectwise/inspection-service/internal/middleware"
	"github.com/inspectwise/inspection-service/internal/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/test", nil)
	middleware.RequestID()(c)
	return c, w
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		data       interface{}
		validate   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:       "sampling result",
			statusCode: http.StatusOK,
			data:       lotResult(t, 10, 40, sampling.QualityStandard),
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var result model.SamplingResult
				resp := decodeData(t, w, &result)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
				assert.Equal(t, 400, result.LotSize)
				assert.Equal(t, 50, result.Plan.SampleSize)
				assert.Equal(t, sampling.QualityStandard, result.Plan.QualityLevel)
			},
		},
		{
			name:       "custom status",
			statusCode: http.StatusCreated,
			data:       map[string]string{"id": "6710a3c2f1d2e3a4b5c6d7e8"},
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var data map[string]string
				resp := decodeData(t, w, &data)
				assert.NotEmpty(t, resp.RequestID)
				assert.Equal(t, "6710a3c2f1d2e3a4b5c6d7e8", data["id"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost)

			NewResponseBuilder(c).Success(tt.statusCode, tt.data)

			assert.Equal(t, tt.statusCode, w.Code)
			tt.validate(t, w)
		})
	}
}

func TestResponseBuilder_ShortcutStatuses(t *testing.T) {
	tests := []struct {
		name     string
		send     func(b *ResponseBuilder)
		expected int
	}{
		{"SuccessOK", func(b *ResponseBuilder) { b.SuccessOK(gin.H{"ok": true}) }, http.StatusOK},
		{"SuccessCreated", func(b *ResponseBuilder) { b.SuccessCreated(gin.H{"ok": true}) }, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet)
			tt.send(NewResponseBuilder(c))
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestResponseBuilder_Error(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		messageKey   string
		err          error
		expectedCode string
		expectedMsg  string
	}{
		{
			name:         "bad request",
			statusCode:   http.StatusBadRequest,
			messageKey:   i18n.ErrKeyLotSizeTooSmall,
			err:          errors.New("lot too small"),
			expectedCode: dto.ErrCodeInvalidRequest,
			expectedMsg:  message(i18n.ErrKeyLotSizeTooSmall),
		},
		{
			name:         "unknown key falls back to the key",
			statusCode:   http.StatusInternalServerError,
			messageKey:   "something odd happened",
			expectedCode: dto.ErrCodeInternal,
			expectedMsg:  "something odd happened",
		},
		{
			name:         "unavailable",
			statusCode:   http.StatusServiceUnavailable,
			messageKey:   i18n.ErrKeyServiceUnavailable,
			expectedCode: dto.ErrCodeFromStatus(http.StatusServiceUnavailable),
			expectedMsg:  message(i18n.ErrKeyServiceUnavailable),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost)

			NewResponseBuilder(c).Error(tt.statusCode, tt.messageKey, tt.err)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.True(t, c.IsAborted())
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMsg, resp.Message)
			assert.NotEmpty(t, resp.RequestID)
			assert.Nil(t, resp.Details)
			if tt.err != nil {
				require.Len(t, c.Errors, 1)
				assert.Equal(t, tt.err, c.Errors[0].Err)
			} else {
				assert.Empty(t, c.Errors)
			}
		})
	}
}

func TestResponseBuilder_ErrorWithDetails(t *testing.T) {
	c, w := newTestContext(http.MethodPost)

	NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidDefectCount,
		dto.ErrInvalidDefectsFound, map[string]string{"defects_found": "must be 0 or more"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, message(i18n.ErrKeyInvalidDefectCount), resp.Message)
	assert.Equal(t, map[string]string{"defects_found": "must be 0 or more"}, resp.Details)
	require.Len(t, c.Errors, 1)
}

func TestResponsePool_Reset(t *testing.T) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeInvalidRequest
	resp.Details = map[string]string{"limit": "bad"}
	resp.Timestamp = time.Now()
	putErrorResponse(resp)

	assert.Empty(t, resp.Error)
	assert.Nil(t, resp.Details)
	assert.True(t, resp.Timestamp.IsZero())

	ok := getSuccessResponse()
	ok.Data = "x"
	ok.RequestID = "req"
	putSuccessResponse(ok)

	assert.Nil(t, ok.Data)
	assert.Empty(t, ok.RequestID)
}

func TestSuccessResponse_JSON(t *testing.T) {
	data, err := json.Marshal(dto.SuccessResponse{
		Data:      model.SamplingResult{LotSize: 400},
		RequestID: "test-id",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	for _, field := range []string{`"data"`, `"request_id":"test-id"`, `"timestamp"`, `"lot_size":400`} {
		assert.Contains(t, string(data), field)
	}
}
