package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/i18n"
	"github.com/inspectwise/inspection-service/internal/middleware"
	"github.com/inspectwise/inspection-service/internal/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	middleware.RequestID()(c)
	return c, w
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		expected dto.SamplingPlanRequest
	}{
		{
			name:     "string quality level",
			body:     `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "2.5"}`,
			expected: dto.SamplingPlanRequest{NumBoxes: 10, PiecesPerBox: 40, QualityLevel: sampling.QualityStandard},
		},
		{
			name:     "numeric quality level",
			body:     `{"num_boxes": 2, "pieces_per_box": 1, "quality_level": 4}`,
			expected: dto.SamplingPlanRequest{NumBoxes: 2, PiecesPerBox: 1, QualityLevel: sampling.QualityLow},
		},
		{
			name:    "unsupported quality level",
			body:    `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "6.5"}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			body:    `{"num_boxes": 10,`,
			wantErr: true,
		},
		{
			name:     "does not validate",
			body:     `{"num_boxes": 0, "pieces_per_box": 0}`,
			expected: dto.SamplingPlanRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(tt.body)

			req, err := BuildRequest[dto.SamplingPlanRequest](c)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *req)
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr error
	}{
		{
			name: "valid verdict request",
			body: `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "2.5", "defects_found": 3}`,
		},
		{
			name:        "zero boxes",
			body:        `{"num_boxes": 0, "pieces_per_box": 40, "quality_level": "2.5"}`,
			expectedErr: dto.ErrInvalidNumBoxes,
		},
		{
			name:        "zero pieces",
			body:        `{"num_boxes": 10, "pieces_per_box": 0, "quality_level": "2.5"}`,
			expectedErr: dto.ErrInvalidPiecesPerBox,
		},
		{
			name:        "missing quality level",
			body:        `{"num_boxes": 10, "pieces_per_box": 40}`,
			expectedErr: dto.ErrMissingQualityLevel,
		},
		{
			name:        "null quality level",
			body:        `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": null}`,
			expectedErr: dto.ErrMissingQualityLevel,
		},
		{
			name:        "negative defects",
			body:        `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "2.5", "defects_found": -1}`,
			expectedErr: dto.ErrInvalidDefectsFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(tt.body)

			req, err := BuildRequestAndValidate[dto.VerdictRequest](c)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 3, req.DefectsFound)
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectOK        bool
		expectedMessage string
		expectedDetails map[string]string
	}{
		{
			name:     "valid body",
			body:     `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "1.0"}`,
			expectOK: true,
		},
		{
			name:            "validation failure names the field",
			body:            `{"num_boxes": -2, "pieces_per_box": 40, "quality_level": "1.0"}`,
			expectedMessage: message(i18n.ErrKeyInvalidLotShape),
			expectedDetails: map[string]string{"num_boxes": "must be a positive integer"},
		},
		{
			name:            "unsupported quality level",
			body:            `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "0.65"}`,
			expectedMessage: message(i18n.ErrKeyInvalidQualityLevel),
			expectedDetails: map[string]string{"quality_level": "must be one of 1.0, 2.5, 4.0"},
		},
		{
			name:            "malformed body",
			body:            `not json`,
			expectedMessage: message(i18n.ErrKeyInvalidRequestBody),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := jsonContext(tt.body)

			req, ok := decode[dto.SamplingPlanRequest](c)

			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK {
				require.NotNil(t, req)
				assert.Equal(t, sampling.QualityStrict, req.QualityLevel)
				assert.False(t, c.IsAborted())
				return
			}
			assert.Nil(t, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, tt.expectedDetails, resp.Details)
		})
	}
}
