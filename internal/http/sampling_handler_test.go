package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/i18n"
	"github.com/inspectwise/inspection-service/internal/mocks"
	"github.com/inspectwise/inspection-service/internal/sampling"
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupSamplingRouter(operators ...string) *gin.Engine {
	cfg := DefaultRouterConfig()
	cfg.Calculator = service.NewPlanCalculatorService()
	cfg.Operators = operators
	return NewRouter(NewHealthHandler(), cfg)
}

func setupSamplingRouterWithMock(t *testing.T) (*gin.Engine, *mocks.MockPlanCalculator) {
	calc := &mocks.MockPlanCalculator{}
	t.Cleanup(func() { calc.AssertExpectations(t) })
	cfg := DefaultRouterConfig()
	cfg.Calculator = calc
	return NewRouter(NewHealthHandler(), cfg), calc
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) dto.SuccessResponse {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func message(key string) string {
	return i18n.GetTranslator().Translate(key, i18n.DefaultLocale)
}

func TestSamplingPlan(t *testing.T) {
	router := setupSamplingRouter()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "ten boxes of forty at standard level",
			body:           `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "2.5"}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var result model.SamplingResult
				resp := decodeData(t, w, &result)
				assert.NotEmpty(t, resp.RequestID)
				assert.Equal(t, 400, result.LotSize)
				assert.Equal(t, sampling.CodeLetter("H"), result.Plan.CodeLetter)
				assert.Equal(t, 50, result.Plan.SampleSize)
				assert.Equal(t, 3, result.Plan.AcceptanceNumber)
				assert.Equal(t, 4, result.Plan.RejectionNumber)
				assert.Equal(t, 3, result.Instruction.ContainersToOpen)
				assert.Equal(t, 20, result.Instruction.UnitsPerOpenedContainer)
				assert.Equal(t, 10, result.Instruction.FinalContainerRemainder)
				assert.False(t, result.Instruction.FullInspection)
				assert.Empty(t, result.Note)
			},
		},
		{
			name:           "numeric quality level",
			body:           `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": 4}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var result model.SamplingResult
				decodeData(t, w, &result)
				assert.Equal(t, sampling.QualityLow, result.Plan.QualityLevel)
				assert.Equal(t, 5, result.Plan.AcceptanceNumber)
			},
		},
		{
			name:           "sample covers the lot",
			body:           `{"num_boxes": 2, "pieces_per_box": 1, "quality_level": "1.0"}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var result model.SamplingResult
				decodeData(t, w, &result)
				assert.True(t, result.Instruction.FullInspection)
				assert.Equal(t, 2, result.Instruction.TotalUnits)
				assert.Equal(t, model.FullInspectionNote, result.Note)
			},
		},
		{
			name:           "lot of one unit",
			body:           `{"num_boxes": 1, "pieces_per_box": 1, "quality_level": "2.5"}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Equal(t, message(i18n.ErrKeyLotSizeTooSmall), resp.Message)
			},
		},
		{
			name:           "zero boxes",
			body:           `{"num_boxes": 0, "pieces_per_box": 40, "quality_level": "2.5"}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, message(i18n.ErrKeyInvalidLotShape), resp.Message)
				assert.Contains(t, resp.Details, "num_boxes")
			},
		},
		{
			name:           "unsupported quality level",
			body:           `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "3.0"}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, message(i18n.ErrKeyInvalidQualityLevel), resp.Message)
				assert.Contains(t, resp.Details, "quality_level")
			},
		},
		{
			name:           "missing quality level",
			body:           `{"num_boxes": 10, "pieces_per_box": 40}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, message(i18n.ErrKeyInvalidQualityLevel), resp.Message)
			},
		},
		{
			name:           "empty quality level",
			body:           `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": ""}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, message(i18n.ErrKeyInvalidQualityLevel), resp.Message)
				assert.Contains(t, resp.Details, "quality_level")
			},
		},
		{
			name:           "single piece boxes cannot be split",
			body:           `{"num_boxes": 10, "pieces_per_box": 1, "quality_level": "2.5"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeUnprocessable, resp.Error)
				assert.Equal(t, message(i18n.ErrKeyContainerTooSmall), resp.Message)
			},
		},
		{
			name:           "malformed body",
			body:           `{"num_boxes": ten}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, message(i18n.ErrKeyInvalidRequestBody), resp.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/sampling-plan", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			tt.checkResponse(t, w)
		})
	}
}

func TestVerdict(t *testing.T) {
	router := setupSamplingRouter()

	tests := []struct {
		name            string
		body            string
		expectedStatus  int
		expectedOutcome sampling.Outcome
		expectedSummary string
	}{
		{
			name:            "at acceptance number",
			body:            `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "2.5", "defects_found": 3}`,
			expectedStatus:  http.StatusOK,
			expectedOutcome: sampling.Accept,
			expectedSummary: "ACCEPT Lot (Found 3 defects, Acceptance limit: 3)",
		},
		{
			name:            "at rejection number",
			body:            `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "2.5", "defects_found": 4}`,
			expectedStatus:  http.StatusOK,
			expectedOutcome: sampling.Reject,
			expectedSummary: "REJECT Lot (Found 4 defects, Rejection limit: 4)",
		},
		{
			name:            "zero defects",
			body:            `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "1.0", "defects_found": 0}`,
			expectedStatus:  http.StatusOK,
			expectedOutcome: sampling.Accept,
			expectedSummary: "ACCEPT Lot (Found 0 defects, Acceptance limit: 1)",
		},
		{
			name:           "negative defects",
			body:           `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "2.5", "defects_found": -1}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/verdict", tt.body)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				resp := decodeError(t, w)
				assert.Equal(t, message(i18n.ErrKeyInvalidDefectCount), resp.Message)
				return
			}

			var result dto.VerdictResponse
			decodeData(t, w, &result)
			assert.Equal(t, tt.expectedOutcome, result.Verdict.Outcome)
			assert.Equal(t, tt.expectedSummary, result.Summary)
			assert.Equal(t, 400, result.Sampling.LotSize)
		})
	}
}

func TestSamplingPlan_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedKey    string
	}{
		{"no plan", sampling.ErrNoPlanForInputs, http.StatusUnprocessableEntity, i18n.ErrKeyNoSamplingPlan},
		{"wrapped lot size", errors.Join(errors.New("resolve"), sampling.ErrLotSizeTooSmall), http.StatusBadRequest, i18n.ErrKeyLotSizeTooSmall},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, i18n.ErrKeyInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, calc := setupSamplingRouterWithMock(t)
			calc.On("Evaluate", model.LotShape{NumContainers: 10, UnitsPerContainer: 40}, sampling.QualityStandard).
				Return(model.SamplingResult{}, tt.err).Once()

			w := postJSON(router, "/api/sampling-plan", `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "2.5"}`)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, message(tt.expectedKey), decodeError(t, w).Message)
		})
	}
}

func TestSamplingPlan_ValidationSkipsCalculator(t *testing.T) {
	router, calc := setupSamplingRouterWithMock(t)

	w := postJSON(router, "/api/sampling-plan", `{"num_boxes": -3, "pieces_per_box": 40, "quality_level": "2.5"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	calc.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything)
}

func TestQualityLevels(t *testing.T) {
	router := setupSamplingRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quality-levels", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var levels []dto.QualityLevelOption
	decodeData(t, w, &levels)
	assert.Equal(t, []dto.QualityLevelOption{
		{Value: sampling.QualityStrict, Label: "Strict (only 1% defective allowed)"},
		{Value: sampling.QualityStandard, Label: "Standard (up to 2.5% defective allowed)"},
		{Value: sampling.QualityLow, Label: "Low (up to 4% defective allowed)"},
	}, levels)
}

func TestSamplingTable(t *testing.T) {
	router := setupSamplingRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sampling-table", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var rows []sampling.TableRow
	decodeData(t, w, &rows)
	require.Len(t, rows, 15)
	assert.Equal(t, sampling.CodeLetter("A"), rows[0].CodeLetter)
	assert.Equal(t, 2, rows[0].MinLot)
	assert.Equal(t, sampling.CodeLetter("Q"), rows[14].CodeLetter)
	assert.Equal(t, 1250, rows[14].SampleSize)
}

func TestOperators(t *testing.T) {
	tests := []struct {
		name      string
		operators []string
		expected  []string
	}{
		{"configured roster", []string{"Suman Mia", "Alamin"}, []string{"Suman Mia", "Alamin"}},
		{"empty roster", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupSamplingRouter(tt.operators...)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/operators", nil))

			require.Equal(t, http.StatusOK, w.Code)
			var resp dto.OperatorsResponse
			decodeData(t, w, &resp)
			assert.Equal(t, tt.expected, resp.Operators)
		})
	}
}
