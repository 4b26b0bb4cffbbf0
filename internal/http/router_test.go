package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/mocks"
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewRouter(t *testing.T) {
	calculator := service.NewPlanCalculatorService()
	healthHandler := NewHealthHandler()

	tests := []struct {
		name string
		cfg  RouterConfig
		test func(*testing.T, *gin.Engine)
	}{
		{
			name: "creates router with default config",
			cfg:  DefaultRouterConfig(),
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "api key required when auth enabled",
			cfg: RouterConfig{
				RateLimit:  100,
				RateWindow: time.Minute,
				EnableAuth: true,
				APIKeys:    map[string]bool{"test-key": true},
				Calculator: calculator,
			},
			test: func(t *testing.T, router *gin.Engine) {
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quality-levels", nil))
				assert.Equal(t, http.StatusUnauthorized, w.Code)

				req := httptest.NewRequest(http.MethodGet, "/api/quality-levels", nil)
				req.Header.Set("X-API-Key", "test-key")
				w = httptest.NewRecorder()
				router.ServeHTTP(w, req)
				assert.Equal(t, http.StatusOK, w.Code)
			},
		},
		{
			name: "idempotent replay",
			cfg: RouterConfig{
				RateLimit:         100,
				RateWindow:        time.Minute,
				EnableIdempotency: true,
				Calculator:        calculator,
			},
			test: func(t *testing.T, router *gin.Engine) {
				body := `{"num_boxes": 10, "pieces_per_box": 40, "quality_level": "2.5"}`
				send := func() *httptest.ResponseRecorder {
					req := httptest.NewRequest(http.MethodPost, "/api/sampling-plan", strings.NewReader(body))
					req.Header.Set("Content-Type", "application/json")
					req.Header.Set("Idempotency-Key", "plan-1")
					w := httptest.NewRecorder()
					router.ServeHTTP(w, req)
					return w
				}
				first, second := send(), send()
				assert.Equal(t, http.StatusOK, first.Code)
				assert.Equal(t, http.StatusOK, second.Code)
				assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
				assert.Equal(t, first.Body.String(), second.Body.String())
			},
		},
		{
			name: "rate limiting",
			cfg: RouterConfig{
				RateLimit:  1,
				RateWindow: time.Minute,
			},
			test: func(t *testing.T, router *gin.Engine) {
				codes := make([]int, 2)
				for i := range codes {
					w := httptest.NewRecorder()
					router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
					codes[i] = w.Code
				}
				assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(healthHandler, tt.cfg)
			if tt.test != nil {
				tt.test(t, router)
			}
		})
	}
}

func TestRouter_Endpoints(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.Calculator = service.NewPlanCalculatorService()
	router := NewRouter(NewHealthHandler(), cfg)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"healthz endpoint", http.MethodGet, "/healthz", http.StatusOK},
		{"readyz endpoint", http.MethodGet, "/readyz", http.StatusOK},
		{"metrics endpoint", http.MethodGet, "/metrics", http.StatusOK},
		{"swagger endpoint", http.MethodGet, "/swagger/index.html", http.StatusOK},
		{"quality levels endpoint", http.MethodGet, "/api/quality-levels", http.StatusOK},
		{"sampling plan without body", http.MethodPost, "/api/sampling-plan", http.StatusBadRequest},
		{"inspections without a report store", http.MethodGet, "/api/inspections", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_JWTMode(t *testing.T) {
	authService := mocks.NewMockAuthService(t)
	inspections := mocks.NewMockInspectionService(t)

	cfg := DefaultRouterConfig()
	cfg.Calculator = service.NewPlanCalculatorService()
	cfg.AuthService = authService
	cfg.Inspections = inspections
	router := NewRouter(NewHealthHandler(), cfg)

	t.Run("sampling stays public", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sampling-table", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reports need a token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/inspections", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("reports listed for an authenticated inspector", func(t *testing.T) {
		authService.On("ValidateToken", mock.Anything, "token").Return(&dto.Claims{Email: "qc@example.com"}, nil).Once()
		inspections.On("List", mock.Anything, defaultListLimit).Return([]model.Inspection{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/inspections", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
