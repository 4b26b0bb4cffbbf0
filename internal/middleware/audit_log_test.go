package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/mocks"
)

const testReportID = "Report_BR-1120_20261014_093015"

func TestAuditLog(t *testing.T) {
	tests := []struct {
		name             string
		actionType       string
		reportID         string
		message          string
		fields           map[string]interface{}
		withInspector    bool
		useNilLogging    bool
		setupMocks       func(*mocks.MockLoggingService) *mock.Call
		expectAssertions bool
	}{
		{
			name:          "records the inspector and report",
			actionType:    model.ActionCreateInspection,
			reportID:      testReportID,
			message:       "Inspection recorded",
			fields:        map[string]interface{}{"outcome": "ACCEPT"},
			withInspector: true,
			setupMocks: func(m *mocks.MockLoggingService) *mock.Call {
				return m.On("CreateLog", mock.Anything, mock.MatchedBy(func(entry *model.LogEntry) bool {
					return entry.ActionType == model.ActionCreateInspection &&
						entry.Level == "info" &&
						entry.ReportID == testReportID &&
						entry.InspectorID == "6710a3c2f1d2e3a4b5c6d7e8" &&
						entry.InspectorEmail == "qc@example.com" &&
						entry.Fields["outcome"] == "ACCEPT" &&
						entry.RequestID != ""
				})).Return(nil)
			},
			expectAssertions: true,
		},
		{
			name:       "anonymous action leaves inspector blank",
			actionType: model.ActionAddPhoto,
			reportID:   testReportID,
			message:    "Photo attached",
			setupMocks: func(m *mocks.MockLoggingService) *mock.Call {
				return m.On("CreateLog", mock.Anything, mock.MatchedBy(func(entry *model.LogEntry) bool {
					return entry.ActionType == model.ActionAddPhoto &&
						entry.InspectorID == "" &&
						entry.InspectorEmail == ""
				})).Return(nil)
			},
			expectAssertions: true,
		},
		{
			name:          "nil logging service is a no-op",
			actionType:    model.ActionRemovePhoto,
			message:       "Photo removed",
			useNilLogging: true,
			setupMocks:    func(*mocks.MockLoggingService) *mock.Call { return nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			mockLoggingService := new(mocks.MockLoggingService)
			written := make(chan struct{})
			if call := tt.setupMocks(mockLoggingService); call != nil {
				call.Run(func(mock.Arguments) { close(written) })
			}

			router.Use(RequestID())
			router.POST("/test", func(c *gin.Context) {
				if tt.withInspector {
					c.Set(InspectorIDKey, "6710a3c2f1d2e3a4b5c6d7e8")
					c.Set(InspectorEmailKey, "qc@example.com")
				}
				if tt.useNilLogging {
					AuditLog(nil, c, tt.actionType, tt.reportID, tt.message, tt.fields)
				} else {
					AuditLog(mockLoggingService, c, tt.actionType, tt.reportID, tt.message, tt.fields)
				}
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			req := httptest.NewRequest(http.MethodPost, "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if tt.expectAssertions {
				select {
				case <-written:
				case <-time.After(time.Second):
					t.Fatal("audit entry was not written")
				}
				mockLoggingService.AssertExpectations(t)
			} else {
				time.Sleep(50 * time.Millisecond)
				mockLoggingService.AssertNotCalled(t, "CreateLog", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAuditLogError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockLoggingService := new(mocks.MockLoggingService)
	written := make(chan struct{})
	mockLoggingService.On("CreateLog", mock.Anything, mock.MatchedBy(func(entry *model.LogEntry) bool {
		return entry.ActionType == model.ActionLogin &&
			entry.Level == "error" &&
			entry.Error == assert.AnError.Error() &&
			entry.Fields["email"] == "qc@example.com"
	})).Run(func(mock.Arguments) { close(written) }).Return(nil)

	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		AuditLogError(mockLoggingService, c, model.ActionLogin, "", "Failed login attempt", assert.AnError,
			map[string]interface{}{"email": "qc@example.com"})
		c.Status(http.StatusUnauthorized)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	select {
	case <-written:
	case <-time.After(time.Second):
		t.Fatal("audit entry was not written")
	}
	mockLoggingService.AssertExpectations(t)
}

func TestAuditLog_UsesAsyncLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockLoggingService := new(mocks.MockLoggingService)
	mockLoggingService.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	InitAsyncLogger(mockLoggingService, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, WriteTimeout: time.Second})
	defer StopAsyncLogger()

	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		AuditLog(mockLoggingService, c, model.ActionRemovePhoto, testReportID, "Photo removed", nil)
		c.Status(http.StatusNoContent)
	})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/test", nil))

	al := GetAsyncLogger()
	StopAsyncLogger()

	assert.Equal(t, AsyncLoggerStats{Enqueued: 1, Written: 1}, al.Stats())
	mockLoggingService.AssertNumberOfCalls(t, "CreateLog", 1)
}
