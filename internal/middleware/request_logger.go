package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/logger"
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/rs/zerolog"
)

// ReportIDKey is set by handlers that touch a single inspection report so
// request logs can be queried by report.
const ReportIDKey = "report_id"

// RequestLogger writes one structured line per request and, when a
// logging service is configured, persists the same entry.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := requestEntry(c, start)
		level := levelForStatus(entry.StatusCode)
		entry.Level = level.String()

		log := logger.Logger()
		ev := log.WithLevel(level).
			Str("request_id", entry.RequestID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", entry.StatusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("user_agent", entry.UserAgent)
		if entry.ReportID != "" {
			ev = ev.Str("report_id", entry.ReportID)
		}
		if entry.InspectorID != "" {
			ev = ev.Str("inspector_id", entry.InspectorID)
		}
		ev.Msg(entry.Message)

		if loggingService != nil {
			store(loggingService, entry)
		}
	}
}

func requestEntry(c *gin.Context, start time.Time) *model.LogEntry {
	now := time.Now()
	return &model.LogEntry{
		Timestamp:      now,
		Message:        "HTTP request",
		RequestID:      GetRequestID(c),
		Method:         c.Request.Method,
		Path:           c.Request.URL.Path,
		StatusCode:     c.Writer.Status(),
		Duration:       now.Sub(start).Milliseconds(),
		IP:             c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		InspectorID:    c.GetString(InspectorIDKey),
		InspectorEmail: c.GetString(InspectorEmailKey),
		ReportID:       c.GetString(ReportIDKey),
	}
}

// levelForStatus logs client errors as warnings and server errors as errors.
func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
