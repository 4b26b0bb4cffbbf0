package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/service"
)

const auditWriteTimeout = 5 * time.Second

// AuditLog records an inspector action such as creating a report or
// attaching a photo. The write happens in the background.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, reportID, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, model.LogLevelInfo, actionType, reportID, message, fields)
	store(loggingService, entry)
}

// AuditLogError records a failed inspector action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, reportID, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, model.LogLevelError, actionType, reportID, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	store(loggingService, entry)
}

// auditEntry copies fields so callers may reuse their map.
func auditEntry(c *gin.Context, level, actionType, reportID, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:      time.Now(),
		Level:          level,
		Message:        message,
		RequestID:      GetRequestID(c),
		Method:         c.Request.Method,
		Path:           c.Request.URL.Path,
		IP:             c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		InspectorID:    c.GetString(InspectorIDKey),
		InspectorEmail: c.GetString(InspectorEmailKey),
		ReportID:       reportID,
		ActionType:     actionType,
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}

// store hands the entry to the async logger when one is running and falls
// back to a single background write otherwise.
func store(loggingService service.LoggingService, entry *model.LogEntry) {
	if al := GetAsyncLogger(); al != nil {
		al.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
