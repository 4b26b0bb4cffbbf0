package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Log levels written by the audit helpers. Request logs use the zerolog
// level names, which share these spellings.
const (
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Audit action types recorded in the log collection.
const (
	ActionCreateInspection = "create_inspection"
	ActionAddPhoto         = "add_photo"
	ActionRemovePhoto      = "remove_photo"
	ActionLogin            = "login"
	ActionRegister         = "register"
)

// LogEntry is a request or audit log document.
// Context that does not fit a named field goes into Fields.
type LogEntry struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp      time.Time              `bson:"timestamp" json:"timestamp"`
	Level          string                 `bson:"level" json:"level"`
	Message        string                 `bson:"message" json:"message"`
	RequestID      string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method         string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path           string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode     int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration       int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP             string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent      string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error          string                 `bson:"error,omitempty" json:"error,omitempty"`
	InspectorID    string                 `bson:"inspector_id,omitempty" json:"inspector_id,omitempty"`
	InspectorEmail string                 `bson:"inspector_email,omitempty" json:"inspector_email,omitempty"`
	ReportID       string                 `bson:"report_id,omitempty" json:"report_id,omitempty"`
	ActionType     string                 `bson:"action_type,omitempty" json:"action_type,omitempty"`
	Fields         map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// IsAudit reports whether the entry records an inspector action rather
// than a plain request.
func (e *LogEntry) IsAudit() bool {
	return e.ActionType != ""
}

// WithField sets one entry in Fields, allocating the map if needed.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into Fields.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{}, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions filters log queries. Empty fields match everything.
type LogQueryOptions struct {
	RequestID  string
	ReportID   string
	ActionType string
	// AuditOnly keeps entries that carry an action type.
	AuditOnly bool
	Level     string
	Method    string
	Path      string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

// ReportHistory selects the audit trail of one inspection report.
func ReportHistory(reportID string, limit int) LogQueryOptions {
	return LogQueryOptions{ReportID: reportID, AuditOnly: true, Limit: limit}
}
