package dto

import (
	"net/http"
	"strings"
	"time"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/sampling"
)

// Error codes returned in ErrorResponse.Error.
const (
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeUnprocessable    = "unprocessable"
	ErrCodeInternal         = "internal_error"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimit        = "rate_limit_exceeded"
	ErrCodeConflict         = "conflict"
	ErrCodeTimeout          = "timeout"
	ErrCodePayloadTooLarge  = "payload_too_large"
	ErrCodeUnsupportedMedia = "unsupported_media_type"
	ErrCodeUnavailable      = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data is the endpoint payload, e.g. a sampling result or an inspection report.
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2026-10-16T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse is the body of every non-2xx API response.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"Lot Size must be 2 or greater."`
	// Details maps a field name to its validation message.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-10-16T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates an ErrorResponse stamped with the current time.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID returns a copy of e carrying requestID.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnprocessableEntity:
		return ErrCodeUnprocessable
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusRequestEntityTooLarge:
		return ErrCodePayloadTooLarge
	case http.StatusUnsupportedMediaType:
		return ErrCodeUnsupportedMedia
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// QualityLevelOption is one selectable acceptable quality level.
//
// @Description AQL value and its inspector-facing label
type QualityLevelOption struct {
	Value sampling.QualityLevel `json:"value" swaggertype:"string" example:"2.5"`
	Label string                `json:"label" example:"Standard (up to 2.5% defective allowed)"`
} // @name QualityLevelOption

// QualityLevelOptions lists the supported levels from strictest to loosest.
func QualityLevelOptions() []QualityLevelOption {
	levels := sampling.QualityLevels()
	out := make([]QualityLevelOption, len(levels))
	for i, l := range levels {
		out[i] = QualityLevelOption{Value: l, Label: l.Label()}
	}
	return out
}

// OperatorsResponse is the configured operator roster.
//
// @Description Operators offered when recording a batch
type OperatorsResponse struct {
	Operators []string `json:"operators" example:"Suman,Alamin"`
} // @name OperatorsResponse

// VerdictResponse is a lot decision together with the plan behind it.
//
// @Description Sampling result, verdict and the printable verdict line
type VerdictResponse struct {
	Sampling model.SamplingResult `json:"sampling"`
	Verdict  sampling.Verdict     `json:"verdict"`
	Summary  string               `json:"summary" example:"ACCEPT Lot (Found 3 defects, Acceptance limit: 5)"`
} // @name VerdictResponse

// InspectionResponse is a stored report plus the fields as printed.
//
// @Description Inspection report with display-ready batch fields
type InspectionResponse struct {
	model.Inspection
	BatchDisplay  model.BatchInfo `json:"batch_display"`
	DefectSummary string          `json:"defect_summary" example:"Scratch, Burr"`
} // @name InspectionResponse

// NewInspectionResponse fills the display fields of insp.
func NewInspectionResponse(insp *model.Inspection) InspectionResponse {
	summary := model.NoDefectTypesNote
	if len(insp.DefectTypes) > 0 {
		summary = strings.Join(insp.DefectTypes, ", ")
	}
	return InspectionResponse{
		Inspection:    *insp,
		BatchDisplay:  insp.Batch.Display(),
		DefectSummary: summary,
	}
}

// HistoryEvent is one audit entry in a report's trail.
type HistoryEvent struct {
	Timestamp time.Time              `json:"timestamp"`
	Action    string                 `json:"action" example:"add_photo"`
	Level     string                 `json:"level" example:"info"`
	Message   string                 `json:"message" example:"Photo attached"`
	Inspector string                 `json:"inspector,omitempty" example:"qc@example.com"`
	Error     string                 `json:"error,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
} // @name HistoryEvent

// HistoryResponse lists the newest audit events of a report. Total counts
// every stored event, which may exceed len(Events).
//
// @Description Audit trail of one inspection report, newest first
type HistoryResponse struct {
	ReportID string         `json:"report_id" example:"6710a3c2f1d2e3a4b5c6d7e8"`
	Total    int64          `json:"total" example:"3"`
	Events   []HistoryEvent `json:"events"`
} // @name HistoryResponse

// NewHistoryResponse keeps only audit entries from entries.
func NewHistoryResponse(reportID string, total int64, entries []model.LogEntry) HistoryResponse {
	events := make([]HistoryEvent, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if !e.IsAudit() {
			continue
		}
		inspector := e.InspectorEmail
		if inspector == "" {
			inspector = e.InspectorID
		}
		events = append(events, HistoryEvent{
			Timestamp: e.Timestamp,
			Action:    e.ActionType,
			Level:     e.Level,
			Message:   e.Message,
			Inspector: inspector,
			Error:     e.Error,
			Fields:    e.Fields,
		})
	}
	return HistoryResponse{ReportID: reportID, Total: total, Events: events}
}
