package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name     string
		entry    *LogEntry
		key      string
		value    interface{}
		expected map[string]interface{}
	}{
		{
			name:     "nil fields are allocated",
			entry:    &LogEntry{ActionType: ActionAddPhoto},
			key:      "photo_id",
			value:    "a1b2",
			expected: map[string]interface{}{"photo_id": "a1b2"},
		},
		{
			name:     "existing fields are kept",
			entry:    &LogEntry{Fields: map[string]interface{}{"code_letter": "H"}},
			key:      "defects_found",
			value:    4,
			expected: map[string]interface{}{"code_letter": "H", "defects_found": 4},
		},
		{
			name:     "same key overwrites",
			entry:    &LogEntry{Fields: map[string]interface{}{"verdict": "ACCEPT"}},
			key:      "verdict",
			value:    "REJECT",
			expected: map[string]interface{}{"verdict": "REJECT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entry.WithField(tt.key, tt.value)
			assert.Same(t, tt.entry, got)
			assert.Equal(t, tt.expected, got.Fields)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := (&LogEntry{}).
		WithFields(map[string]interface{}{"lot_size": 400, "quality_level": "2.5"}).
		WithFields(map[string]interface{}{"quality_level": "1.0"}).
		WithFields(nil)

	assert.Equal(t, map[string]interface{}{"lot_size": 400, "quality_level": "1.0"}, entry.Fields)
}

func TestLogEntry_JSONOmitsEmptyContext(t *testing.T) {
	entry := LogEntry{Level: "info", Message: "Inspection recorded", ReportID: "Report_P-100_20260114_093012", ActionType: ActionCreateInspection}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Report_P-100_20260114_093012", doc["report_id"])
	assert.Equal(t, ActionCreateInspection, doc["action_type"])
	for _, key := range []string{"inspector_id", "status_code", "error", "fields"} {
		assert.NotContains(t, doc, key)
	}
}

func TestLogEntry_IsAudit(t *testing.T) {
	assert.True(t, (&LogEntry{ActionType: ActionRemovePhoto}).IsAudit())
	assert.False(t, (&LogEntry{Method: "GET", Path: "/api/quality-levels"}).IsAudit())
}

func TestReportHistory(t *testing.T) {
	opts := ReportHistory("6710a3c2f1d2e3a4b5c6d7e8", 25)

	assert.Equal(t, "6710a3c2f1d2e3a4b5c6d7e8", opts.ReportID)
	assert.True(t, opts.AuditOnly)
	assert.Equal(t, 25, opts.Limit)
	assert.Empty(t, opts.ActionType)
}
