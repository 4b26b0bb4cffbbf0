package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLogQueryOptions_Filter(t *testing.T) {
	from := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
	to := from.Add(8 * time.Hour)

	tests := []struct {
		name     string
		opts     LogQueryOptions
		expected bson.D
	}{
		{name: "empty matches everything", opts: LogQueryOptions{}, expected: bson.D{}},
		{
			name: "report trail",
			opts: LogQueryOptions{ReportID: "Report_BR-1120_20261014_093015", ActionType: "add_photo"},
			expected: bson.D{
				{Key: "report_id", Value: "Report_BR-1120_20261014_093015"},
				{Key: "action_type", Value: "add_photo"},
			},
		},
		{
			name: "audit entries of one report",
			opts: LogQueryOptions{ReportID: "6710a3c2f1d2e3a4b5c6d7e8", AuditOnly: true},
			expected: bson.D{
				{Key: "report_id", Value: "6710a3c2f1d2e3a4b5c6d7e8"},
				{Key: "action_type", Value: bson.D{{Key: "$exists", Value: true}}},
			},
		},
		{
			name:     "explicit action wins over audit only",
			opts:     LogQueryOptions{ActionType: "remove_photo", AuditOnly: true},
			expected: bson.D{{Key: "action_type", Value: "remove_photo"}},
		},
		{
			name:     "path is a literal case-insensitive match",
			opts:     LogQueryOptions{Path: "/api/inspections/(x)"},
			expected: bson.D{{Key: "path", Value: primitive.Regex{Pattern: `/api/inspections/\(x\)`, Options: "i"}}},
		},
		{
			name:     "open ended window",
			opts:     LogQueryOptions{Level: "error", StartTime: &from},
			expected: bson.D{{Key: "level", Value: "error"}, {Key: "timestamp", Value: bson.D{{Key: "$gte", Value: from}}}},
		},
		{
			name: "closed window",
			opts: LogQueryOptions{Method: "POST", StartTime: &from, EndTime: &to},
			expected: bson.D{
				{Key: "method", Value: "POST"},
				{Key: "timestamp", Value: bson.D{{Key: "$gte", Value: from}, {Key: "$lte", Value: to}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.filter())
		})
	}
}

func TestLogQueryOptions_PageSize(t *testing.T) {
	assert.Equal(t, int64(maxLogPage), LogQueryOptions{}.pageSize())
	assert.Equal(t, int64(20), LogQueryOptions{Limit: 20}.pageSize())
	assert.Equal(t, int64(maxLogPage), LogQueryOptions{Limit: 10_000}.pageSize())
	assert.Equal(t, int64(maxLogPage), LogQueryOptions{Limit: -1}.pageSize())
}
