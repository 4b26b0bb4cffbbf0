//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/inspectwise/inspection-service/internal/circuitbreaker"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/repository"
	"github.com/inspectwise/inspection-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingService_AuditTrail_Integration(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongoContainer.Cleanup(ctx) })

	db, err := repository.NewMongoDB(mongoContainer.URI, testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(ctx) })
	require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))

	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             "mongodb-logs",
	})
	svc := NewLoggingService(repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), breaker))

	const reportID = "Report_P-100_20260114_093012"
	base := time.Now().Add(-time.Minute).Truncate(time.Millisecond)

	created := &model.LogEntry{
		Timestamp:   base,
		Level:       "info",
		Message:     "Inspection recorded",
		ReportID:    reportID,
		ActionType:  model.ActionCreateInspection,
		InspectorID: "6710a3c2f1d2e3a4b5c6d7e8",
		Fields:      map[string]interface{}{"verdict": "REJECT", "code_letter": "H"},
	}
	require.NoError(t, svc.CreateLog(ctx, created))
	assert.False(t, created.ID.IsZero())

	require.NoError(t, svc.CreateLogs(ctx, []*model.LogEntry{
		{Timestamp: base.Add(time.Second), Level: "info", Message: "Photo added", ReportID: reportID, ActionType: model.ActionAddPhoto},
		{Timestamp: base.Add(2 * time.Second), Level: "info", Message: "Photo added", ReportID: reportID, ActionType: model.ActionAddPhoto},
		{Timestamp: base.Add(3 * time.Second), Level: "warn", Message: "Photo removed", ReportID: reportID, ActionType: model.ActionRemovePhoto},
		{Timestamp: base.Add(4 * time.Second), Level: "info", Message: "POST /api/sampling-plan", Method: "POST", Path: "/api/sampling-plan", StatusCode: 200},
	}))

	t.Run("report trail newest first", func(t *testing.T) {
		entries, err := svc.QueryLogs(ctx, model.LogQueryOptions{ReportID: reportID})
		require.NoError(t, err)
		require.Len(t, entries, 4)
		assert.Equal(t, model.ActionRemovePhoto, entries[0].ActionType)
		assert.Equal(t, model.ActionCreateInspection, entries[3].ActionType)
		assert.Equal(t, "REJECT", entries[3].Fields["verdict"])
		assert.Equal(t, created.ID, entries[3].ID)
	})

	t.Run("filter by action", func(t *testing.T) {
		count, err := svc.CountLogs(ctx, model.LogQueryOptions{ReportID: reportID, ActionType: model.ActionAddPhoto})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("path match and paging", func(t *testing.T) {
		entries, err := svc.QueryLogs(ctx, model.LogQueryOptions{Path: "sampling-plan"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 200, entries[0].StatusCode)

		page, err := svc.QueryLogs(ctx, model.LogQueryOptions{ReportID: reportID, Limit: 2, Skip: 1})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "Photo added", page[0].Message)
	})

	t.Run("time window", func(t *testing.T) {
		from := base.Add(500 * time.Millisecond)
		to := base.Add(2500 * time.Millisecond)
		count, err := svc.CountLogs(ctx, model.LogQueryOptions{StartTime: &from, EndTime: &to})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	assert.Equal(t, circuitbreaker.StateClosed, breaker.State())
}
