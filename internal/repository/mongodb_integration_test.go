//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/inspectwise/inspection-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func indexSpecs(t *testing.T, coll *mongo.Collection) map[string]bson.M {
	t.Helper()
	ctx := context.Background()
	cursor, err := coll.Indexes().List(ctx)
	require.NoError(t, err)

	var docs []bson.M
	require.NoError(t, cursor.All(ctx, &docs))
	specs := make(map[string]bson.M, len(docs))
	for _, d := range docs {
		specs[d["name"].(string)] = d
	}
	return specs
}

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	t.Cleanup(func() { _ = db.Close(ctx) })

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("unique indexes", func(t *testing.T) {
		inspections := indexSpecs(t, db.Inspections)
		require.Contains(t, inspections, "report_id_1")
		assert.Equal(t, true, inspections["report_id_1"]["unique"])
		assert.Contains(t, inspections, "inspected_at_-1")

		inspectors := indexSpecs(t, db.Inspectors)
		require.Contains(t, inspectors, "email_1")
		assert.Equal(t, true, inspectors["email_1"]["unique"])

		assert.Contains(t, indexSpecs(t, db.Logs), "report_id_1_action_type_1")
	})

	t.Run("logs ttl can be changed and removed", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))
		assert.EqualValues(t, 30*24*60*60, indexSpecs(t, db.Logs)[logsTTLIndex]["expireAfterSeconds"])

		require.NoError(t, db.SetLogsTTL(ctx, 7*24*time.Hour))
		assert.EqualValues(t, 7*24*60*60, indexSpecs(t, db.Logs)[logsTTLIndex]["expireAfterSeconds"])

		require.NoError(t, db.SetLogsTTL(ctx, 0))
		assert.NotContains(t, indexSpecs(t, db.Logs), logsTTLIndex)
		require.NoError(t, db.SetLogsTTL(ctx, 0))
	})

	t.Run("reconnect keeps existing indexes", func(t *testing.T) {
		again, err := NewMongoDB(testutil.GetSharedContainerURI(), db.Database.Name())
		require.NoError(t, err)
		assert.NoError(t, again.Close(ctx))
	})
}

func TestNewMongoDB_Unreachable(t *testing.T) {
	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 500 * time.Millisecond
	cfg.ServerSelectionTimeout = 300 * time.Millisecond

	db, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "unreachable", cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
}
