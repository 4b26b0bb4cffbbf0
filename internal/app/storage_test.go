//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/inspectwise/inspection-service/config"
	"github.com/inspectwise/inspection-service/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeStorage(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StorageConfig
	}{
		{
			name: "minio disabled",
			cfg:  config.StorageConfig{MinIOEnabled: false},
		},
		{
			name: "unreachable minio falls back to memory",
			cfg: config.StorageConfig{
				MinIOEnabled: true,
				Endpoint:     "127.0.0.1:1",
				AccessKey:    "minioadmin",
				SecretKey:    "minioadmin",
				Bucket:       "inspection-photos",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			components := InitializeStorage(ctx, tt.cfg)

			require.NotNil(t, components)
			assert.IsType(t, &storage.MemoryStore{}, components.Photos)
			assert.Nil(t, components.Checker)
			assert.Nil(t, components.Breaker)
		})
	}
}
