// Package app provides photo storage initialization.
package app

import (
	"context"
	"time"

	"github.com/inspectwise/inspection-service/config"
	"github.com/inspectwise/inspection-service/internal/circuitbreaker"
	"github.com/inspectwise/inspection-service/internal/http"
	"github.com/inspectwise/inspection-service/internal/storage"
	"github.com/rs/zerolog/log"
)

const storageConnectTimeout = 10 * time.Second

// StorageComponents holds the photo store and, for remote stores, its
// readiness check and circuit breaker.
type StorageComponents struct {
	Photos  storage.PhotoStore
	Checker http.HealthChecker
	Breaker *circuitbreaker.CircuitBreaker
}

// InitializeStorage connects to MinIO when enabled. An unreachable endpoint
// falls back to the in-memory store so the service still starts.
func InitializeStorage(ctx context.Context, cfg config.StorageConfig) *StorageComponents {
	if !cfg.MinIOEnabled {
		return &StorageComponents{Photos: storage.NewMemoryStore()}
	}

	ctx, cancel := context.WithTimeout(ctx, storageConnectTimeout)
	defer cancel()

	store, err := storage.NewMinIOStore(ctx, storage.MinIOConfig{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Bucket:    cfg.Bucket,
		UseSSL:    cfg.UseSSL,
	})
	if err != nil {
		log.Error().Err(err).Str("endpoint", cfg.Endpoint).Msg("Failed to connect to MinIO - keeping photos in memory")
		return &StorageComponents{Photos: storage.NewMemoryStore()}
	}

	log.Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("Connected to MinIO")
	cb := newBreaker(cfg.Breaker, "minio-photos", storage.IsFailure)
	return &StorageComponents{
		Photos:  storage.NewGuardedStore(store, cb),
		Checker: http.HealthCheckerFunc(store.HealthCheck),
		Breaker: cb,
	}
}
