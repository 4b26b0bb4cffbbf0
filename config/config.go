// Package config provides configuration management for the inspection service.
package config

import (
	"errors"
	"fmt"
	"time"
)

// defaultJWTSecret must be replaced before JWT auth is switched on.
const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds the complete application configuration.
type Config struct {
	Server     ServerConfig
	Cache      CacheConfig
	Auth       AuthConfig
	Database   DatabaseConfig
	Storage    StorageConfig
	Inspection InspectionConfig

	// Invalid lists variables that were set but could not be parsed. Their
	// defaults were used instead.
	Invalid []string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// CacheConfig holds the sampling result cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds authentication configuration. API keys and JWT are
// alternatives; JWT wins when both are enabled.
type AuthConfig struct {
	Enabled        bool
	APIKeys        map[string]bool
	JWTEnabled     bool
	JWTSecretKey   string
	AccessTokenTTL time.Duration
}

// BreakerConfig tunes the circuit breaker in front of a remote store.
type BreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	Timeout          time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	Breaker      BreakerConfig
}

// StorageConfig holds the photo store configuration. With MinIO disabled
// photos are kept in memory.
type StorageConfig struct {
	MinIOEnabled  bool
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	MaxPhotoBytes int64
	Breaker       BreakerConfig
}

// InspectionConfig holds shop-floor settings.
type InspectionConfig struct {
	// Operators is the roster offered to clients when recording a batch.
	Operators []string
}

// Load creates a Config from environment variables.
func Load() Config {
	env := &envReader{}

	cfg := Config{
		Server: ServerConfig{
			Port:           env.getString("PORT", "8080"),
			RateLimit:      env.getInt("RATE_LIMIT", 100),
			RateWindow:     env.getDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: env.getDuration("REQUEST_TIMEOUT", 15*time.Second),
			CORSOrigins:    withDefaultOrigins(splitNames(env.getString("CORS_ORIGINS", ""))),
			SwaggerUser:    env.getString("SWAGGER_USER", ""),
			SwaggerPass:    env.getString("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size: env.getInt("CACHE_SIZE", 1000),
			TTL:  env.getDuration("CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Enabled:        env.getBool("AUTH_ENABLED", false),
			APIKeys:        keySet(splitNames(env.getString("API_KEYS", ""))),
			JWTEnabled:     env.getBool("JWT_AUTH_ENABLED", false),
			JWTSecretKey:   env.getString("JWT_SECRET_KEY", defaultJWTSecret),
			AccessTokenTTL: env.getDuration("JWT_ACCESS_TOKEN_TTL", 8*time.Hour),
		},
		Database: DatabaseConfig{
			URI:          env.getString("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: env.getString("MONGODB_DATABASE", "inspection_service"),
			LogsTTL:      env.getDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:      env.getBool("MONGODB_ENABLED", false),
			Breaker:      env.getBreaker("CIRCUIT_BREAKER", BreakerConfig{5, 2, 30 * time.Second}),
		},
		Storage: StorageConfig{
			MinIOEnabled:  env.getBool("MINIO_ENABLED", false),
			Endpoint:      env.getString("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:     env.getString("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey:     env.getString("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:        env.getString("MINIO_BUCKET", "inspection-photos"),
			UseSSL:        env.getBool("MINIO_USE_SSL", false),
			MaxPhotoBytes: int64(env.getInt("MAX_PHOTO_BYTES", 10<<20)),
			Breaker:       env.getBreaker("MINIO_CIRCUIT_BREAKER", BreakerConfig{3, 1, 15 * time.Second}),
		},
		Inspection: InspectionConfig{
			Operators: splitNames(env.getString("OPERATORS", "")),
		},
	}
	cfg.Invalid = env.invalid
	return cfg
}

// Validate reports settings the service cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Server.RateLimit <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT must be positive, got %d", c.Server.RateLimit))
	}
	if c.Cache.Size <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_SIZE must be positive, got %d", c.Cache.Size))
	}
	if c.Storage.MaxPhotoBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_PHOTO_BYTES must be positive, got %d", c.Storage.MaxPhotoBytes))
	}
	if c.Auth.JWTEnabled && c.Auth.JWTSecretKey == defaultJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET_KEY must be set when JWT_AUTH_ENABLED is true"))
	}
	if c.Auth.Enabled && !c.Auth.JWTEnabled && len(c.Auth.APIKeys) == 0 {
		errs = append(errs, errors.New("API_KEYS must list at least one key when AUTH_ENABLED is true"))
	}
	for name, b := range map[string]BreakerConfig{"CIRCUIT_BREAKER": c.Database.Breaker, "MINIO_CIRCUIT_BREAKER": c.Storage.Breaker} {
		if b.FailureThreshold < 1 || b.SuccessThreshold < 1 {
			errs = append(errs, fmt.Errorf("%s thresholds must be at least 1", name))
		}
	}
	return errors.Join(errs...)
}

// withDefaultOrigins prepends the local development origins.
func withDefaultOrigins(extra []string) []string {
	return append([]string{"http://localhost:3000", "http://127.0.0.1:3000"}, extra...)
}

func keySet(keys []string) map[string]bool {
	if len(keys) == 0 {
		return nil
	}
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
