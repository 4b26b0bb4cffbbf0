// Package app provides authentication initialization.
package app

import (
	"github.com/inspectwise/inspection-service/config"
	"github.com/inspectwise/inspection-service/internal/repository"
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/rs/zerolog/log"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// InitializeAuth returns the JWT auth service, or nil when JWT auth is off.
// Without a database, accounts live in memory and are lost on restart.
func InitializeAuth(cfg config.AuthConfig, db *DatabaseComponents) service.AuthService {
	if !cfg.Enabled || !cfg.JWTEnabled {
		return nil
	}

	if cfg.JWTSecretKey == "" || cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn().Msg("JWT_SECRET_KEY is not set - using the development default")
	}

	var inspectors repository.InspectorRepositoryInterface
	if db != nil {
		inspectors = db.Inspectors
	} else {
		log.Warn().Msg("JWT auth enabled without MongoDB - inspector accounts are kept in memory")
		inspectors = repository.NewMemoryInspectorRepository()
	}

	secret := cfg.JWTSecretKey
	if secret == "" {
		secret = defaultJWTSecret
	}
	return service.NewAuthService(inspectors, service.NewTokenService(secret, cfg.AccessTokenTTL))
}
