// Package app provides router configuration.
package app

import (
	"github.com/inspectwise/inspection-service/config"
	"github.com/inspectwise/inspection-service/internal/http"
	"github.com/inspectwise/inspection-service/internal/repository"
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/inspectwise/inspection-service/internal/storage"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the inspection service, registers readiness checks
// and assembles the router configuration.
func InitializeRouter(
	services *ServiceComponents,
	db *DatabaseComponents,
	photos *StorageComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	var loggingService service.LoggingService
	var inspections repository.InspectionRepositoryInterface = repository.NewMemoryInspectionRepository()
	if db != nil {
		loggingService = db.LoggingService
		inspections = db.Inspections

		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(db.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_inspections", db.InspectionsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_inspectors", db.InspectorsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)
	}

	var photoStore storage.PhotoStore = storage.NewMemoryStore()
	if photos != nil {
		photoStore = photos.Photos
		if photos.Checker != nil {
			healthHandler.RegisterChecker("minio", photos.Checker)
		}
		if photos.Breaker != nil {
			healthHandler.RegisterCircuitBreaker("minio_photos", photos.Breaker)
		}
	}

	inspectionService := service.NewInspectionService(
		services.Calculator,
		inspections,
		photoStore,
		service.WithMaxPhotoBytes(cfg.Storage.MaxPhotoBytes),
	)

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		MaxPhotoBytes:     cfg.Storage.MaxPhotoBytes,
		Operators:         cfg.Inspection.Operators,
		LoggingService:    loggingService,
		AuthService:       InitializeAuth(cfg.Auth, db),
		Calculator:        services.Calculator,
		Inspections:       inspectionService,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
