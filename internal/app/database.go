// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/inspectwise/inspection-service/config"
	"github.com/inspectwise/inspection-service/internal/circuitbreaker"
	"github.com/inspectwise/inspection-service/internal/metrics"
	"github.com/inspectwise/inspection-service/internal/repository"
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds the MongoDB connection and the repositories built on it.
type DatabaseComponents struct {
	DB                        *repository.MongoDB
	Inspections               repository.InspectionRepositoryInterface
	Inspectors                repository.InspectorRepositoryInterface
	LoggingService            service.LoggingService
	InspectionsCircuitBreaker *circuitbreaker.CircuitBreaker
	InspectorsCircuitBreaker  *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker        *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and wraps every collection in its own
// circuit breaker. Returns nil if the database is disabled or unreachable.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory stores")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if err := db.SetLogsTTL(context.Background(), cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Dur("ttl", cfg.LogsTTL).Msg("Failed to set logs TTL index")
	}

	return newDatabaseComponents(db, cfg)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	inspectionsCB := newBreaker(cfg.Breaker, "mongodb-inspections", repository.IsFailure)
	inspectorsCB := newBreaker(cfg.Breaker, "mongodb-inspectors", repository.IsFailure)
	logsCB := newBreaker(cfg.Breaker, "mongodb-logs", repository.IsFailure)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                        db,
		Inspections:               repository.NewInspectionRepositoryWithCircuitBreaker(repository.NewInspectionRepository(db), inspectionsCB),
		Inspectors:                repository.NewInspectorRepositoryWithCircuitBreaker(repository.NewInspectorRepository(db), inspectorsCB),
		LoggingService:            service.NewLoggingService(logsRepo),
		InspectionsCircuitBreaker: inspectionsCB,
		InspectorsCircuitBreaker:  inspectorsCB,
		LogsCircuitBreaker:        logsCB,
	}
}

// newBreaker builds a breaker that only counts errors isFailure accepts
// and publishes its state to Prometheus.
func newBreaker(cfg config.BreakerConfig, name string, isFailure func(error) bool) *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.FailureThreshold,
		SuccessThreshold: cfg.SuccessThreshold,
		Timeout:          cfg.Timeout,
		Name:             name,
		IsFailure:        isFailure,
		OnStateChange:    publishBreakerState,
	})
	metrics.SetCircuitBreakerState(name, breakerGaugeValue(circuitbreaker.StateClosed))
	return cb
}

func publishBreakerState(name string, _, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, breakerGaugeValue(to))
}

// breakerGaugeValue maps a state onto the gauge scale: 0 closed, 1 half-open, 2 open.
func breakerGaugeValue(s circuitbreaker.State) int {
	switch s {
	case circuitbreaker.StateHalfOpen:
		return 1
	case circuitbreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
