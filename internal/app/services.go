// Package app provides service initialization.
package app

import (
	"github.com/inspectwise/inspection-service/config"
	"github.com/inspectwise/inspection-service/internal/service"
)

// ServiceComponents holds the stateless business services.
type ServiceComponents struct {
	Calculator *service.PlanCalculatorService
}

// InitializeServices builds the plan calculator, cached when a cache size is configured.
func InitializeServices(cfg config.CacheConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Size, cfg.TTL))
	}

	return &ServiceComponents{
		Calculator: service.NewPlanCalculatorService(opts...),
	}
}
