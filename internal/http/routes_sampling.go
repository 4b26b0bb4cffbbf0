package http

import (
	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/service"
)

// SamplingRoutes registers the stateless sampling routes. They never need
// an inspector identity and stay public in JWT mode.
type SamplingRoutes struct {
	handler *SamplingHandler
}

// NewSamplingRoutes creates a new SamplingRoutes instance.
func NewSamplingRoutes(calculator service.PlanCalculator, operators []string) *SamplingRoutes {
	return &SamplingRoutes{handler: NewSamplingHandler(calculator, operators)}
}

// RegisterPublicRoutes registers the sampling routes.
func (r *SamplingRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/quality-levels", r.handler.QualityLevels)
	rg.GET("/sampling-table", r.handler.SamplingTable)
	rg.GET("/operators", r.handler.Operators)
	rg.POST("/sampling-plan", r.handler.SamplingPlan)
	rg.POST("/verdict", r.handler.Verdict)
}
