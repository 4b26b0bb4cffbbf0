package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/circuitbreaker"
	"golang.org/x/sync/errgroup"
)

// readinessCheckTimeout bounds each dependency check of the readiness probe.
const readinessCheckTimeout = 2 * time.Second

const (
	healthOK       = "ok"
	healthDegraded = "degraded"
)

// HealthChecker is a dependency the readiness probe pings.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckerFunc adapts a function such as (*repository.MongoDB).HealthCheck.
type HealthCheckerFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// HealthResponse is the body of both probes.
//
// @Description Probe status with one entry per dependency and circuit
type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
} // @name HealthResponse

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers map[string]HealthChecker
	circuits map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a handler with nothing registered.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers: make(map[string]HealthChecker),
		circuits: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterCircuitBreaker reports cb as "<name>_circuit". An open circuit
// makes the service not ready.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuits[name] = cb
}

// RegisterChecker adds a dependency to the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// Register mounts /healthz and /readyz.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is serving requests. Dependencies are not checked.
// @Tags        Health
// @Produce     json
// @Success     200 {object} HealthResponse "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: healthOK})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Pings MongoDB and MinIO concurrently and reports every circuit breaker. Any failure or open circuit answers 503.
// @Tags        Health
// @Produce     json
// @Success     200 {object} HealthResponse "Service is ready"
// @Failure     503 {object} HealthResponse "A dependency is down"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks, healthy := h.runChecks(c.Request.Context())

	for name, cb := range h.circuits {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		healthy = healthy && stats.IsHealthy
	}
	if len(checks) == 0 {
		checks["service"] = healthOK
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: healthDegraded, Checks: checks})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: healthOK, Checks: checks})
}

// runChecks pings every checker in parallel, each under its own timeout.
func (h *HealthHandler) runChecks(ctx context.Context) (map[string]string, bool) {
	var (
		mu      sync.Mutex
		g       errgroup.Group
		checks  = make(map[string]string, len(h.checkers)+len(h.circuits))
		healthy = true
	)

	for name, checker := range h.checkers {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, readinessCheckTimeout)
			defer cancel()

			result := healthOK
			if err := checker.Check(checkCtx); err != nil {
				result = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()
			checks[name] = result
			healthy = healthy && result == healthOK
			return nil
		})
	}
	_ = g.Wait()
	return checks, healthy
}
