package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/metrics"
	"github.com/inspectwise/inspection-service/internal/middleware"
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// loggingServiceKey holds the audit sink in the gin context.
const loggingServiceKey = "logging_service"

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	corsHeaders = []string{
		"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Accept-Language",
		"Authorization", "Cache-Control", "X-Requested-With",
		middleware.APIKeyHeader, middleware.IdempotencyKeyHeader, middleware.RequestIDHeader,
	}
	corsExposed = []string{
		middleware.RequestIDHeader, middleware.IdempotencyReplayedHeader,
		"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset",
	}
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeys           map[string]bool
	EnableAuth        bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	MaxPhotoBytes     int64
	Operators         []string
	LoggingService    service.LoggingService
	// AuthService switches the report routes to JWT auth. API keys are then ignored.
	AuthService service.AuthService
	Calculator  service.PlanCalculator
	Inspections service.InspectionService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultRequestTimeout,
	}
}

// apiKeysRequired reports whether the /api group is behind X-API-Key.
func (cfg *RouterConfig) apiKeysRequired() bool {
	return cfg.EnableAuth && cfg.AuthService == nil && len(cfg.APIKeys) > 0
}

// NewRouter builds the engine: probes, metrics and docs at the root, the
// sampling routes under /api, and the report routes under /api behind
// whichever auth mode is configured.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(globalMiddleware(&cfg)...)

	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", swaggerHandlers(&cfg)...)

	api := router.Group("/api", apiMiddleware(&cfg)...)
	if cfg.Calculator != nil {
		NewSamplingRoutes(cfg.Calculator, cfg.Operators).RegisterPublicRoutes(api)
	}

	var inspections *InspectionRoutes
	if cfg.Inspections != nil {
		inspections = NewInspectionRoutes(cfg.Inspections, cfg.MaxPhotoBytes)
	}

	if cfg.AuthService == nil {
		if inspections != nil {
			inspections.RegisterPublicRoutes(api)
		}
		return router
	}

	authRoutes := NewAuthRoutes(cfg.AuthService)
	authRoutes.RegisterPublicRoutes(api)
	if inspections != nil {
		inspections.RegisterProtectedRoutes(authRoutes.ProtectedGroup(api, &cfg), &cfg)
	}
	return router
}

func globalMiddleware(cfg *RouterConfig) []gin.HandlerFunc {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	chain := []gin.HandlerFunc{
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     corsMethods,
			AllowHeaders:     corsHeaders,
			ExposeHeaders:    corsExposed,
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	}
	if cfg.LoggingService != nil {
		ls := cfg.LoggingService
		chain = append(chain, func(c *gin.Context) {
			c.Set(loggingServiceKey, ls)
			c.Next()
		})
	}
	if cfg.RateLimit > 0 {
		chain = append(chain, middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).RateLimit())
	}
	return chain
}

func apiMiddleware(cfg *RouterConfig) []gin.HandlerFunc {
	var chain []gin.HandlerFunc
	if cfg.RequestTimeout > 0 {
		chain = append(chain, middleware.Timeout(cfg.RequestTimeout))
	}
	if cfg.EnableIdempotency {
		chain = append(chain, middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
	if cfg.apiKeysRequired() {
		chain = append(chain, middleware.APIKeyAuth(cfg.APIKeys))
	}
	return chain
}

// swaggerHandlers serves the docs, behind basic auth when credentials are set.
func swaggerHandlers(cfg *RouterConfig) []gin.HandlerFunc {
	docs := ginSwagger.WrapHandler(swaggerFiles.Handler)
	if cfg.SwaggerUser == "" || cfg.SwaggerPass == "" {
		return []gin.HandlerFunc{docs}
	}
	return []gin.HandlerFunc{gin.BasicAuth(gin.Accounts{cfg.SwaggerUser: cfg.SwaggerPass}), docs}
}
