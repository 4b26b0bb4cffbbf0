package http

import (
	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/middleware"
	"github.com/inspectwise/inspection-service/internal/service"
)

// AuthRoutes mounts the account endpoints and builds the JWT-protected group.
type AuthRoutes struct {
	handler     *AuthHandler
	authService service.AuthService
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService) *AuthRoutes {
	return &AuthRoutes{handler: NewAuthHandler(authService), authService: authService}
}

// RegisterPublicRoutes mounts POST /auth/login and POST /auth/register.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", r.handler.Login)
	auth.POST("/register", r.handler.Register)
}

// ProtectedGroup returns a subgroup of rg that requires a bearer token.
// With a rate limit configured, each inspector also gets their own budget.
func (r *AuthRoutes) ProtectedGroup(rg *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	handlers := []gin.HandlerFunc{middleware.JWTAuth(r.authService)}
	if cfg.RateLimit > 0 {
		handlers = append(handlers, middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).InspectorRateLimit())
	}
	return rg.Group("", handlers...)
}
