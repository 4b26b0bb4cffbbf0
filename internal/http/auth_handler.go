package http

import (
	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/middleware"
	"github.com/inspectwise/inspection-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login inspector
// @Description  Authenticates an inspector and returns a JWT access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Account store unavailable"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req, ok := decode[dto.LoginRequest](c)
	if !ok {
		return
	}

	ls := loggingService(c)
	resp, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.AuditLogError(ls, c, model.ActionLogin, "", "Login failed", err, map[string]interface{}{
			"email": req.Email,
		})
		respondError(c, err)
		return
	}

	c.Set(middleware.InspectorIDKey, resp.Inspector.ID)
	c.Set(middleware.InspectorEmailKey, resp.Inspector.Email)
	middleware.AuditLog(ls, c, model.ActionLogin, "", "Inspector logged in", nil)

	NewResponseBuilder(c).SuccessOK(resp)
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Register inspector
// @Description  Creates an inspector account and returns a JWT access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration details"
// @Success      201 {object} dto.SuccessResponse{data=dto.LoginResponse} "Account created"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Email already registered"
// @Failure      503 {object} dto.ErrorResponse "Account store unavailable"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req, ok := decode[dto.RegisterRequest](c)
	if !ok {
		return
	}

	ls := loggingService(c)
	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		middleware.AuditLogError(ls, c, model.ActionRegister, "", "Registration failed", err, map[string]interface{}{
			"email": req.Email,
		})
		respondError(c, err)
		return
	}

	c.Set(middleware.InspectorIDKey, resp.Inspector.ID)
	c.Set(middleware.InspectorEmailKey, resp.Inspector.Email)
	middleware.AuditLog(ls, c, model.ActionRegister, "", "Inspector registered", nil)

	NewResponseBuilder(c).SuccessCreated(resp)
}
