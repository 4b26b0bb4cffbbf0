package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/i18n"
	"github.com/inspectwise/inspection-service/internal/service"
)

// Context keys set by JWTAuth.
const (
	InspectorIDKey     = "inspector_id"
	InspectorEmailKey  = "inspector_email"
	InspectorNameKey   = "inspector_name"
	InspectorClaimsKey = "inspector_claims"
)

// JWTAuth returns a middleware that requires a valid bearer token and
// stores the inspector identity in the context.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}
		if tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(InspectorIDKey, claims.InspectorID.Hex())
		c.Set(InspectorEmailKey, claims.Email)
		c.Set(InspectorNameKey, claims.Name)
		c.Set(InspectorClaimsKey, claims)

		c.Next()
	}
}

// bearerToken extracts the token from "Bearer <token>". ok is false when
// the header is missing; a malformed header yields ok with an empty token.
func bearerToken(header string) (token string, ok bool) {
	if header == "" {
		return "", false
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", true
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")), true
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c)))
}

// InspectorID returns the authenticated inspector's ID, or "" when the
// request was not authenticated with a token.
func InspectorID(c *gin.Context) string {
	return c.GetString(InspectorIDKey)
}
