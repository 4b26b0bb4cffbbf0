package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/domain/model"
)

// tokenIssuer is the iss claim of every access token.
const tokenIssuer = "inspection-service"

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for an inspector.
	GenerateAccessToken(inspector *model.Inspector) (string, error)
	// ValidateAccessToken verifies a token and returns its claims.
	ValidateAccessToken(tokenString string) (*dto.Claims, error)
	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}

// TokenServiceImpl implements TokenService.
type TokenServiceImpl struct {
	secretKey      []byte
	accessTokenTTL time.Duration
	now            func() time.Time
}

// NewTokenService creates a token service. secret must not be empty.
func NewTokenService(secret string, ttl time.Duration) *TokenServiceImpl {
	return &TokenServiceImpl{
		secretKey:      []byte(secret),
		accessTokenTTL: ttl,
		now:            time.Now,
	}
}

// TTL returns the lifetime of issued tokens.
func (s *TokenServiceImpl) TTL() time.Duration {
	return s.accessTokenTTL
}

// GenerateAccessToken signs a token carrying the inspector's identity.
func (s *TokenServiceImpl) GenerateAccessToken(inspector *model.Inspector) (string, error) {
	if inspector.ID.IsZero() {
		return "", errors.New("inspector ID is zero, cannot create token")
	}

	now := s.now()
	claims := &ClaimsWithJWT{
		Claims: dto.Claims{
			InspectorID: inspector.ID,
			Email:       inspector.Email,
			Name:        inspector.Name,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   inspector.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature, expiry and issuer.
func (s *TokenServiceImpl) ValidateAccessToken(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid {
		return &claimsWithJWT.Claims, nil
	}
	return nil, ErrInvalidToken
}
