package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInspectorExists is returned when registering an email that is already taken.
	ErrInspectorExists = errors.New("inspector already exists")
	// ErrInvalidToken is returned when a token is malformed, forged or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService authenticates inspectors.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	inspectors repository.InspectorRepositoryInterface
	tokens     TokenService
	bcryptCost int
}

// NewAuthService creates a new authentication service.
func NewAuthService(inspectors repository.InspectorRepositoryInterface, tokens TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		inspectors: inspectors,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// WithBcryptCost overrides the hashing cost. Tests use bcrypt.MinCost.
func (s *AuthServiceImpl) WithBcryptCost(cost int) *AuthServiceImpl {
	s.bcryptCost = cost
	return s
}

// Login checks the password and issues an access token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	inspector, err := s.inspectors.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inspector by email: %w", err)
	}
	if !inspector.Active {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(inspector.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(inspector)
}

// Register creates an active account and logs it in.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	inspector := &model.Inspector{
		Email:    strings.TrimSpace(req.Email),
		Name:     strings.TrimSpace(req.Name),
		Password: string(hashed),
		Active:   true,
	}
	if err := s.inspectors.Create(ctx, inspector); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrInspectorExists
		}
		return nil, err
	}

	return s.issue(inspector)
}

// ValidateToken verifies an access token.
func (s *AuthServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	return s.tokens.ValidateAccessToken(tokenString)
}

func (s *AuthServiceImpl) issue(inspector *model.Inspector) (*dto.LoginResponse, error) {
	token, err := s.tokens.GenerateAccessToken(inspector)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
		Inspector: dto.InspectorResponse{
			ID:    inspector.ID.Hex(),
			Email: inspector.Email,
			Name:  inspector.Name,
		},
	}, nil
}
