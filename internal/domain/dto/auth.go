package dto

import (
	"net/mail"

	"github.com/inspectwise/inspection-service/internal/i18n"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest authenticates an inspector.
//
// @Description Inspector login
// @Example {"email": "qc@example.com", "password": "password123"}
type LoginRequest struct {
	Email    string `json:"email" example:"qc@example.com"`
	Password string `json:"password" example:"password123"`
} // @name LoginRequest

// RegisterRequest creates an inspector account.
//
// @Description Inspector registration
// @Example {"email": "qc@example.com", "password": "password123", "name": "Aina"}
type RegisterRequest struct {
	Email    string `json:"email" example:"qc@example.com"`
	Password string `json:"password" example:"password123"`
	Name     string `json:"name" example:"Aina"`
} // @name RegisterRequest

// LoginResponse carries the access token.
//
// @Description Access token and the authenticated inspector
type LoginResponse struct {
	Token     string            `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn int64             `json:"expires_in" example:"900"`
	Inspector InspectorResponse `json:"inspector"`
} // @name LoginResponse

// InspectorResponse is the public view of an inspector account.
type InspectorResponse struct {
	ID    string `json:"id" example:"6710a3c2f1d2e3a4b5c6d7e8"`
	Email string `json:"email" example:"qc@example.com"`
	Name  string `json:"name,omitempty" example:"Aina"`
} // @name InspectorResponse

// Claims is the identity carried in an access token.
type Claims struct {
	InspectorID primitive.ObjectID `json:"inspector_id"`
	Email       string             `json:"email"`
	Name        string             `json:"name"`
}

var (
	errEmailRequired = &ValidationError{Field: "email", Message: "must be a valid email address", Key: i18n.ErrKeyInvalidEmail}
	errPasswordShort = &ValidationError{Field: "password", Message: "must be at least 6 characters", Key: i18n.ErrKeyInvalidPassword}
)

func validateCredentials(email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return errEmailRequired
	}
	if len(password) < 6 {
		return errPasswordShort
	}
	return nil
}

// Validate checks the login credentials.
func (r *LoginRequest) Validate() error {
	return validateCredentials(r.Email, r.Password)
}

// Validate checks the registration fields.
func (r *RegisterRequest) Validate() error {
	return validateCredentials(r.Email, r.Password)
}
