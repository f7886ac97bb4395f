package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"wigu/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles owner and advisor authentication
type AuthService struct {
	ownerUsername string
	ownerPassword string
	jwtSecret     []byte
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	username := os.Getenv("OWNER_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("OWNER_PASSWORD")
	if password == "" {
		password = "password123"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		ownerUsername: username,
		ownerPassword: password,
		jwtSecret:     []byte(secret),
	}
}

// Login validates credentials and returns an owner token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.ownerUsername || password != s.ownerPassword {
		return nil, ErrInvalidCredentials
	}

	ownerID := "owner_" + uuid.New().String()[:8]

	claims := &model.OwnerClaims{
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:   tokenString,
		OwnerID: ownerID,
	}, nil
}

// ValidateOwnerToken validates an owner JWT and returns claims
func (s *AuthService) ValidateOwnerToken(tokenString string) (*model.OwnerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.OwnerClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.OwnerClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateAdvisorToken creates a session-scoped token for an invited advisor.
// Advisor tokens expire after 14 days so stale invitations go dead on their own.
func (s *AuthService) GenerateAdvisorToken(sessionID, invitationID string) (string, error) {
	claims := &model.AdvisorClaims{
		SessionID:    sessionID,
		InvitationID: invitationID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(14 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateAdvisorToken validates an advisor JWT and returns claims
func (s *AuthService) ValidateAdvisorToken(tokenString string) (*model.AdvisorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdvisorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdvisorClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
