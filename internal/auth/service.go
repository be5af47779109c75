package auth

import (
	"fmt"
	"time"

	"claims-analytics-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
)

// ProfileLookup is the subset of the profile repository the auth service
// needs to turn a credential into a principal.
type ProfileLookup interface {
	GetByUserID(userID string) (*models.Profile, error)
}

// Service issues and validates the session-cookie JWTs that every API
// request is authenticated with.
type Service struct {
	secret      []byte
	cookieName  string
	tokenTTL    time.Duration
	profileRepo ProfileLookup
}

// SessionClaims represents the JWT claims carried inside the session cookie
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// NewService creates a new session auth service
func NewService(secret, cookieName string, tokenTTL time.Duration, profileRepo ProfileLookup) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if cookieName == "" {
		cookieName = "claims_session"
	}
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	return &Service{
		secret:      []byte(secret),
		cookieName:  cookieName,
		tokenTTL:    tokenTTL,
		profileRepo: profileRepo,
	}, nil
}

// CookieName returns the name of the session cookie
func (s *Service) CookieName() string {
	return s.cookieName
}

// TokenTTL returns the configured session lifetime
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}

// GenerateSessionToken creates a signed session token for the profile
func (s *Service) GenerateSessionToken(profile *models.Profile) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: profile.UserID,
		Email:  profile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "claims-analytics-backend",
			Subject:   profile.UserID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateSessionToken validates and parses a session token
func (s *Service) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// LookupProfile resolves a user id to its profile row
func (s *Service) LookupProfile(userID string) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(userID)
}
