package auth

import (
	"fmt"
	"time"

	"aircraft-factory-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 12 * time.Hour

// AuthService issues and validates the bearer tokens that identify the acting user
type AuthService struct {
	secret     []byte
	issuer     string
	ttl        time.Duration
	production bool
	now        func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Username             string `json:"username" example:"ayse"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenRequest represents the request for a development token
type TokenRequest struct {
	Username string `json:"username" binding:"required,max=40" example:"ayse"`
}

// TokenResponse represents an issued token
type TokenResponse struct {
	AccessToken string    `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string    `json:"tokenType" example:"Bearer"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("invalid auth config: JWT secret is required")
	}
	return &AuthService{
		secret:     []byte(cfg.JWTSecret),
		issuer:     cfg.JWTIssuer,
		ttl:        defaultTokenTTL,
		production: cfg.IsProduction(),
		now:        time.Now,
	}, nil
}

// IssuingEnabled reports whether tokens may be issued by this process
func (s *AuthService) IssuingEnabled() bool {
	return !s.production
}

// GenerateJWT creates a signed token for username
func (s *AuthService) GenerateJWT(username string) (*TokenResponse, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &AuthClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.Username != "" {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
