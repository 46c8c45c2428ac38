package authenticating

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/twmops/revenue-insight-api/internal/config"
)

// Claims is the token payload for API clients
type Claims struct {
	Subject string `json:"sub_name"`
	jwt.RegisteredClaims
}

// Authenticator exchanges a configured API key for a signed token and
// validates bearer tokens on protected routes. When no API key hash is
// configured the service reports itself disabled and the middleware lets
// requests through, which is the expected mode for local runs.
type Authenticator interface {
	Enabled() bool
	IssueToken(apiKey string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

func (s *Service) Enabled() bool {
	return s.cfg.Auth.APIKeyHash != "" && s.cfg.Auth.Secret != ""
}

func (s *Service) IssueToken(apiKey string) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.APIKeyHash), []byte(apiKey)); err != nil {
		return "", ErrInvalidAPIKey
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTL) * time.Minute
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := Claims{
		Subject: "api-client",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	if s.cfg.Auth.Secret == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
