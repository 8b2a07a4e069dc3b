// Package token issues and verifies the signed access and refresh tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ShohjahonSohibov/Aberno/cmd/config"
	"github.com/ShohjahonSohibov/Aberno/constant"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

const refreshType = "refresh"

type Claims struct {
	Role constant.Role `json:"role,omitempty"`
	Type string        `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

type Service interface {
	IssueAccess(subjectID string, role constant.Role) (string, error)
	IssueRefresh(subjectID string) (string, error)
	Verify(token string) (*Claims, error)
	VerifyRefresh(token string) (*Claims, error)
}

type service struct {
	secret         []byte
	refreshSecret  []byte
	userAccessTTL  time.Duration
	adminAccessTTL time.Duration
	refreshTTL     time.Duration
	now            func() time.Time
}

func NewService(cfg config.AuthConfig) Service {
	refreshSecret := cfg.RefreshSecret
	if refreshSecret == "" {
		refreshSecret = cfg.JWTSecret
	}
	return &service{
		secret:         []byte(cfg.JWTSecret),
		refreshSecret:  []byte(refreshSecret),
		userAccessTTL:  cfg.UserAccessTTL,
		adminAccessTTL: cfg.AdminAccessTTL,
		refreshTTL:     cfg.RefreshTTL,
		now:            time.Now,
	}
}

func (s *service) IssueAccess(subjectID string, role constant.Role) (string, error) {
	ttl := s.userAccessTTL
	if role == constant.RoleAdmin {
		ttl = s.adminAccessTTL
	}
	return s.sign(&Claims{Role: role, RegisteredClaims: s.registered(subjectID, ttl)}, s.secret)
}

func (s *service) IssueRefresh(subjectID string) (string, error) {
	return s.sign(&Claims{Type: refreshType, RegisteredClaims: s.registered(subjectID, s.refreshTTL)}, s.refreshSecret)
}

// Verify accepts access tokens only.
func (s *service) Verify(token string) (*Claims, error) {
	claims, err := s.parse(token, s.secret)
	if err != nil {
		return nil, err
	}
	if claims.Type == refreshType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *service) VerifyRefresh(token string) (*Claims, error) {
	claims, err := s.parse(token, s.refreshSecret)
	if err != nil {
		return nil, err
	}
	if claims.Type != refreshType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *service) registered(subjectID string, ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()
	return jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		// jti keeps two tokens issued within the same second distinct
		ID: uuid.NewString(),
	}
}

func (s *service) sign(claims *Claims, secret []byte) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *service) parse(token string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
