package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/utils"
)

// TokenService issues and verifies stateless HS256 session tokens.
// Rotating the secret invalidates every token issued before.
type TokenService struct {
	secret   string
	issuer   string
	lifetime time.Duration
	now      func() time.Time
}

// TokenOption customizes a TokenService.
type TokenOption func(*TokenService)

// WithClock replaces time.Now, used by tests to pin issuance and expiry.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret, issuer string, lifetime time.Duration, opts ...TokenOption) *TokenService {
	s := &TokenService{
		secret:   secret,
		issuer:   issuer,
		lifetime: lifetime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.TokenSvc = (*TokenService)(nil)

// Issue signs a token whose subject is userID.
func (s *TokenService) Issue(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("cannot issue token without a subject")
	}
	token, err := utils.GenerateJWT(userID, s.secret, s.now(), s.lifetime, s.issuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify returns the user id the token was issued for.
func (s *TokenService) Verify(token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.secret, s.issuer, s.now)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	return claims.Subject, nil
}
