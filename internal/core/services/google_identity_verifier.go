package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/SscSPs/campus_connect/internal/core/domain"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/middleware"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// ValidateFunc validates a Google ID token for the given audience.
// idtoken.Validate is the production implementation.
type ValidateFunc func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

// GoogleIdentityVerifier checks Google ID tokens against Google's published keys.
type GoogleIdentityVerifier struct {
	clientID string
	timeout  time.Duration
	validate ValidateFunc
}

// NewGoogleIdentityVerifier creates a verifier that accepts tokens issued for clientID.
func NewGoogleIdentityVerifier(clientID string, timeout time.Duration) *GoogleIdentityVerifier {
	return NewGoogleIdentityVerifierWithValidator(clientID, timeout, idtoken.Validate)
}

// NewGoogleIdentityVerifierWithValidator creates a verifier with a custom token validator.
func NewGoogleIdentityVerifierWithValidator(clientID string, timeout time.Duration, validate ValidateFunc) *GoogleIdentityVerifier {
	return &GoogleIdentityVerifier{
		clientID: clientID,
		timeout:  timeout,
		validate: validate,
	}
}

var _ portssvc.IdentityVerifierSvc = (*GoogleIdentityVerifier)(nil)

// Verify validates signature, audience, expiry and issuer of the assertion and
// returns the identity it carries. Any failure is an InvalidAssertion, except a
// timeout which is reported as Unavailable.
func (v *GoogleIdentityVerifier) Verify(ctx context.Context, assertion string) (*domain.ExternalIdentity, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if v.clientID == "" {
		logger.Error("Google sign-in attempted but GOOGLE_CLIENT_ID is not configured")
		return nil, apperrors.NewInvalidAssertionError("Google authentication failed", errors.New("google client id not configured"))
	}

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	payload, err := v.validate(ctx, assertion, v.clientID)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logger.Warn("Google token verification timed out", slog.Duration("timeout", v.timeout))
			return nil, apperrors.NewUnavailableError("Google authentication is temporarily unavailable", err)
		}
		logger.Warn("Google token verification failed", slog.String("error", err.Error()))
		return nil, apperrors.NewInvalidAssertionError("Google authentication failed", err)
	}

	if !googleIssuers[payload.Issuer] {
		return nil, apperrors.NewInvalidAssertionError("Google authentication failed", errors.New("unexpected issuer "+payload.Issuer))
	}
	if payload.Audience != v.clientID {
		return nil, apperrors.NewInvalidAssertionError("Google authentication failed", errors.New("audience mismatch"))
	}
	if payload.Subject == "" {
		return nil, apperrors.NewInvalidAssertionError("Google authentication failed", errors.New("missing subject"))
	}

	email, _ := payload.Claims["email"].(string)
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.NewInvalidAssertionError("Google authentication failed", errors.New("missing email claim"))
	}
	if !claimIsTrue(payload.Claims["email_verified"]) {
		return nil, apperrors.NewInvalidAssertionError("Google authentication failed", errors.New("email not verified"))
	}

	name, _ := payload.Claims["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	return &domain.ExternalIdentity{
		ExternalID: payload.Subject,
		Email:      email,
		Name:       name,
	}, nil
}

// claimIsTrue accepts the boolean form and the legacy string form of a claim.
func claimIsTrue(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	}
	return false
}
