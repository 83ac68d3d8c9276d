package services

import (
	"context"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/SscSPs/campus_connect/internal/dto"
)

// PasswordHasherSvc hashes and verifies local passwords.
type PasswordHasherSvc interface {
	// Hash returns a salted one-way digest; two calls with the same input differ.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A nil digest never matches.
	Verify(plaintext string, digest *string) bool
}

// TokenSvc issues and verifies signed session tokens.
type TokenSvc interface {
	Issue(userID string) (string, error)
	// Verify returns the subject user id or an error wrapping apperrors.ErrInvalidToken.
	Verify(token string) (string, error)
}

// IdentityVerifierSvc validates third-party identity assertions (Google ID tokens).
type IdentityVerifierSvc interface {
	Verify(ctx context.Context, assertion string) (*domain.ExternalIdentity, error)
}

// AuthCodeExchangerSvc turns an OAuth authorization code into an ID token.
type AuthCodeExchangerSvc interface {
	ExchangeCodeForIDToken(ctx context.Context, code string) (string, error)
}

// CredentialStoreSvc persists user identity records, hashing passwords on write.
type CredentialStoreSvc interface {
	CreateLocalUser(ctx context.Context, name, email, password string) (*domain.User, error)
	CreateExternalUser(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, newPassword string) error
	UpdateProfile(ctx context.Context, userID, name string) (*domain.User, error)
}

// AuthSvcFacade is the auth orchestrator used by the handlers and the auth middleware.
type AuthSvcFacade interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.AuthResult, error)
	Login(ctx context.Context, req dto.LoginRequest) (*domain.AuthResult, error)
	ExternalLogin(ctx context.Context, idToken string) (*domain.AuthResult, error)
	ExchangeGoogleCode(ctx context.Context, code string) (*domain.AuthResult, error)
	VerifyIdentity(ctx context.Context, token string) (*domain.User, error)
	ChangePassword(ctx context.Context, user *domain.User, req dto.ChangePasswordRequest) error
	UpdateProfile(ctx context.Context, user *domain.User, req dto.UpdateProfileRequest) (*domain.User, error)
}

// OwnershipGuardSvc decides whether an identity may mutate a resource.
type OwnershipGuardSvc interface {
	Authorize(resource domain.OwnedResource, actingUserID string) error
}
