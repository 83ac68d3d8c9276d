package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/SscSPs/campus_connect/internal/core/domain"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password accepted at signup and on change.
const MinPasswordLength = 6

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

const (
	msgInvalidCredentials = "Invalid email or password"
	msgUseGoogle          = "This account uses Google sign-in. Please continue with Google."
	msgUsePassword        = "This email is registered with a password. Please log in with email and password."
	msgTokenFailed        = "Not authorized, token failed"
)

// AuthService orchestrates signup, the login flows and identity verification.
type AuthService struct {
	BaseService
	store     portssvc.CredentialStoreSvc
	hasher    portssvc.PasswordHasherSvc
	tokens    portssvc.TokenSvc
	verifier  portssvc.IdentityVerifierSvc
	exchanger portssvc.AuthCodeExchangerSvc
	validate  *validator.Validate
}

// NewAuthService creates a new AuthService. exchanger may be nil when the
// authorization-code flow is not configured.
func NewAuthService(
	store portssvc.CredentialStoreSvc,
	hasher portssvc.PasswordHasherSvc,
	tokens portssvc.TokenSvc,
	verifier portssvc.IdentityVerifierSvc,
	exchanger portssvc.AuthCodeExchangerSvc,
) *AuthService {
	return &AuthService{
		store:     store,
		hasher:    hasher,
		tokens:    tokens,
		verifier:  verifier,
		exchanger: exchanger,
		validate:  validator.New(),
	}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.AuthResult, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("All fields are required")
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return nil, apperrors.NewValidationError("Please provide a valid email address")
	}
	if err := checkPasswordLength(req.Password); err != nil {
		return nil, err
	}

	_, err := s.store.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperrors.NewConflictError("User already exists with this email")
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	// A concurrent signup that wins the race surfaces here as a Conflict from the unique index.
	user, err := s.store.CreateLocalUser(ctx, name, email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, user, "Error registering user")
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.AuthResult, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Email and password are required")
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthenticatedError(msgInvalidCredentials, nil)
		}
		return nil, err
	}

	if user.AuthProvider == domain.ProviderGoogle {
		return nil, apperrors.NewWrongProviderError(msgUseGoogle)
	}
	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.GetLogger(ctx).Info("Password login rejected", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthenticatedError(msgInvalidCredentials, nil)
	}
	return s.issue(ctx, user, "Error logging in")
}

func (s *AuthService) ExternalLogin(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return nil, apperrors.NewValidationError("Google ID token is required")
	}

	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.resolveExternalUser(ctx, identity)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, user, "Google authentication failed")
}

func (s *AuthService) resolveExternalUser(ctx context.Context, identity *domain.ExternalIdentity) (*domain.User, error) {
	user, err := s.store.FindByEmail(ctx, identity.Email)
	if err == nil {
		return s.reuseExternalUser(ctx, user, identity)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user, err = s.store.CreateExternalUser(ctx, *identity)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrDuplicate) {
		return nil, err
	}

	// Someone provisioned the same email between our lookup and insert; take theirs.
	user, err = s.store.FindByEmail(ctx, identity.Email)
	if err != nil {
		return nil, err
	}
	return s.reuseExternalUser(ctx, user, identity)
}

func (s *AuthService) reuseExternalUser(ctx context.Context, user *domain.User, identity *domain.ExternalIdentity) (*domain.User, error) {
	if user.AuthProvider != domain.ProviderGoogle {
		return nil, apperrors.NewConflictError(msgUsePassword)
	}
	if user.ExternalID != nil && *user.ExternalID != identity.ExternalID {
		s.GetLogger(ctx).Warn("Google subject differs from the one stored for this email",
			slog.String("user_id", user.UserID))
	}
	return user, nil
}

func (s *AuthService) ExchangeGoogleCode(ctx context.Context, code string) (*domain.AuthResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.NewValidationError("Authorization code is required")
	}
	if s.exchanger == nil {
		return nil, apperrors.NewInvalidAssertionError("Google authentication failed", errors.New("code exchange not configured"))
	}

	idToken, err := s.exchanger.ExchangeCodeForIDToken(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.ExternalLogin(ctx, idToken)
}

// VerifyIdentity resolves a bearer token to the user it was issued for.
// Every failure is reported as Unauthenticated.
func (s *AuthService) VerifyIdentity(ctx context.Context, token string) (*domain.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.NewUnauthenticatedError("Not authorized, no token provided", nil)
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperrors.NewUnauthenticatedError(msgTokenFailed, err)
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load user for token", slog.String("user_id", userID))
		}
		return nil, apperrors.NewUnauthenticatedError(msgTokenFailed, err)
	}

	verified := user.WithoutCredentials()
	return &verified, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, req dto.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("Current password and new password are required")
	}
	if err := checkPasswordLength(req.NewPassword); err != nil {
		return err
	}

	// The identity on the request carries no hash, so reload the stored record.
	stored, err := s.store.FindByID(ctx, user.UserID)
	if err != nil {
		return err
	}
	if stored.AuthProvider != domain.ProviderLocal {
		return apperrors.NewWrongProviderError("Password cannot be changed for an account that uses Google sign-in")
	}
	if !s.hasher.Verify(req.CurrentPassword, stored.PasswordHash) {
		return apperrors.NewUnauthenticatedError("Current password is incorrect", nil)
	}

	if err := s.store.UpdatePassword(ctx, stored.UserID, req.NewPassword); err != nil {
		return err
	}
	s.GetLogger(ctx).Info("Password changed", slog.String("user_id", stored.UserID))
	return nil
}

// UpdateProfile changes the display name. The stored password hash is left as it is.
func (s *AuthService) UpdateProfile(ctx context.Context, user *domain.User, req dto.UpdateProfileRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("Name is required")
	}

	updated, err := s.store.UpdateProfile(ctx, user.UserID, name)
	if err != nil {
		return nil, err
	}
	s.GetLogger(ctx).Info("Profile updated", slog.String("user_id", updated.UserID))

	result := updated.WithoutCredentials()
	return &result, nil
}

func checkPasswordLength(password string) error {
	if len(password) < MinPasswordLength {
		return apperrors.NewValidationError("Password must be at least 6 characters")
	}
	if len(password) > MaxPasswordBytes {
		return apperrors.NewValidationError("Password must be at most 72 bytes")
	}
	return nil
}

func (s *AuthService) issue(ctx context.Context, user *domain.User, failureMsg string) (*domain.AuthResult, error) {
	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token", slog.String("user_id", user.UserID))
		return nil, apperrors.NewInternalError(failureMsg, err)
	}
	return &domain.AuthResult{User: user.WithoutCredentials(), Token: token}, nil
}
