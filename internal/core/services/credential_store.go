package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/SscSPs/campus_connect/internal/core/domain"
	portsrepo "github.com/SscSPs/campus_connect/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/google/uuid"
)

// CredentialStore persists user identity records. Passwords are hashed here and
// only here: on local account creation and on an explicit password change.
type CredentialStore struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	hasher   portssvc.PasswordHasherSvc
}

// NewCredentialStore creates a new CredentialStore.
func NewCredentialStore(userRepo portsrepo.UserRepositoryFacade, hasher portssvc.PasswordHasherSvc) *CredentialStore {
	return &CredentialStore{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

var _ portssvc.CredentialStoreSvc = (*CredentialStore)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *CredentialStore) CreateLocalUser(ctx context.Context, name, email, password string) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewInternalError("Error registering user", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		PasswordHash: &hash,
		AuthProvider: domain.ProviderLocal,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *CredentialStore) CreateExternalUser(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error) {
	externalID := identity.ExternalID
	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         strings.TrimSpace(identity.Name),
		Email:        normalizeEmail(identity.Email),
		AuthProvider: domain.ProviderGoogle,
		ExternalID:   &externalID,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *CredentialStore) save(ctx context.Context, user domain.User) error {
	err := s.userRepo.SaveUser(ctx, user)
	if err == nil {
		s.GetLogger(ctx).Info("User created",
			slog.String("user_id", user.UserID),
			slog.String("auth_provider", string(user.AuthProvider)))
		return nil
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		return apperrors.NewAppError(apperrors.ErrConflict, "User already exists with this email", err)
	}
	s.LogError(ctx, err, "Failed to save user", slog.String("email", user.Email))
	return apperrors.NewInternalError("Error registering user", err)
}

func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrNotFound, "User not found", err)
		}
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, apperrors.NewInternalError("Failed to load user", err)
	}
	return user, nil
}

func (s *CredentialStore) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	if !isResourceID(userID) {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrNotFound, "User not found", err)
		}
		s.LogError(ctx, err, "Failed to look up user by id", slog.String("user_id", userID))
		return nil, apperrors.NewInternalError("Failed to load user", err)
	}
	return user, nil
}

func (s *CredentialStore) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return apperrors.NewInternalError("Failed to update password", err)
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewAppError(apperrors.ErrNotFound, "User not found", err)
		}
		s.LogError(ctx, err, "Failed to store password hash", slog.String("user_id", userID))
		return apperrors.NewInternalError("Failed to update password", fmt.Errorf("update password hash: %w", err))
	}
	return nil
}

// UpdateProfile rewrites the name only; the password hash is never read or hashed again.
func (s *CredentialStore) UpdateProfile(ctx context.Context, userID, name string) (*domain.User, error) {
	if !isResourceID(userID) {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	if err := s.userRepo.UpdateUserName(ctx, userID, strings.TrimSpace(name), time.Now().UTC()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrNotFound, "User not found", err)
		}
		s.LogError(ctx, err, "Failed to update profile", slog.String("user_id", userID))
		return nil, apperrors.NewInternalError("Failed to update profile", err)
	}
	return s.FindByID(ctx, userID)
}
