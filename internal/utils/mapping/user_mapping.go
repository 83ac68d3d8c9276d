package mapping

import (
	"database/sql"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/SscSPs/campus_connect/internal/models"
)

// ToModelUser converts a domain.User to a models.User.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: nullString(d.PasswordHash),
		AuthProvider: string(d.AuthProvider),
		ExternalID:   nullString(d.ExternalID),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainUser converts a models.User to a domain.User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: stringPtr(m.PasswordHash),
		AuthProvider: domain.AuthProvider(m.AuthProvider),
		ExternalID:   stringPtr(m.ExternalID),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toOwner(userID string, name, email sql.NullString) *domain.Owner {
	if !name.Valid && !email.Valid {
		return nil
	}
	return &domain.Owner{UserID: userID, Name: name.String, Email: email.String}
}
