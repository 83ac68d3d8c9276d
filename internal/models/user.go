package models

import (
	"database/sql"
	"time"
)

// User mirrors a row of the users table.
type User struct {
	UserID       string         `db:"user_id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"`
	AuthProvider string         `db:"auth_provider"`
	ExternalID   sql.NullString `db:"external_id"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
