package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	portsrepo "github.com/SscSPs/campus_connect/internal/core/ports/repositories"
	"github.com/SscSPs/campus_connect/internal/models"
	"github.com/SscSPs/campus_connect/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, name, email, password_hash, auth_provider, external_id, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.AuthProvider,
		&m.ExternalID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveUser inserts a new user. The unique index on email turns a concurrent
// registration of the same address into apperrors.ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.AuthProvider,
		m.ExternalID,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return wrapQueryError(err, "save user")
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, wrapQueryError(err, "find user by ID "+userID)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, wrapQueryError(err, "find user by email")
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

// UpdatePasswordHash only touches local accounts; the table constraint forbids
// a hash on any other provider.
func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	query := `
        UPDATE users
        SET password_hash = $1, updated_at = NOW()
        WHERE user_id = $2 AND auth_provider = 'local';
    `
	return r.execAffectingOne(ctx, "update password hash", query, passwordHash, userID)
}

func (r *PgxUserRepository) UpdateUserName(ctx context.Context, userID string, name string, updatedAt time.Time) error {
	query := `
        UPDATE users
        SET name = $1, updated_at = $2
        WHERE user_id = $3;
    `
	return r.execAffectingOne(ctx, "update user name", query, name, updatedAt, userID)
}
