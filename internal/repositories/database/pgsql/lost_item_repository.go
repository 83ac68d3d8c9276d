package pgsql

import (
	"context"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	portsrepo "github.com/SscSPs/campus_connect/internal/core/ports/repositories"
	"github.com/SscSPs/campus_connect/internal/models"
	"github.com/SscSPs/campus_connect/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const lostItemSelect = `
    SELECT li.item_id, li.item_name, li.description, li.lost_date, li.location,
           li.contact_number, li.type, li.image_url, li.created_by, li.created_at, li.updated_at,
           u.name, u.email
    FROM lost_items li
    LEFT JOIN users u ON u.user_id = li.created_by
`

type PgxLostItemRepository struct {
	BaseRepository
}

func newPgxLostItemRepository(db *pgxpool.Pool) portsrepo.LostItemRepositoryFacade {
	return &PgxLostItemRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.LostItemRepositoryFacade = (*PgxLostItemRepository)(nil)

func scanLostItem(row pgx.Row) (models.LostItem, error) {
	var m models.LostItem
	err := row.Scan(
		&m.ItemID,
		&m.ItemName,
		&m.Description,
		&m.LostDate,
		&m.Location,
		&m.ContactNumber,
		&m.Type,
		&m.ImageURL,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.OwnerName,
		&m.OwnerEmail,
	)
	return m, err
}

func (r *PgxLostItemRepository) SaveLostItem(ctx context.Context, item domain.LostItem) error {
	m := mapping.ToModelLostItem(item)
	query := `
        INSERT INTO lost_items (item_id, item_name, description, lost_date, location, contact_number,
                                type, image_url, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID, m.ItemName, m.Description, m.LostDate, m.Location, m.ContactNumber,
		m.Type, m.ImageURL, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return wrapQueryError(err, "save lost item")
	}
	return nil
}

func (r *PgxLostItemRepository) FindLostItemByID(ctx context.Context, itemID string) (*domain.LostItem, error) {
	m, err := scanLostItem(r.Pool.QueryRow(ctx, lostItemSelect+` WHERE li.item_id = $1;`, itemID))
	if err != nil {
		return nil, wrapQueryError(err, "find lost item "+itemID)
	}
	item := mapping.ToDomainLostItem(m)
	return &item, nil
}

func (r *PgxLostItemRepository) FindLostItemsByType(ctx context.Context, itemType domain.LostItemType) ([]domain.LostItem, error) {
	return r.list(ctx, lostItemSelect+` WHERE li.type = $1 ORDER BY li.created_at DESC;`, string(itemType))
}

func (r *PgxLostItemRepository) FindLostItemsByOwner(ctx context.Context, ownerID string) ([]domain.LostItem, error) {
	return r.list(ctx, lostItemSelect+` WHERE li.created_by = $1 ORDER BY li.created_at DESC;`, ownerID)
}

func (r *PgxLostItemRepository) list(ctx context.Context, query string, args ...any) ([]domain.LostItem, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, "query lost items")
	}
	defer rows.Close()

	modelItems := []models.LostItem{}
	for rows.Next() {
		m, err := scanLostItem(rows)
		if err != nil {
			return nil, wrapQueryError(err, "scan lost item row")
		}
		modelItems = append(modelItems, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err, "iterate lost item rows")
	}
	return mapping.ToDomainLostItemSlice(modelItems), nil
}

// UpdateLostItem rewrites the mutable columns. created_by is never updated.
func (r *PgxLostItemRepository) UpdateLostItem(ctx context.Context, item domain.LostItem) error {
	m := mapping.ToModelLostItem(item)
	query := `
        UPDATE lost_items
        SET item_name = $1, description = $2, lost_date = $3, location = $4,
            contact_number = $5, type = $6, image_url = $7, updated_at = $8
        WHERE item_id = $9;
    `
	return r.execAffectingOne(ctx, "update lost item", query,
		m.ItemName, m.Description, m.LostDate, m.Location,
		m.ContactNumber, m.Type, m.ImageURL, m.UpdatedAt, m.ItemID,
	)
}

func (r *PgxLostItemRepository) DeleteLostItem(ctx context.Context, itemID string) error {
	return r.execAffectingOne(ctx, "delete lost item", `DELETE FROM lost_items WHERE item_id = $1;`, itemID)
}
