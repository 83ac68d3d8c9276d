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

const marketplaceItemSelect = `
    SELECT mi.item_id, mi.item_name, mi.description, mi.price, mi.seller_name, mi.category,
           mi.image, mi.created_by, mi.created_at, mi.updated_at,
           u.name, u.email
    FROM marketplace_items mi
    LEFT JOIN users u ON u.user_id = mi.created_by
`

type PgxMarketplaceItemRepository struct {
	BaseRepository
}

func newPgxMarketplaceItemRepository(db *pgxpool.Pool) portsrepo.MarketplaceItemRepositoryFacade {
	return &PgxMarketplaceItemRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.MarketplaceItemRepositoryFacade = (*PgxMarketplaceItemRepository)(nil)

func scanMarketplaceItem(row pgx.Row) (models.MarketplaceItem, error) {
	var m models.MarketplaceItem
	err := row.Scan(
		&m.ItemID,
		&m.ItemName,
		&m.Description,
		&m.Price,
		&m.SellerName,
		&m.Category,
		&m.Image,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.OwnerName,
		&m.OwnerEmail,
	)
	return m, err
}

func (r *PgxMarketplaceItemRepository) SaveMarketplaceItem(ctx context.Context, item domain.MarketplaceItem) error {
	m := mapping.ToModelMarketplaceItem(item)
	query := `
        INSERT INTO marketplace_items (item_id, item_name, description, price, seller_name, category,
                                       image, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID, m.ItemName, m.Description, m.Price, m.SellerName, m.Category,
		m.Image, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return wrapQueryError(err, "save marketplace item")
	}
	return nil
}

func (r *PgxMarketplaceItemRepository) FindMarketplaceItemByID(ctx context.Context, itemID string) (*domain.MarketplaceItem, error) {
	m, err := scanMarketplaceItem(r.Pool.QueryRow(ctx, marketplaceItemSelect+` WHERE mi.item_id = $1;`, itemID))
	if err != nil {
		return nil, wrapQueryError(err, "find marketplace item "+itemID)
	}
	item := mapping.ToDomainMarketplaceItem(m)
	return &item, nil
}

func (r *PgxMarketplaceItemRepository) FindMarketplaceItemsByCategory(ctx context.Context, category domain.MarketplaceCategory) ([]domain.MarketplaceItem, error) {
	return r.list(ctx, marketplaceItemSelect+` WHERE mi.category = $1 ORDER BY mi.created_at DESC;`, string(category))
}

func (r *PgxMarketplaceItemRepository) FindMarketplaceItemsByOwner(ctx context.Context, ownerID string) ([]domain.MarketplaceItem, error) {
	return r.list(ctx, marketplaceItemSelect+` WHERE mi.created_by = $1 ORDER BY mi.created_at DESC;`, ownerID)
}

func (r *PgxMarketplaceItemRepository) list(ctx context.Context, query string, args ...any) ([]domain.MarketplaceItem, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, "query marketplace items")
	}
	defer rows.Close()

	modelItems := []models.MarketplaceItem{}
	for rows.Next() {
		m, err := scanMarketplaceItem(rows)
		if err != nil {
			return nil, wrapQueryError(err, "scan marketplace item row")
		}
		modelItems = append(modelItems, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err, "iterate marketplace item rows")
	}
	return mapping.ToDomainMarketplaceItemSlice(modelItems), nil
}

func (r *PgxMarketplaceItemRepository) UpdateMarketplaceItem(ctx context.Context, item domain.MarketplaceItem) error {
	m := mapping.ToModelMarketplaceItem(item)
	query := `
        UPDATE marketplace_items
        SET item_name = $1, description = $2, price = $3, seller_name = $4,
            category = $5, image = $6, updated_at = $7
        WHERE item_id = $8;
    `
	return r.execAffectingOne(ctx, "update marketplace item", query,
		m.ItemName, m.Description, m.Price, m.SellerName,
		m.Category, m.Image, m.UpdatedAt, m.ItemID,
	)
}

func (r *PgxMarketplaceItemRepository) DeleteMarketplaceItem(ctx context.Context, itemID string) error {
	return r.execAffectingOne(ctx, "delete marketplace item", `DELETE FROM marketplace_items WHERE item_id = $1;`, itemID)
}
