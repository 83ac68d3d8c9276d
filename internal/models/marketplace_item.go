package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// MarketplaceItem mirrors a row of the marketplace_items table.
type MarketplaceItem struct {
	ItemID      string          `db:"item_id"`
	ItemName    string          `db:"item_name"`
	Description sql.NullString  `db:"description"`
	Price       decimal.Decimal `db:"price"`
	SellerName  string          `db:"seller_name"`
	Category    string          `db:"category"`
	Image       string          `db:"image"`
	CreatedBy   string          `db:"created_by"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`

	OwnerName  sql.NullString `db:"owner_name"`
	OwnerEmail sql.NullString `db:"owner_email"`
}
