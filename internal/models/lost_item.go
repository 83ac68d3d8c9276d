package models

import (
	"database/sql"
	"time"
)

// LostItem mirrors a row of the lost_items table.
type LostItem struct {
	ItemID        string         `db:"item_id"`
	ItemName      string         `db:"item_name"`
	Description   string         `db:"description"`
	LostDate      time.Time      `db:"lost_date"`
	Location      sql.NullString `db:"location"`
	ContactNumber string         `db:"contact_number"`
	Type          string         `db:"type"`
	ImageURL      string         `db:"image_url"`
	CreatedBy     string         `db:"created_by"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`

	// Populated by joins against users.
	OwnerName  sql.NullString `db:"owner_name"`
	OwnerEmail sql.NullString `db:"owner_email"`
}
