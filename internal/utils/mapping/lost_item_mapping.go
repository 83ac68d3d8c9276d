package mapping

import (
	"database/sql"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/SscSPs/campus_connect/internal/models"
)

// ToModelLostItem converts a domain.LostItem to a models.LostItem.
func ToModelLostItem(d domain.LostItem) models.LostItem {
	return models.LostItem{
		ItemID:        d.ItemID,
		ItemName:      d.ItemName,
		Description:   d.Description,
		LostDate:      d.LostDate,
		Location:      sql.NullString{String: d.Location, Valid: d.Location != ""},
		ContactNumber: d.ContactNumber,
		Type:          string(d.Type),
		ImageURL:      d.ImageURL,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainLostItem converts a models.LostItem to a domain.LostItem.
func ToDomainLostItem(m models.LostItem) domain.LostItem {
	return domain.LostItem{
		ItemID:        m.ItemID,
		ItemName:      m.ItemName,
		Description:   m.Description,
		LostDate:      m.LostDate,
		Location:      m.Location.String,
		ContactNumber: m.ContactNumber,
		Type:          domain.LostItemType(m.Type),
		ImageURL:      m.ImageURL,
		CreatedBy:     m.CreatedBy,
		Owner:         toOwner(m.CreatedBy, m.OwnerName, m.OwnerEmail),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainLostItemSlice converts a slice of models.LostItem to domain.LostItem.
func ToDomainLostItemSlice(ms []models.LostItem) []domain.LostItem {
	ds := make([]domain.LostItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLostItem(m)
	}
	return ds
}
