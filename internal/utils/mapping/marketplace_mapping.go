package mapping

import (
	"database/sql"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/SscSPs/campus_connect/internal/models"
)

// ToModelMarketplaceItem converts a domain.MarketplaceItem to a models.MarketplaceItem.
func ToModelMarketplaceItem(d domain.MarketplaceItem) models.MarketplaceItem {
	return models.MarketplaceItem{
		ItemID:      d.ItemID,
		ItemName:    d.ItemName,
		Description: sql.NullString{String: d.Description, Valid: d.Description != ""},
		Price:       d.Price,
		SellerName:  d.SellerName,
		Category:    string(d.Category),
		Image:       d.Image,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDomainMarketplaceItem converts a models.MarketplaceItem to a domain.MarketplaceItem.
func ToDomainMarketplaceItem(m models.MarketplaceItem) domain.MarketplaceItem {
	return domain.MarketplaceItem{
		ItemID:      m.ItemID,
		ItemName:    m.ItemName,
		Description: m.Description.String,
		Price:       m.Price,
		SellerName:  m.SellerName,
		Category:    domain.MarketplaceCategory(m.Category),
		Image:       m.Image,
		CreatedBy:   m.CreatedBy,
		Owner:       toOwner(m.CreatedBy, m.OwnerName, m.OwnerEmail),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainMarketplaceItemSlice converts a slice of models.MarketplaceItem.
func ToDomainMarketplaceItemSlice(ms []models.MarketplaceItem) []domain.MarketplaceItem {
	ds := make([]domain.MarketplaceItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMarketplaceItem(m)
	}
	return ds
}
