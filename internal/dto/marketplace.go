package dto

import (
	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMarketplaceItemRequest defines the data needed to post a listing.
type CreateMarketplaceItemRequest struct {
	ItemName    string                     `json:"itemName" binding:"required"`
	Description string                     `json:"description"`
	Price       *decimal.Decimal           `json:"price" binding:"required"`
	SellerName  string                     `json:"sellerName" binding:"required"`
	Category    domain.MarketplaceCategory `json:"category" binding:"required,oneof=buy sell"`
	Image       string                     `json:"image"`
}

// UpdateMarketplaceItemRequest defines the fields an owner may change.
type UpdateMarketplaceItemRequest struct {
	ItemName    *string                     `json:"itemName"`
	Description *string                     `json:"description"`
	Price       *decimal.Decimal            `json:"price"`
	SellerName  *string                     `json:"sellerName"`
	Category    *domain.MarketplaceCategory `json:"category" binding:"omitempty,oneof=buy sell"`
	Image       *string                     `json:"image"`
}
