package domain

import "github.com/shopspring/decimal"

// MarketplaceCategory says whether a listing wants to buy or sell.
type MarketplaceCategory string

const (
	CategoryBuy  MarketplaceCategory = "buy"
	CategorySell MarketplaceCategory = "sell"
)

// MarketplaceItem is a buy/sell listing.
type MarketplaceItem struct {
	ItemID      string              `json:"id"`
	ItemName    string              `json:"itemName"`
	Description string              `json:"description"`
	Price       decimal.Decimal     `json:"price"`
	SellerName  string              `json:"sellerName"`
	Category    MarketplaceCategory `json:"category"`
	Image       string              `json:"image"`
	CreatedBy   string              `json:"createdBy"`
	Owner       *Owner              `json:"owner,omitempty"`
	Timestamps
}

// GetOwnerID returns the creator's id, or "" for a nil item.
func (i *MarketplaceItem) GetOwnerID() string {
	if i == nil {
		return ""
	}
	return i.CreatedBy
}

// MarketplaceItemUpdate carries the fields of a partial update; nil means unchanged.
type MarketplaceItemUpdate struct {
	ItemName    *string
	Description *string
	Price       *decimal.Decimal
	SellerName  *string
	Category    *MarketplaceCategory
	Image       *string
}
