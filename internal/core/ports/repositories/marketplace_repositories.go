package repositories

import (
	"context"

	"github.com/SscSPs/campus_connect/internal/core/domain"
)

// MarketplaceItemReader defines read operations for marketplace listings.
type MarketplaceItemReader interface {
	FindMarketplaceItemByID(ctx context.Context, itemID string) (*domain.MarketplaceItem, error)
	FindMarketplaceItemsByCategory(ctx context.Context, category domain.MarketplaceCategory) ([]domain.MarketplaceItem, error)
	FindMarketplaceItemsByOwner(ctx context.Context, ownerID string) ([]domain.MarketplaceItem, error)
}

// MarketplaceItemWriter defines write operations for marketplace listings.
type MarketplaceItemWriter interface {
	SaveMarketplaceItem(ctx context.Context, item domain.MarketplaceItem) error
	UpdateMarketplaceItem(ctx context.Context, item domain.MarketplaceItem) error
	DeleteMarketplaceItem(ctx context.Context, itemID string) error
}

// MarketplaceItemRepositoryFacade combines all marketplace repository interfaces
type MarketplaceItemRepositoryFacade interface {
	MarketplaceItemReader
	MarketplaceItemWriter
}
