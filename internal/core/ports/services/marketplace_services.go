package services

import (
	"context"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/SscSPs/campus_connect/internal/dto"
)

// MarketplaceReaderSvc defines public read operations on marketplace listings.
type MarketplaceReaderSvc interface {
	GetMarketplaceItemByID(ctx context.Context, itemID string) (*domain.MarketplaceItem, error)
	ListMarketplaceItemsByCategory(ctx context.Context, category domain.MarketplaceCategory) ([]domain.MarketplaceItem, error)
	ListMarketplaceItemsByOwner(ctx context.Context, ownerID string) ([]domain.MarketplaceItem, error)
}

// MarketplaceWriterSvc defines authenticated write operations on marketplace listings.
type MarketplaceWriterSvc interface {
	CreateMarketplaceItem(ctx context.Context, req dto.CreateMarketplaceItemRequest, creatorUserID string) (*domain.MarketplaceItem, error)
	UpdateMarketplaceItem(ctx context.Context, itemID string, req dto.UpdateMarketplaceItemRequest, requestingUserID string) (*domain.MarketplaceItem, error)
	DeleteMarketplaceItem(ctx context.Context, itemID string, requestingUserID string) error
}

// MarketplaceSvcFacade combines all marketplace service interfaces
type MarketplaceSvcFacade interface {
	MarketplaceReaderSvc
	MarketplaceWriterSvc
}
