package repositories

import (
	"context"

	"github.com/SscSPs/campus_connect/internal/core/domain"
)

// LostItemReader defines read operations for the lost & found board.
type LostItemReader interface {
	// FindLostItemByID returns the item with its owner populated, or apperrors.ErrNotFound.
	FindLostItemByID(ctx context.Context, itemID string) (*domain.LostItem, error)

	// FindLostItemsByType lists items of one type, newest first, owners populated.
	FindLostItemsByType(ctx context.Context, itemType domain.LostItemType) ([]domain.LostItem, error)

	// FindLostItemsByOwner lists the items created by one user, newest first.
	FindLostItemsByOwner(ctx context.Context, ownerID string) ([]domain.LostItem, error)
}

// LostItemWriter defines write operations for the lost & found board.
type LostItemWriter interface {
	SaveLostItem(ctx context.Context, item domain.LostItem) error
	UpdateLostItem(ctx context.Context, item domain.LostItem) error
	DeleteLostItem(ctx context.Context, itemID string) error
}

// LostItemRepositoryFacade combines all lost & found repository interfaces
type LostItemRepositoryFacade interface {
	LostItemReader
	LostItemWriter
}
