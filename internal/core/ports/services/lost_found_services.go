package services

import (
	"context"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/SscSPs/campus_connect/internal/dto"
)

// LostFoundReaderSvc defines public read operations on the lost & found board.
type LostFoundReaderSvc interface {
	GetLostItemByID(ctx context.Context, itemID string) (*domain.LostItem, error)
	ListLostItemsByType(ctx context.Context, itemType domain.LostItemType) ([]domain.LostItem, error)
	ListLostItemsByOwner(ctx context.Context, ownerID string) ([]domain.LostItem, error)
}

// LostFoundWriterSvc defines authenticated write operations on the lost & found board.
type LostFoundWriterSvc interface {
	CreateLostItem(ctx context.Context, req dto.CreateLostItemRequest, creatorUserID string) (*domain.LostItem, error)
	UpdateLostItem(ctx context.Context, itemID string, req dto.UpdateLostItemRequest, requestingUserID string) (*domain.LostItem, error)
	DeleteLostItem(ctx context.Context, itemID string, requestingUserID string) error
}

// LostFoundSvcFacade combines all lost & found service interfaces
type LostFoundSvcFacade interface {
	LostFoundReaderSvc
	LostFoundWriterSvc
}
