package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/SscSPs/campus_connect/internal/core/domain"
	portsrepo "github.com/SscSPs/campus_connect/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxPrice is the largest price the price column (NUMERIC(12,2)) can hold.
var MaxPrice = decimal.RequireFromString("9999999999.99")

// normalizePrice rounds to cents and rejects prices the store cannot hold.
func normalizePrice(price decimal.Decimal) (decimal.Decimal, error) {
	if price.IsNegative() {
		return decimal.Zero, apperrors.NewValidationError("Price cannot be negative")
	}
	rounded := price.Round(2)
	if rounded.GreaterThan(MaxPrice) {
		return decimal.Zero, apperrors.NewValidationError("Price cannot exceed " + MaxPrice.StringFixed(2))
	}
	return rounded, nil
}

func validCategory(c domain.MarketplaceCategory) bool {
	return c == domain.CategoryBuy || c == domain.CategorySell
}

// MarketplaceService manages buy/sell listings.
type MarketplaceService struct {
	BaseService
	itemRepo portsrepo.MarketplaceItemRepositoryFacade
}

// NewMarketplaceService creates a new MarketplaceService.
func NewMarketplaceService(itemRepo portsrepo.MarketplaceItemRepositoryFacade, guard portssvc.OwnershipGuardSvc) *MarketplaceService {
	return &MarketplaceService{
		BaseService: BaseService{OwnershipGuard: guard},
		itemRepo:    itemRepo,
	}
}

var _ portssvc.MarketplaceSvcFacade = (*MarketplaceService)(nil)

func (s *MarketplaceService) CreateMarketplaceItem(ctx context.Context, req dto.CreateMarketplaceItemRequest, creatorUserID string) (*domain.MarketplaceItem, error) {
	item := domain.MarketplaceItem{
		ItemName:    strings.TrimSpace(req.ItemName),
		Description: strings.TrimSpace(req.Description),
		SellerName:  strings.TrimSpace(req.SellerName),
		Category:    req.Category,
		Image:       strings.TrimSpace(req.Image),
	}
	if item.ItemName == "" || req.Price == nil || item.SellerName == "" || item.Category == "" {
		return nil, apperrors.NewValidationError("Item name, price, seller name and category are required")
	}
	price, err := normalizePrice(*req.Price)
	if err != nil {
		return nil, err
	}
	if !validCategory(item.Category) {
		return nil, apperrors.NewValidationError(`Category must be either "buy" or "sell"`)
	}
	item.Price = price

	now := time.Now().UTC()
	item.ItemID = uuid.NewString()
	item.CreatedBy = creatorUserID
	item.Timestamps = domain.Timestamps{CreatedAt: now, UpdatedAt: now}

	if err := s.itemRepo.SaveMarketplaceItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save marketplace item", slog.String("user_id", creatorUserID))
		return nil, apperrors.NewInternalError("Error creating listing", err)
	}
	s.GetLogger(ctx).Info("Marketplace item created",
		slog.String("item_id", item.ItemID),
		slog.String("category", string(item.Category)))
	return &item, nil
}

func (s *MarketplaceService) GetMarketplaceItemByID(ctx context.Context, itemID string) (*domain.MarketplaceItem, error) {
	if !isResourceID(itemID) {
		return nil, apperrors.NewNotFoundError(msgItemNotFound)
	}
	item, err := s.itemRepo.FindMarketplaceItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgItemNotFound)
		}
		s.LogError(ctx, err, "Failed to load marketplace item", slog.String("item_id", itemID))
		return nil, apperrors.NewInternalError("Error fetching item", err)
	}
	return item, nil
}

func (s *MarketplaceService) ListMarketplaceItemsByCategory(ctx context.Context, category domain.MarketplaceCategory) ([]domain.MarketplaceItem, error) {
	if !validCategory(category) {
		return nil, apperrors.NewValidationError(`Category must be either "buy" or "sell"`)
	}
	items, err := s.itemRepo.FindMarketplaceItemsByCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to list marketplace items", slog.String("category", string(category)))
		return nil, apperrors.NewInternalError("Error fetching items", err)
	}
	return items, nil
}

func (s *MarketplaceService) ListMarketplaceItemsByOwner(ctx context.Context, ownerID string) ([]domain.MarketplaceItem, error) {
	items, err := s.itemRepo.FindMarketplaceItemsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list own marketplace items", slog.String("user_id", ownerID))
		return nil, apperrors.NewInternalError("Error fetching your items", err)
	}
	return items, nil
}

func (s *MarketplaceService) UpdateMarketplaceItem(ctx context.Context, itemID string, req dto.UpdateMarketplaceItemRequest, requestingUserID string) (*domain.MarketplaceItem, error) {
	item, err := s.GetMarketplaceItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, item, requestingUserID, "update"); err != nil {
		return nil, err
	}

	update, err := toMarketplaceItemUpdate(req)
	if err != nil {
		return nil, err
	}
	applyMarketplaceItemUpdate(item, update)
	item.UpdatedAt = time.Now().UTC()

	if err := s.itemRepo.UpdateMarketplaceItem(ctx, *item); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgItemNotFound)
		}
		s.LogError(ctx, err, "Failed to update marketplace item", slog.String("item_id", itemID))
		return nil, apperrors.NewInternalError("Error updating item", err)
	}
	return item, nil
}

func (s *MarketplaceService) DeleteMarketplaceItem(ctx context.Context, itemID string, requestingUserID string) error {
	item, err := s.GetMarketplaceItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeOwner(ctx, item, requestingUserID, "delete"); err != nil {
		return err
	}

	if err := s.itemRepo.DeleteMarketplaceItem(ctx, itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(msgItemNotFound)
		}
		s.LogError(ctx, err, "Failed to delete marketplace item", slog.String("item_id", itemID))
		return apperrors.NewInternalError("Error deleting item", err)
	}
	s.GetLogger(ctx).Info("Marketplace item deleted", slog.String("item_id", itemID))
	return nil
}

func toMarketplaceItemUpdate(req dto.UpdateMarketplaceItemRequest) (domain.MarketplaceItemUpdate, error) {
	var u domain.MarketplaceItemUpdate
	if req.ItemName != nil {
		v := strings.TrimSpace(*req.ItemName)
		if v == "" {
			return u, apperrors.NewValidationError("Item name cannot be empty")
		}
		u.ItemName = &v
	}
	if req.SellerName != nil {
		v := strings.TrimSpace(*req.SellerName)
		if v == "" {
			return u, apperrors.NewValidationError("Seller name cannot be empty")
		}
		u.SellerName = &v
	}
	if req.Description != nil {
		v := strings.TrimSpace(*req.Description)
		u.Description = &v
	}
	if req.Image != nil {
		v := strings.TrimSpace(*req.Image)
		u.Image = &v
	}
	if req.Price != nil {
		p, err := normalizePrice(*req.Price)
		if err != nil {
			return u, err
		}
		u.Price = &p
	}
	if req.Category != nil {
		if !validCategory(*req.Category) {
			return u, apperrors.NewValidationError(`Category must be either "buy" or "sell"`)
		}
		c := *req.Category
		u.Category = &c
	}
	return u, nil
}

func applyMarketplaceItemUpdate(item *domain.MarketplaceItem, u domain.MarketplaceItemUpdate) {
	if u.ItemName != nil {
		item.ItemName = *u.ItemName
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.Price != nil {
		item.Price = *u.Price
	}
	if u.SellerName != nil {
		item.SellerName = *u.SellerName
	}
	if u.Category != nil {
		item.Category = *u.Category
	}
	if u.Image != nil {
		item.Image = *u.Image
	}
}
