package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/SscSPs/campus_connect/internal/core/domain"
	portsrepo "github.com/SscSPs/campus_connect/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/google/uuid"
)

const msgItemNotFound = "Item not found"

var itemDateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseItemDate accepts a full timestamp or a calendar date.
func parseItemDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range itemDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", raw)
}

func validLostItemType(t domain.LostItemType) bool {
	return t == domain.LostItemTypeLost || t == domain.LostItemTypeFound
}

// LostFoundService manages the lost & found board.
type LostFoundService struct {
	BaseService
	itemRepo portsrepo.LostItemRepositoryFacade
}

// NewLostFoundService creates a new LostFoundService.
func NewLostFoundService(itemRepo portsrepo.LostItemRepositoryFacade, guard portssvc.OwnershipGuardSvc) *LostFoundService {
	return &LostFoundService{
		BaseService: BaseService{OwnershipGuard: guard},
		itemRepo:    itemRepo,
	}
}

var _ portssvc.LostFoundSvcFacade = (*LostFoundService)(nil)

func (s *LostFoundService) CreateLostItem(ctx context.Context, req dto.CreateLostItemRequest, creatorUserID string) (*domain.LostItem, error) {
	item := domain.LostItem{
		ItemName:      strings.TrimSpace(req.ItemName),
		Description:   strings.TrimSpace(req.Description),
		Location:      strings.TrimSpace(req.Location),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Type:          req.Type,
		ImageURL:      strings.TrimSpace(req.ImageURL),
	}
	if item.ItemName == "" || item.Description == "" || strings.TrimSpace(req.LostDate) == "" || item.ContactNumber == "" || item.Type == "" {
		return nil, apperrors.NewValidationError("Item name, description, date, contact number and type are required")
	}
	if !validLostItemType(item.Type) {
		return nil, apperrors.NewValidationError(`Type must be either "lost" or "found"`)
	}
	lostDate, err := parseItemDate(req.LostDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date, use YYYY-MM-DD or an RFC 3339 timestamp")
	}
	item.LostDate = lostDate
	if item.ImageURL == "" {
		item.ImageURL = domain.DefaultLostItemImageURL
	}

	now := time.Now().UTC()
	item.ItemID = uuid.NewString()
	item.CreatedBy = creatorUserID
	item.Timestamps = domain.Timestamps{CreatedAt: now, UpdatedAt: now}

	if err := s.itemRepo.SaveLostItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save lost item", slog.String("user_id", creatorUserID))
		return nil, apperrors.NewInternalError("Error creating item", err)
	}
	s.GetLogger(ctx).Info("Lost & found item created",
		slog.String("item_id", item.ItemID),
		slog.String("type", string(item.Type)))
	return &item, nil
}

func (s *LostFoundService) GetLostItemByID(ctx context.Context, itemID string) (*domain.LostItem, error) {
	if !isResourceID(itemID) {
		return nil, apperrors.NewNotFoundError(msgItemNotFound)
	}
	item, err := s.itemRepo.FindLostItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgItemNotFound)
		}
		s.LogError(ctx, err, "Failed to load lost item", slog.String("item_id", itemID))
		return nil, apperrors.NewInternalError("Error fetching item", err)
	}
	return item, nil
}

func (s *LostFoundService) ListLostItemsByType(ctx context.Context, itemType domain.LostItemType) ([]domain.LostItem, error) {
	if !validLostItemType(itemType) {
		return nil, apperrors.NewValidationError(`Type must be either "lost" or "found"`)
	}
	items, err := s.itemRepo.FindLostItemsByType(ctx, itemType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list lost items", slog.String("type", string(itemType)))
		return nil, apperrors.NewInternalError("Error fetching items", err)
	}
	return items, nil
}

func (s *LostFoundService) ListLostItemsByOwner(ctx context.Context, ownerID string) ([]domain.LostItem, error) {
	items, err := s.itemRepo.FindLostItemsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list own lost items", slog.String("user_id", ownerID))
		return nil, apperrors.NewInternalError("Error fetching your items", err)
	}
	return items, nil
}

func (s *LostFoundService) UpdateLostItem(ctx context.Context, itemID string, req dto.UpdateLostItemRequest, requestingUserID string) (*domain.LostItem, error) {
	item, err := s.GetLostItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, item, requestingUserID, "update"); err != nil {
		return nil, err
	}

	update, err := toLostItemUpdate(req)
	if err != nil {
		return nil, err
	}
	applyLostItemUpdate(item, update)
	item.UpdatedAt = time.Now().UTC()

	if err := s.itemRepo.UpdateLostItem(ctx, *item); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgItemNotFound)
		}
		s.LogError(ctx, err, "Failed to update lost item", slog.String("item_id", itemID))
		return nil, apperrors.NewInternalError("Error updating item", err)
	}
	return item, nil
}

func (s *LostFoundService) DeleteLostItem(ctx context.Context, itemID string, requestingUserID string) error {
	item, err := s.GetLostItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeOwner(ctx, item, requestingUserID, "delete"); err != nil {
		return err
	}

	if err := s.itemRepo.DeleteLostItem(ctx, itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(msgItemNotFound)
		}
		s.LogError(ctx, err, "Failed to delete lost item", slog.String("item_id", itemID))
		return apperrors.NewInternalError("Error deleting item", err)
	}
	s.GetLogger(ctx).Info("Lost & found item deleted", slog.String("item_id", itemID))
	return nil
}

// toLostItemUpdate validates the supplied fields of a partial update.
// Required fields may be changed but not cleared.
func toLostItemUpdate(req dto.UpdateLostItemRequest) (domain.LostItemUpdate, error) {
	var u domain.LostItemUpdate
	for _, f := range []struct {
		in  *string
		out **string
	}{
		{req.ItemName, &u.ItemName},
		{req.Description, &u.Description},
		{req.ContactNumber, &u.ContactNumber},
	} {
		if f.in == nil {
			continue
		}
		v := strings.TrimSpace(*f.in)
		if v == "" {
			return u, apperrors.NewValidationError("Item name, description and contact number cannot be empty")
		}
		*f.out = &v
	}
	if req.Location != nil {
		v := strings.TrimSpace(*req.Location)
		u.Location = &v
	}
	if req.ImageURL != nil {
		v := strings.TrimSpace(*req.ImageURL)
		if v == "" {
			v = domain.DefaultLostItemImageURL
		}
		u.ImageURL = &v
	}
	if req.Type != nil {
		if !validLostItemType(*req.Type) {
			return u, apperrors.NewValidationError(`Type must be either "lost" or "found"`)
		}
		t := *req.Type
		u.Type = &t
	}
	if req.LostDate != nil {
		d, err := parseItemDate(*req.LostDate)
		if err != nil {
			return u, apperrors.NewValidationError("Invalid date, use YYYY-MM-DD or an RFC 3339 timestamp")
		}
		u.LostDate = &d
	}
	return u, nil
}

func applyLostItemUpdate(item *domain.LostItem, u domain.LostItemUpdate) {
	if u.ItemName != nil {
		item.ItemName = *u.ItemName
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.LostDate != nil {
		item.LostDate = *u.LostDate
	}
	if u.Location != nil {
		item.Location = *u.Location
	}
	if u.ContactNumber != nil {
		item.ContactNumber = *u.ContactNumber
	}
	if u.Type != nil {
		item.Type = *u.Type
	}
	if u.ImageURL != nil {
		item.ImageURL = *u.ImageURL
	}
}
