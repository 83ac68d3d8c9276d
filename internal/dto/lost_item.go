package dto

import "github.com/SscSPs/campus_connect/internal/core/domain"

// CreateLostItemRequest defines the data needed to post a lost or found item.
// LostDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
type CreateLostItemRequest struct {
	ItemName      string              `json:"itemName" binding:"required"`
	Description   string              `json:"description" binding:"required"`
	LostDate      string              `json:"lostDate" binding:"required"`
	Location      string              `json:"location"`
	ContactNumber string              `json:"contactNumber" binding:"required"`
	Type          domain.LostItemType `json:"type" binding:"required,oneof=lost found"`
	ImageURL      string              `json:"imageUrl"`
}

// UpdateLostItemRequest defines the fields an owner may change.
// Pointers distinguish omitted fields from zero values.
type UpdateLostItemRequest struct {
	ItemName      *string              `json:"itemName"`
	Description   *string              `json:"description"`
	LostDate      *string              `json:"lostDate"`
	Location      *string              `json:"location"`
	ContactNumber *string              `json:"contactNumber"`
	Type          *domain.LostItemType `json:"type" binding:"omitempty,oneof=lost found"`
	ImageURL      *string              `json:"imageUrl"`
}
