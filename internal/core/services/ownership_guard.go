package services

import (
	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/SscSPs/campus_connect/internal/core/domain"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/google/uuid"
)

// OwnershipGuard allows a mutation only when the acting identity created the resource.
type OwnershipGuard struct{}

// NewOwnershipGuard creates a new OwnershipGuard.
func NewOwnershipGuard() *OwnershipGuard {
	return &OwnershipGuard{}
}

var _ portssvc.OwnershipGuardSvc = (*OwnershipGuard)(nil)

// Authorize compares both ids in canonical UUID form. An id that is not already
// canonical (upper case, braces, urn prefix, nil uuid) never matches. A missing
// resource is NotFound.
func (g *OwnershipGuard) Authorize(resource domain.OwnedResource, actingUserID string) error {
	// A nil item pointer inside the interface reports an empty owner.
	if resource == nil || resource.GetOwnerID() == "" {
		return apperrors.NewNotFoundError("Item not found")
	}
	owner, ok := canonicalID(resource.GetOwnerID())
	if !ok {
		return apperrors.NewForbiddenError("You do not have permission to modify this item")
	}
	actor, ok := canonicalID(actingUserID)
	if !ok || actor != owner {
		return apperrors.NewForbiddenError("You do not have permission to modify this item")
	}
	return nil
}

// canonicalID parses s and reports whether it is a non-nil UUID in its canonical string form.
func canonicalID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil || id.String() != s {
		return uuid.Nil, false
	}
	return id, true
}

// isResourceID reports whether s can name a stored record at all.
func isResourceID(s string) bool {
	_, ok := canonicalID(s)
	return ok
}
