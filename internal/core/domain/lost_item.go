package domain

import "time"

// LostItemType distinguishes lost reports from found reports.
type LostItemType string

const (
	LostItemTypeLost  LostItemType = "lost"
	LostItemTypeFound LostItemType = "found"
)

// DefaultLostItemImageURL is used when a post carries no image.
const DefaultLostItemImageURL = "https://images.unsplash.com/photo-1584438784894-089d6a62b8fa?w=400"

// LostItem is an entry on the lost & found board.
type LostItem struct {
	ItemID        string       `json:"id"`
	ItemName      string       `json:"itemName"`
	Description   string       `json:"description"`
	LostDate      time.Time    `json:"lostDate"`
	Location      string       `json:"location"`
	ContactNumber string       `json:"contactNumber"`
	Type          LostItemType `json:"type"`
	ImageURL      string       `json:"imageUrl"`
	CreatedBy     string       `json:"createdBy"`
	Owner         *Owner       `json:"owner,omitempty"`
	Timestamps
}

// GetOwnerID returns the creator's id, or "" for a nil item.
func (i *LostItem) GetOwnerID() string {
	if i == nil {
		return ""
	}
	return i.CreatedBy
}

// LostItemUpdate carries the fields of a partial update; nil means unchanged.
type LostItemUpdate struct {
	ItemName      *string
	Description   *string
	LostDate      *time.Time
	Location      *string
	ContactNumber *string
	Type          *LostItemType
	ImageURL      *string
}
