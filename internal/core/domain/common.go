package domain

import "time"

// Timestamps holds the creation and last update time of a record.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnedResource is implemented by every record that only its creator may mutate.
type OwnedResource interface {
	GetOwnerID() string
}
