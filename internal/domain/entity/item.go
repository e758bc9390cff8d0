package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemKind distinguishes lost reports from found reports.
type ItemKind string

const (
	// ItemKindLost marks an item someone lost.
	ItemKindLost ItemKind = "lost"
	// ItemKindFound marks an item someone found.
	ItemKindFound ItemKind = "found"
)

// IsValid checks if the ItemKind is a valid value.
func (k ItemKind) IsValid() bool {
	return k == ItemKindLost || k == ItemKindFound
}

// ItemStatus is the moderation/lifecycle state of an item post.
type ItemStatus string

const (
	// ItemStatusPending means the post awaits moderator review.
	ItemStatusPending ItemStatus = "pending"
	// ItemStatusApproved means the post is publicly visible.
	ItemStatusApproved ItemStatus = "approved"
	// ItemStatusRejected means the post was declined by a moderator.
	ItemStatusRejected ItemStatus = "rejected"
	// ItemStatusRecovered means the item was returned to its owner.
	ItemStatusRecovered ItemStatus = "recovered"
)

// IsValid checks if the ItemStatus is a valid value.
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusApproved, ItemStatusRejected, ItemStatusRecovered:
		return true
	default:
		return false
	}
}

// Item represents a lost or found item post within a university tenant.
type Item struct {
	// ID is the unique identifier of the item post.
	ID uuid.UUID `json:"id"`
	// UniversityID is the tenant the post belongs to.
	UniversityID uuid.UUID `json:"university_id"`
	// PosterID is the user who created the post.
	PosterID uuid.UUID `json:"poster_id"`
	// Kind is lost or found.
	Kind ItemKind `json:"kind"`
	// Status is the moderation state.
	Status ItemStatus `json:"status"`
	// Title is a short summary of the item.
	Title string `json:"title"`
	// Description is the free-form details of the item.
	Description string `json:"description"`
	// Category groups items for filtering, e.g. electronics, cards.
	Category string `json:"category"`
	// LocationName is the human-readable place description.
	LocationName string `json:"location_name"`
	// Latitude and Longitude are the reported coordinates, nil when the
	// poster did not pin a location.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	// ImageURLs lists the uploaded photo locations in display order.
	ImageURLs []string `json:"image_urls"`
	// OccurredAt is when the item was lost or found.
	OccurredAt time.Time `json:"occurred_at"`
	// CreatedAt is when the post was created.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the post was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// HasLocation reports whether the post carries pinned coordinates.
func (i *Item) HasLocation() bool {
	return i.Latitude != nil && i.Longitude != nil
}

// NearbyItem pairs an item with its distance from a query point.
type NearbyItem struct {
	Item           *Item   `json:"item"`
	DistanceMeters float64 `json:"distance_meters"`
}
