package models

import (
	"time"

	"gorm.io/datatypes"
)

type ListingStatus string

const (
	ListingDraft     ListingStatus = "DRAFT"
	ListingPublished ListingStatus = "PUBLISHED"
	ListingArchived  ListingStatus = "ARCHIVED"
)

func ValidListingStatus(s ListingStatus) bool {
	switch s {
	case ListingDraft, ListingPublished, ListingArchived:
		return true
	}
	return false
}

// Listing is the owner-authored wizard draft. The wizard steps write
// semi-structured JSON blobs; only title/status/description are flat columns.
type Listing struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	OwnerID        uint              `gorm:"not null;index" json:"owner_id"`
	Status         ListingStatus     `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status"`
	Title          string            `gorm:"not null" json:"title"`
	Description    string            `json:"description"`
	Address        datatypes.JSONMap `gorm:"not null" json:"address"`
	Use            datatypes.JSONMap `json:"use,omitempty"`
	Amenities      datatypes.JSONMap `json:"amenities,omitempty"`
	Approvals      datatypes.JSONMap `json:"approvals,omitempty"`
	Qualifications datatypes.JSONMap `json:"qualifications,omitempty"`
	Pricing        datatypes.JSONMap `json:"pricing,omitempty"`
	Hours          datatypes.JSONMap `json:"hours,omitempty"`
	Services       datatypes.JSONMap `json:"services,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
