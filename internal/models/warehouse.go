package models

import "time"

type WarehouseStatus string

const (
	WarehousePublished WarehouseStatus = "PUBLISHED"
	WarehouseDraft     WarehouseStatus = "DRAFT"
)

// Warehouse is the flat, bookable unit. Rows come from seed/admin entry or
// from promoting a published Listing; SourceListingID carries the provenance
// back-reference for promoted rows and its unique index makes promotion
// exactly-once even under concurrent publishes.
type Warehouse struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	OwnerID           uint            `gorm:"not null;index" json:"owner_id"`
	SourceListingID   *uint           `gorm:"uniqueIndex" json:"source_listing_id,omitempty"`
	Name              string          `gorm:"not null" json:"name"`
	Address           *string         `json:"address"`
	City              *string         `json:"city"`
	State             *string         `json:"state"`
	Pincode           *string         `json:"pincode"`
	Type              *string         `json:"type"`
	Description       *string         `json:"description"`
	TotalSpace        *float64        `json:"total_space"`
	AvailableSpace    *float64        `json:"available_space"`
	PricePerSqFt      *float64        `json:"price_per_sq_ft"`
	Latitude          *float64        `json:"latitude"`
	Longitude         *float64        `json:"longitude"`
	ImageURL          *string         `json:"image_url"`
	IsApproved        bool            `gorm:"not null;default:false" json:"is_approved"`
	IsDisabledByAdmin bool            `gorm:"not null;default:false" json:"is_disabled_by_admin"`
	Status            WarehouseStatus `gorm:"type:varchar(20);not null;default:'PUBLISHED'" json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// Bookable reports whether merchants may book against this warehouse.
func (w *Warehouse) Bookable() bool {
	return w.Status == WarehousePublished && w.IsApproved && !w.IsDisabledByAdmin
}
