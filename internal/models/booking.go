package models

import "time"

type BookingStatus string

const (
	StatusPending  BookingStatus = "PENDING"
	StatusAccepted BookingStatus = "ACCEPTED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED"
)

// transitions is the lifecycle table. REJECTED and CANCELED are terminal;
// an accepted booking can still be canceled.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusAccepted, StatusRejected, StatusCanceled},
	StatusAccepted: {StatusCanceled},
}

// CanTransition reports whether the lifecycle table allows moving a booking
// from one status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	WarehouseID uint          `gorm:"not null;index" json:"warehouse_id"`
	MerchantID  uint          `gorm:"not null;index" json:"merchant_id"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Warehouse *Warehouse `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Merchant  *User      `gorm:"foreignKey:MerchantID" json:"merchant,omitempty"`
}

// BookingEvent is one append-only history row. Every status write lands here,
// and owner messages ride along as events carrying the unchanged status.
type BookingEvent struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	BookingID uint          `gorm:"not null;index" json:"booking_id"`
	Status    BookingStatus `gorm:"type:varchar(20);not null" json:"status"`
	Note      *string       `json:"note,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
