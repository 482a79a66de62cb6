package repository

import (
	"context"

	"github.com/godownhub/marketplace/internal/models"
	"gorm.io/gorm"
)

type BookingEventRepository interface {
	Append(ctx context.Context, tx *gorm.DB, event *models.BookingEvent) error
	FindByBooking(ctx context.Context, bookingID uint) ([]models.BookingEvent, error)
}

type bookingEventRepository struct {
	db *gorm.DB
}

func NewBookingEventRepository(db *gorm.DB) BookingEventRepository {
	return &bookingEventRepository{db: db}
}

// Append writes one immutable history entry. Events are never updated or
// deleted after this point.
func (r *bookingEventRepository) Append(ctx context.Context, tx *gorm.DB, event *models.BookingEvent) error {
	return tx.WithContext(ctx).Create(event).Error
}

func (r *bookingEventRepository) FindByBooking(ctx context.Context, bookingID uint) ([]models.BookingEvent, error) {
	var events []models.BookingEvent
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
